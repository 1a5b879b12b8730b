// Copyright 2026 The Lintelligent Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gclplugin

import (
	lintelligent "github.com/Lintelligent-org/Lintelligent/analyzer"
	"github.com/Lintelligent-org/Lintelligent/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// EmptyHandler enables empty handler checks.
	EmptyHandler *bool `json:"empty-handler,omitzero"`
	// Nesting enables nesting depth checks.
	Nesting *bool `json:"nesting,omitzero"`
	// DryDamp enables duplication and condition complexity checks.
	DryDamp *bool `json:"dry-damp,omitzero"`
	// NilReturn enables nilable result checks.
	NilReturn *bool `json:"nil-return,omitzero"`
	// NilChecks sets the nil analysis level, "full" or "off".
	NilChecks *level.NilChecks `json:"nil-checks,omitzero"`
	// Fixes enables suggested fixes on findings.
	Fixes *bool `json:"fixes,omitzero"`
	// MaxDepth sets the deepest tolerated conditional nesting.
	MaxDepth *int `json:"max-depth,omitzero"`
	// MinStatements sets the smallest block size considered by duplicate detection.
	MinStatements *int `json:"min-statements,omitzero"`
	// MaxConditions sets the largest tolerated number of logical operators in a condition.
	MaxConditions *int `json:"max-conditions,omitzero"`
	// OptionPackage sets the import path of the suggested Option package.
	OptionPackage *string `json:"option-package,omitzero"`
	// OptionName sets the name of the Option type.
	OptionName *string `json:"option-name,omitzero"`
	// OptionQualifier sets the package qualifier for newly inserted imports.
	OptionQualifier *string `json:"option-qualifier,omitzero"`
}

// Options converts [Settings] into a list of [lintelligent.Option] for the analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []lintelligent.Option {
	var opts []lintelligent.Option

	opts = appendOption(opts, s.EmptyHandler, lintelligent.WithEmptyHandler)
	opts = appendOption(opts, s.Nesting, lintelligent.WithNesting)
	opts = appendOption(opts, s.DryDamp, lintelligent.WithDryDamp)
	opts = appendOption(opts, s.NilReturn, lintelligent.WithNilReturn)
	opts = appendOption(opts, s.NilChecks, nilChecksOption)
	opts = appendOption(opts, s.Fixes, lintelligent.WithFixes)
	opts = appendOption(opts, s.MaxDepth, lintelligent.WithMaxDepth)
	opts = appendOption(opts, s.MinStatements, lintelligent.WithMinStatements)
	opts = appendOption(opts, s.MaxConditions, lintelligent.WithMaxConditions)
	opts = appendOption(opts, s.OptionPackage, lintelligent.WithOptionPackage)
	opts = appendOption(opts, s.OptionName, lintelligent.WithOptionName)
	opts = appendOption(opts, s.OptionQualifier, lintelligent.WithOptionQualifier)

	return opts
}

// nilChecksOption maps a [level.NilChecks] to the analyzer option.
func nilChecksOption(l level.NilChecks) lintelligent.Option {
	return lintelligent.WithNilChecks(l.Enabled())
}

// appendOption appends a non-nil setting to a [lintelligent.Option] list.
func appendOption[T any](opts []lintelligent.Option, value *T, constructor func(T) lintelligent.Option) []lintelligent.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
