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

package config

// RuleFlags represents specific rules.
type RuleFlags uint8

const (
	// EmptyHandlerRule enables detection of empty error handlers and
	// deferred recovers that swallow panics.
	EmptyHandlerRule RuleFlags = 1 << iota

	// NestingRule enables detection of deeply nested conditionals.
	NestingRule

	// DryDampRule enables detection of duplicated statement blocks and
	// overly complex conditions.
	DryDampRule

	// NilReturnRule enables detection of nilable result types.
	NilReturnRule
)

// Config represents configuration options for the rules.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes determines whether findings carry suggested code rewrites.
	SuggestFixes

	// ExtendedNilChecks enables reporting of explicit nil comparisons and
	// nil fallback assignments in addition to nilable result types.
	ExtendedNilChecks
)

// Rules is a bitmask of enabled rules.
type Rules = BitMask[RuleFlags]

// Behavior is a bitmask of behavioral options.
type Behavior = BitMask[Config]

// DefaultRules returns the rule set enabled by default: all of them.
func DefaultRules() Rules {
	return NewBitMask(EmptyHandlerRule, NestingRule, DryDampRule, NilReturnRule)
}

// DefaultBehavior returns the behavioral options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes, ExtendedNilChecks)
}
