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

package run

import (
	"github.com/Lintelligent-org/Lintelligent/internal/config"
	"github.com/Lintelligent-org/Lintelligent/internal/detect"
	"github.com/Lintelligent-org/Lintelligent/internal/nilable"
)

// Options represent configuration options for the lintelligent analyzer.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.Rules

	// Behavior holds behavioral options shared across rules.
	Behavior config.Behavior

	// MaxDepth is the deepest conditional nesting tolerated before the
	// nesting rule reports.
	MaxDepth int

	// MinStatements is the smallest block size considered by the duplicate
	// block detection.
	MinStatements int

	// MaxConditions is the largest number of logical operators tolerated in
	// a single condition.
	MaxConditions int

	// Wrapper identifies the Option type suggested for nilable results.
	Wrapper nilable.Wrapper
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:         config.DefaultRules(),
		Behavior:      config.DefaultBehavior(),
		MaxDepth:      detect.DefaultMaxDepth,
		MinStatements: detect.DefaultMinStatements,
		MaxConditions: detect.DefaultMaxConditions,
		Wrapper:       nilable.DefaultWrapper(),
	}
}
