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

package analyzer

import (
	"flag"

	"github.com/Lintelligent-org/Lintelligent/internal/config"
	"github.com/Lintelligent-org/Lintelligent/internal/run"
)

// registerFlags binds the analyzer's options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewRuleValue(&r.Rules, config.EmptyHandlerRule), "empty-handler", "check for empty error handlers and swallowed panics")
	flags.Var(NewRuleValue(&r.Rules, config.NestingRule), "nesting", "check conditional nesting depth")
	flags.Var(NewRuleValue(&r.Rules, config.DryDampRule), "dry-damp", "check for duplicated blocks and complex conditions")
	flags.Var(NewRuleValue(&r.Rules, config.NilReturnRule), "nil-return", "check for nilable result types")

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.SuggestFixes), "fixes", "attach suggested fixes to findings")
	flags.Var(NewBehaviorValue(&r.Behavior, config.ExtendedNilChecks), "nil-checks", "report explicit nil comparisons and nil fallbacks")

	flags.IntVar(&r.MaxDepth, "max-depth", r.MaxDepth, "maximum nesting depth of conditionals")
	flags.IntVar(&r.MinStatements, "min-statements", r.MinStatements, "minimum block size for duplicate detection")
	flags.IntVar(&r.MaxConditions, "max-conditions", r.MaxConditions, "maximum logical operators in a single condition")

	flags.StringVar(&r.Wrapper.Path, "option-package", r.Wrapper.Path, "import path of the suggested Option package")
	flags.StringVar(&r.Wrapper.Name, "option-name", r.Wrapper.Name, "name of the Option type")
	flags.StringVar(&r.Wrapper.Qual, "option-qualifier", r.Wrapper.Qual, "package qualifier for newly inserted imports")
}
