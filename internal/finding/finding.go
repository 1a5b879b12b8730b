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

// Package finding defines the result record produced by detectors and
// consumed by rewriters and the reporting glue.
package finding

import (
	"fmt"
	"go/token"
)

// Rule identifiers are stable contract strings. They route findings to the
// matching rewriter and surface as diagnostic categories in driver output.
const (
	// RuleEmptyHandler flags error-handler blocks that discard the error.
	RuleEmptyHandler = "empty-handler"

	// RuleNestingDepth flags conditionals nested beyond the depth limit.
	RuleNestingDepth = "nesting-depth"

	// RuleDryDamp flags duplicated statement blocks and overly complex
	// boolean conditions. Both checks stem from the same detector and
	// share one identifier.
	RuleDryDamp = "dry-damp"

	// RuleNilReturn flags result types that express absence as nil.
	RuleNilReturn = "nil-return"
)

// Span is a source range inside the tree a finding was produced from.
// It satisfies [golang.org/x/tools/go/analysis.Range].
type Span struct {
	start, end token.Pos
}

// NewSpan creates a [Span]. Both positions must be valid and start must not
// exceed end; a violation is a programming error and panics.
func NewSpan(start, end token.Pos) Span {
	if !start.IsValid() || !end.IsValid() || end < start {
		panic(fmt.Sprintf("finding: invalid span [%d, %d]", start, end))
	}

	return Span{start: start, end: end}
}

// Pos returns the start of the span.
func (s Span) Pos() token.Pos { return s.start }

// End returns the end of the span.
func (s Span) End() token.Pos { return s.end }

// Finding is a single detected rule violation. Values are immutable after
// creation and carry no reference to the tree they were produced from; the
// span is only meaningful for the exact tree version that was analyzed.
type Finding struct {
	// Rule is the identifier of the violated rule.
	Rule string

	// Severity controls how drivers surface the finding.
	Severity Severity

	// Span locates the offending node.
	Span

	// Message is the human-readable description.
	Message string
}

// New creates a [Finding] for the given rule at the node range [start, end).
func New(rule string, severity Severity, start, end token.Pos, message string) Finding {
	return Finding{
		Rule:     rule,
		Severity: severity,
		Span:     NewSpan(start, end),
		Message:  message,
	}
}
