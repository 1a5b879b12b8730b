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

// Package rewrite implements the structural rewriters backing suggested
// fixes. A rewriter computes the complete set of text edits for one finding
// before returning it, so the fix applies all-or-nothing; a stale finding
// whose span no longer locates the expected node yields no edits, never an
// error.
package rewrite

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// Rewriter builds the text edits realizing a finding's suggested fix. A
// rewriter trusts its finding: routing a finding of a different rule to it is
// a dispatch bug that the registry reports loudly before ever calling
// Rewrite.
type Rewriter interface {
	// Rule returns the rule identifier this rewriter can fix.
	Rule() string

	// Rewrite returns the edits for the finding, or nil when the finding is
	// stale or no mechanical fix exists.
	Rewrite(fdg finding.Finding, f source.File, file inspector.Cursor) []analysis.TextEdit
}
