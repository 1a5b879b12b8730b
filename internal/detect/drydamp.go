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

package detect

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// DryDamp combines two maintainability checks under one rule: statement
// blocks that duplicate an earlier block, and boolean conditions combining
// too many logical operators.
//
// Duplicate detection compares the raw statement text, trimmed per statement
// and joined with a separator. Whitespace differences inside a single
// statement are preserved, so `x:=1` and `x := 1` do not match. This
// under-matching is intentional; changing it would change observable results.
type DryDamp struct {
	// MinStatements is the smallest block considered for duplicate
	// detection; zero means [DefaultMinStatements].
	MinStatements int

	// MaxConditions is the number of logical operators a condition may
	// combine; zero means [DefaultMaxConditions].
	MaxConditions int
}

// Rule implements [Detector].
func (DryDamp) Rule() string { return finding.RuleDryDamp }

// Detect implements [Detector]. Type information is not consulted; the
// detector works on any parse result. Duplicate detection needs the raw file
// content and is skipped without it.
func (d DryDamp) Detect(f source.File, file inspector.Cursor) []finding.Finding {
	findings := d.duplicateBlocks(f, file)

	return append(findings, d.complexConditions(file)...)
}

// duplicateBlocks reports every block whose normalized statement text matches
// an earlier block in the same file. The first occurrence is the original and
// is never flagged.
func (d DryDamp) duplicateBlocks(f source.File, file inspector.Cursor) []finding.Finding {
	if !f.HasContent() {
		return nil
	}

	minStatements := d.MinStatements
	if minStatements <= 0 {
		minStatements = DefaultMinStatements
	}

	var findings []finding.Finding

	seen := make(map[string]token.Pos)

	for c := range file.Preorder((*ast.BlockStmt)(nil)) {
		block := c.Node().(*ast.BlockStmt)
		if len(block.List) < minStatements {
			continue
		}

		key, ok := normalizeBlock(f, block)
		if !ok {
			continue
		}

		first, dup := seen[key]
		if !dup {
			seen[key] = block.Pos()

			continue
		}

		msg := fmt.Sprintf("Block of %d statements duplicates the block at line %d",
			len(block.List), f.Line(first))
		findings = append(findings, finding.New(finding.RuleDryDamp, finding.SeverityInfo,
			block.Pos(), block.End(), msg))
	}

	return findings
}

// normalizeBlock builds the duplicate-detection key: each statement's source
// text trimmed of surrounding whitespace, joined with '|'. Statement-internal
// whitespace is kept as written.
func normalizeBlock(f source.File, block *ast.BlockStmt) (string, bool) {
	parts := make([]string, 0, len(block.List))

	for _, stmt := range block.List {
		text := strings.TrimSpace(f.Text(stmt))
		if text == "" {
			return "", false // position info does not line up with the content
		}

		parts = append(parts, text)
	}

	return strings.Join(parts, "|"), true
}

// complexConditions reports if and for conditions combining more logical
// operators than allowed.
func (d DryDamp) complexConditions(file inspector.Cursor) []finding.Finding {
	maxConditions := d.MaxConditions
	if maxConditions <= 0 {
		maxConditions = DefaultMaxConditions
	}

	var findings []finding.Finding

	for c := range file.Preorder((*ast.IfStmt)(nil), (*ast.ForStmt)(nil)) {
		var cond ast.Expr

		switch n := c.Node().(type) {
		case *ast.IfStmt:
			cond = n.Cond
		case *ast.ForStmt:
			cond = n.Cond
		}

		if cond == nil {
			continue
		}

		// The limit is exclusive: exactly maxConditions operators pass.
		count := countLogicalOps(cond)
		if count <= maxConditions {
			continue
		}

		msg := fmt.Sprintf("Condition combines %d logical operators (limit %d); consider extracting a named predicate",
			count, maxConditions)
		findings = append(findings, finding.New(finding.RuleDryDamp, finding.SeverityInfo,
			cond.Pos(), cond.End(), msg))
	}

	return findings
}

// countLogicalOps counts && and || in an expression subtree. Comparison and
// arithmetic operators do not count.
func countLogicalOps(e ast.Expr) int {
	count := 0

	ast.Inspect(e, func(n ast.Node) bool {
		if b, ok := n.(*ast.BinaryExpr); ok && (b.Op == token.LAND || b.Op == token.LOR) {
			count++
		}

		return true
	})

	return count
}
