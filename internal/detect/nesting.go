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

	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// Nesting flags conditional statements nested deeper than a fixed limit.
//
// Depth counts the statement itself plus its strictly-enclosing conditionals.
// An if hung directly on the else of another if does not charge its parent:
// an else-if chain reads flat, and is treated as flat. An if wrapped in a
// braced else block is genuine nesting and counts.
type Nesting struct {
	// MaxDepth is the permitted depth; zero means [DefaultMaxDepth].
	MaxDepth int
}

// Rule implements [Detector].
func (Nesting) Rule() string { return finding.RuleNestingDepth }

// Detect implements [Detector].
func (d Nesting) Detect(_ source.File, file inspector.Cursor) []finding.Finding {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var findings []finding.Finding

	for c := range file.Preorder((*ast.IfStmt)(nil), (*ast.SwitchStmt)(nil), (*ast.TypeSwitchStmt)(nil)) {
		depth := conditionalDepth(c)
		if depth <= maxDepth {
			continue
		}

		n := c.Node()
		msg := fmt.Sprintf("Conditional is nested %d levels deep (limit %d); consider flattening or extracting a function",
			depth, maxDepth)
		findings = append(findings, finding.New(finding.RuleNestingDepth, finding.SeverityWarning,
			n.Pos(), keywordEnd(n), msg))
	}

	return findings
}

// conditionalDepth computes the nesting depth of a conditional: one for the
// statement itself plus one per strictly-enclosing conditional, skipping
// else-if links. The walk follows the ancestor stack and simply stops when
// there are no further ancestors, so partial trees never fail.
func conditionalDepth(c inspector.Cursor) int {
	depth := 1
	inner := c.Node()

	for p := range c.Enclosing((*ast.IfStmt)(nil), (*ast.SwitchStmt)(nil), (*ast.TypeSwitchStmt)(nil)) {
		n := p.Node()
		if n == inner {
			continue // Enclosing starts with the cursor's own node
		}

		// An else-if hangs directly off the enclosing if's Else field; the
		// chain is flat, the parent does not add depth.
		if parent, ok := n.(*ast.IfStmt); !ok || parent.Else != inner {
			depth++
		}

		inner = n
	}

	return depth
}

// keywordEnd returns the position just past the statement's leading keyword,
// so findings highlight `if` or `switch` rather than the whole statement.
func keywordEnd(n ast.Node) token.Pos {
	switch n.(type) {
	case *ast.IfStmt:
		return n.Pos() + token.Pos(len("if"))
	default:
		return n.Pos() + token.Pos(len("switch"))
	}
}
