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

package rewrite

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// EmptyHandlerComment inserts a placeholder comment into an empty error
// handler, prompting the author to either handle the error or document why
// it is discarded.
type EmptyHandlerComment struct{}

// Rule implements [Rewriter].
func (EmptyHandlerComment) Rule() string { return finding.RuleEmptyHandler }

// Rewrite implements [Rewriter].
func (EmptyHandlerComment) Rewrite(fdg finding.Finding, _ source.File, file inspector.Cursor) []analysis.TextEdit {
	c, ok := file.FindByPos(fdg.Pos(), fdg.End())
	if !ok {
		return nil // stale finding
	}

	switch n := c.Node().(type) {
	case *ast.IfStmt:
		if n.Body == nil || len(n.Body.List) != 0 {
			return nil // the handler is no longer empty
		}

		pos := n.Body.Lbrace + 1

		return []analysis.TextEdit{{Pos: pos, End: pos, NewText: []byte("\n// TODO: handle the error\n")}}

	case *ast.CallExpr:
		return []analysis.TextEdit{{Pos: n.End(), End: n.End(), NewText: []byte("\n// TODO: handle the panic\n")}}

	default:
		return nil
	}
}
