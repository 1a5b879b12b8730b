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
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/astutil"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// EmptyHandler flags error handlers whose body contains zero statements: an
// `if err != nil` check with an empty block, and a deferred closure that
// swallows recover without acting on it.
//
// A handler containing only a comment is still flagged; trivia is not
// inspected. This is an accepted design choice, not an oversight.
type EmptyHandler struct{}

// Rule implements [Detector].
func (EmptyHandler) Rule() string { return finding.RuleEmptyHandler }

// Detect implements [Detector].
func (EmptyHandler) Detect(f source.File, file inspector.Cursor) []finding.Finding {
	var findings []finding.Finding

	for c := range file.Preorder((*ast.IfStmt)(nil), (*ast.DeferStmt)(nil)) {
		switch n := c.Node().(type) {
		case *ast.IfStmt:
			if emptyErrorHandler(f.TypesInfo(), n) {
				findings = append(findings, finding.New(finding.RuleEmptyHandler, finding.SeverityWarning,
					n.Pos(), n.End(), "Empty error handler discards the error"))
			}

		case *ast.DeferStmt:
			if call := swallowedRecover(f.TypesInfo(), n); call != nil {
				findings = append(findings, finding.New(finding.RuleEmptyHandler, finding.SeverityWarning,
					call.Pos(), call.End(), "Deferred recover silently swallows panics"))
			}
		}
	}

	return findings
}

// emptyErrorHandler reports whether an if statement checks an error against
// nil and then does nothing.
func emptyErrorHandler(info *types.Info, n *ast.IfStmt) bool {
	if n.Body == nil || len(n.Body.List) != 0 || n.Else != nil {
		return false
	}

	cond, ok := ast.Unparen(n.Cond).(*ast.BinaryExpr)
	if !ok || cond.Op != token.NEQ {
		return false
	}

	operand := nonNilOperand(info, cond)

	return operand != nil && isErrorValue(info, operand)
}

// nonNilOperand returns the operand compared against nil, or nil when
// neither side is the nil literal.
func nonNilOperand(info *types.Info, cond *ast.BinaryExpr) ast.Expr {
	switch {
	case astutil.IsNilIdent(info, cond.Y):
		return cond.X
	case astutil.IsNilIdent(info, cond.X):
		return cond.Y
	default:
		return nil
	}
}

// isErrorValue reports whether an expression carries an error. With type
// information the error interface decides; without it the check degrades to
// the conventional err naming.
func isErrorValue(info *types.Info, e ast.Expr) bool {
	if info != nil {
		if t := info.TypeOf(e); t != nil && t != types.Typ[types.Invalid] {
			return implementsError(t)
		}
	}

	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return false
	}

	return id.Name == "err" || strings.HasSuffix(id.Name, "Err")
}

var errorInterface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func implementsError(t types.Type) bool {
	return types.Implements(t, errorInterface)
}

// swallowedRecover returns the recover call of a deferred closure whose body
// consists solely of discarding recover's result.
func swallowedRecover(info *types.Info, n *ast.DeferStmt) *ast.CallExpr {
	lit, ok := n.Call.Fun.(*ast.FuncLit)
	if !ok || lit.Body == nil || len(lit.Body.List) != 1 {
		return nil
	}

	switch stmt := lit.Body.List[0].(type) {
	case *ast.ExprStmt:
		if call := recoverCall(info, stmt.X); call != nil {
			return call
		}

	case *ast.AssignStmt:
		// only `_ = recover()`
		if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return nil
		}

		if id, ok := stmt.Lhs[0].(*ast.Ident); !ok || id.Name != "_" {
			return nil
		}

		return recoverCall(info, stmt.Rhs[0])
	}

	return nil
}

// recoverCall returns the expression as a call to the builtin recover, or nil.
func recoverCall(info *types.Info, e ast.Expr) *ast.CallExpr {
	call, ok := ast.Unparen(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil
	}

	id, ok := call.Fun.(*ast.Ident)
	if !ok || id.Name != "recover" {
		return nil
	}

	if info != nil {
		if obj := info.Uses[id]; obj != nil && obj != types.Universe.Lookup("recover") {
			return nil // shadowed recover
		}
	}

	return call
}
