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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/astutil"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/nilable"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// NilReturn flags functions whose single result expresses absence as nil:
// a pointer result, a channel-of-pointer result, or a defined type resolving
// to a pointer. The finding suggests the configured Option wrapper instead.
//
// Findings of this rule always carry [finding.SeverityWarning]. Info-level
// findings have historically vanished from build output; the severity is a
// hard invariant covered by tests.
type NilReturn struct {
	// Wrapper is the target Option type; the zero value means
	// [nilable.DefaultWrapper].
	Wrapper nilable.Wrapper

	// Extended enables the operator-level sub-detectors for explicit nil
	// comparisons and nil fallback assignments.
	Extended bool
}

// Rule implements [Detector].
func (NilReturn) Rule() string { return finding.RuleNilReturn }

// Detect implements [Detector]. Idiomatic multi-result signatures such as
// (T, error) are never flagged; only a sole result is classified.
func (d NilReturn) Detect(f source.File, file inspector.Cursor) []finding.Finding {
	wrapper := d.Wrapper
	if wrapper == (nilable.Wrapper{}) {
		wrapper = nilable.DefaultWrapper()
	}

	res := nilable.NewResolver(f.TypesInfo(), f.Pkg(), wrapper)

	var findings []finding.Finding

	// Functions reported for their result type; the operator sub-detectors
	// stay quiet inside them to avoid redundant noise.
	flagged := make(map[*ast.FuncDecl]bool)

	for c := range file.Preorder((*ast.FuncDecl)(nil)) {
		fn := c.Node().(*ast.FuncDecl)
		if fn.Body == nil {
			continue // no implementation to rewrite
		}

		result := astutil.SingleResult(fn.Type)
		if result == nil {
			continue
		}

		shape := res.Classify(result.Type)
		if shape.Kind != nilable.Nilable && shape.Kind != nilable.ChanWrapped {
			continue
		}

		msg := fmt.Sprintf("Function '%s' returns nilable type '%s'. Consider using '%s' to make absence of value explicit",
			fn.Name.Name, typeText(f, res, result.Type), suggestedType(f, res, shape))
		findings = append(findings, finding.New(finding.RuleNilReturn, finding.SeverityWarning,
			result.Type.Pos(), result.Type.End(), msg))
		flagged[fn] = true
	}

	if d.Extended {
		findings = append(findings, d.nilChecks(f, file, res, flagged)...)
	}

	return findings
}

// typeText renders a type expression as written, falling back to the
// resolved type when the raw text is unavailable.
func typeText(f source.File, res nilable.Resolver, e ast.Expr) string {
	if text := f.Text(e); text != "" {
		return text
	}

	if info := f.TypesInfo(); info != nil {
		if t := info.TypeOf(e); t != nil && t != types.Typ[types.Invalid] {
			return res.TypeString(t)
		}
	}

	return types.ExprString(e)
}

// suggestedType builds the Option-wrapped replacement type for a shape, e.g.
// "optional.Option[User]" or "<-chan optional.Option[User]".
func suggestedType(f source.File, res nilable.Resolver, shape nilable.Shape) string {
	var inner string

	switch {
	case shape.Elem != nil:
		inner = typeText(f, res, shape.Elem)
	case shape.ElemType != nil:
		inner = res.TypeString(shape.ElemType)
	default:
		inner = "?" // unreachable for reported shapes
	}

	opt := optionText(res.Wrapper().Qualifier(f.AST()), res.Wrapper().Name, inner)
	if shape.Kind == nilable.ChanWrapped {
		return nilable.ChanPrefix(shape.Dir) + opt
	}

	return opt
}

// optionText renders the wrapper type reference, honoring dot imports.
func optionText(qual, name, inner string) string {
	if qual == "" {
		return name + "[" + inner + "]"
	}

	return qual + "." + name + "[" + inner + "]"
}

// nilChecks implements the operator-level sub-detectors: explicit comparison
// of a pointer-shaped value against nil, and the nil fallback pattern
// `if p == nil { p = ... }`. Both feed the nil-return rule.
//
// Error values are interfaces, not pointers, so idiomatic err != nil checks
// never match. Without type information the sub-detectors stay quiet rather
// than guess.
func (d NilReturn) nilChecks(f source.File, file inspector.Cursor, res nilable.Resolver, flagged map[*ast.FuncDecl]bool) []finding.Finding {
	info := f.TypesInfo()
	if info == nil {
		return nil
	}

	wrapperRef := optionRef(res.Wrapper(), f.AST())

	var findings []finding.Finding

	for c := range file.Preorder((*ast.BinaryExpr)(nil)) {
		be := c.Node().(*ast.BinaryExpr)
		if be.Op != token.EQL && be.Op != token.NEQ {
			continue
		}

		operand := nonNilOperand(info, be)
		if operand == nil || !res.IsPointerShaped(info.TypeOf(operand)) {
			continue
		}

		if enclosingFlagged(c, flagged) {
			continue
		}

		if ifStmt := coalescingIf(c, be, operand); ifStmt != nil {
			msg := fmt.Sprintf("Nil fallback assignment; consider using '%s' to provide an explicit default", wrapperRef)
			findings = append(findings, finding.New(finding.RuleNilReturn, finding.SeverityWarning,
				ifStmt.Pos(), ifStmt.Pos()+token.Pos(len("if")), msg))

			continue
		}

		msg := fmt.Sprintf("Explicit nil comparison on nilable value; consider using '%s' to make absence explicit", wrapperRef)
		findings = append(findings, finding.New(finding.RuleNilReturn, finding.SeverityWarning,
			be.OpPos, be.OpPos+token.Pos(len(be.Op.String())), msg))
	}

	return findings
}

// optionRef renders the wrapper reference without type arguments for
// messages, e.g. "optional.Option".
func optionRef(w nilable.Wrapper, file *ast.File) string {
	if qual := w.Qualifier(file); qual != "" {
		return qual + "." + w.Name
	}

	return w.Name
}

// enclosingFlagged reports whether the cursor sits inside a function already
// reported for its result type.
func enclosingFlagged(c inspector.Cursor, flagged map[*ast.FuncDecl]bool) bool {
	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		return flagged[e.Node().(*ast.FuncDecl)]
	}

	return false
}

// coalescingIf matches `if p == nil { p = <fallback> }` and returns the if
// statement, with the comparison as its condition and a single assignment to
// the compared value as its body.
func coalescingIf(c inspector.Cursor, be *ast.BinaryExpr, operand ast.Expr) *ast.IfStmt {
	if be.Op != token.EQL {
		return nil
	}

	ifStmt, ok := c.Parent().Node().(*ast.IfStmt)
	if !ok || ifStmt.Cond != ast.Expr(be) || ifStmt.Else != nil {
		return nil
	}

	if ifStmt.Body == nil || len(ifStmt.Body.List) != 1 {
		return nil
	}

	assign, ok := ifStmt.Body.List[0].(*ast.AssignStmt)
	if !ok || assign.Tok != token.ASSIGN || len(assign.Lhs) != 1 {
		return nil
	}

	if types.ExprString(assign.Lhs[0]) != types.ExprString(operand) {
		return nil
	}

	return ifStmt
}
