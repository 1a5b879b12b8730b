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
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/astutil"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/nilable"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// NilToOption rewrites a function whose result expresses absence as nil into
// one returning the configured Option wrapper: the result type, every return
// site in the body, matching channel element types and sends, plus a missing
// import of the wrapper's package.
//
// The value rewrites are best effort: a value that is not the nil literal and
// not an address-of expression is wrapped with the nil-tolerant constructor,
// which is correct for plain pointers but approximates for defined pointer
// types. Receives from a rewritten channel inside the same function are left
// alone; deeper flow analysis is outside this rewriter's scope.
//
// Running the rewriter on an already-wrapped function cannot happen through
// regular dispatch: the detector never produces a finding for a result that
// already is the wrapper, which is what makes the fix idempotent.
type NilToOption struct {
	// Wrapper is the target Option type; the zero value means
	// [nilable.DefaultWrapper].
	Wrapper nilable.Wrapper
}

// Rule implements [Rewriter].
func (NilToOption) Rule() string { return finding.RuleNilReturn }

// Rewrite implements [Rewriter]. The finding's span must address the result
// type of a function declaration; anything else is treated as stale and
// yields no edits. All edits are computed before returning so the original
// tree stays untouched until the full set is known.
func (r NilToOption) Rewrite(fdg finding.Finding, f source.File, file inspector.Cursor) []analysis.TextEdit {
	c, ok := file.FindByPos(fdg.Pos(), fdg.End())
	if !ok {
		return nil // stale finding
	}

	var (
		fn    *ast.FuncDecl
		fnCur inspector.Cursor
	)

	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		fnCur, fn = e, e.Node().(*ast.FuncDecl)

		break
	}

	if fn == nil || fn.Body == nil {
		return nil
	}

	result := astutil.SingleResult(fn.Type)
	if result == nil || result.Type != c.Node() {
		return nil // the span no longer addresses the result type
	}

	wrapper := r.Wrapper
	if wrapper == (nilable.Wrapper{}) {
		wrapper = nilable.DefaultWrapper()
	}

	res := nilable.NewResolver(f.TypesInfo(), f.Pkg(), wrapper)
	shape := res.Classify(result.Type)

	names := optionNames{
		qual:     wrapper.Qualifier(f.AST()),
		name:     wrapper.Name,
		inner:    innerText(f, res, shape),
		explicit: shape.Semantic,
	}
	if names.inner == "" {
		return nil
	}

	var edits []analysis.TextEdit

	switch shape.Kind {
	case nilable.Nilable:
		edits = append(edits, replace(result.Type, names.typ()))
		edits = append(edits, returnEdits(f, fnCur, names)...)

	case nilable.ChanWrapped:
		// Only the element type changes; the chan keyword and direction
		// arrows stay as written.
		if shape.Ptr != nil {
			edits = append(edits, replace(shape.Ptr, names.typ()))
		} else {
			edits = append(edits, replace(result.Type, nilable.ChanPrefix(shape.Dir)+names.typ()))
		}

		edits = append(edits, chanEdits(f, fnCur, result.Type, shape, names)...)

	default:
		return nil // no finding-worthy shape left; treat as stale
	}

	if !wrapper.Imported(f.AST()) {
		edits = append(edits, importEdit(f.AST(), wrapper))
	}

	return edits
}

// returnEdits rewrites every return site of the function body. Returns
// belonging to nested function literals keep their own semantics and are
// skipped.
func returnEdits(f source.File, fnCur inspector.Cursor, names optionNames) []analysis.TextEdit {
	var edits []analysis.TextEdit

	for c := range fnCur.Preorder((*ast.ReturnStmt)(nil)) {
		if inFuncLit(c) {
			continue
		}

		ret := c.Node().(*ast.ReturnStmt)
		if len(ret.Results) != 1 {
			continue // malformed under live editing; degrade quietly
		}

		expr := ret.Results[0]
		edits = append(edits, replace(expr, wrapValue(f, expr, names)))
	}

	return edits
}

// chanEdits rewrites the channel plumbing of a channel-of-pointer function:
// every channel type in the function with the same element type, and every
// send into such a channel. Sends are rewritten inside nested function
// literals too, since producers typically run as goroutines started by the
// function.
func chanEdits(f source.File, fnCur inspector.Cursor, resultType ast.Expr, shape nilable.Shape, names optionNames) []analysis.TextEdit {
	info := f.TypesInfo()
	if info == nil || shape.PtrType == nil {
		return nil // signature-only rewrite without type information
	}

	var edits []analysis.TextEdit

	for c := range fnCur.Preorder((*ast.ChanType)(nil)) {
		ct := c.Node().(*ast.ChanType)
		if ast.Expr(ct) == resultType {
			continue // already rewritten above
		}

		if ch, ok := typeOf(info, ct).(*types.Chan); ok && types.Identical(ch.Elem(), shape.PtrType) {
			edits = append(edits, replace(ct.Value, names.typ()))
		}
	}

	for c := range fnCur.Preorder((*ast.SendStmt)(nil)) {
		snd := c.Node().(*ast.SendStmt)

		ch, ok := typeOf(info, snd.Chan).(*types.Chan)
		if ok && types.Identical(ch.Elem(), shape.PtrType) {
			edits = append(edits, replace(snd.Value, wrapValue(f, snd.Value, names)))
		}
	}

	return edits
}

// wrapValue rewrites a single produced value: the nil literal becomes the
// absent constructor, an address-of expression collapses into the present
// constructor carrying the pointee, and anything else goes through the
// nil-tolerant constructor.
func wrapValue(f source.File, expr ast.Expr, names optionNames) string {
	var info *types.Info
	if f.Valid() {
		info = f.TypesInfo()
	}

	e := ast.Unparen(expr)

	switch {
	case astutil.IsNilIdent(info, e):
		return names.none()

	case isAddrOf(e):
		return names.some(exprText(f, e.(*ast.UnaryExpr).X))

	default:
		return names.fromNillable(exprText(f, expr))
	}
}

func isAddrOf(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryExpr)

	return ok && u.Op == token.AND
}

// inFuncLit reports whether a cursor sits inside a function literal.
func inFuncLit(c inspector.Cursor) bool {
	for range c.Enclosing((*ast.FuncLit)(nil)) {
		return true
	}

	return false
}

// innerText renders the pointee type for use as the wrapper's type argument.
func innerText(f source.File, res nilable.Resolver, shape nilable.Shape) string {
	switch {
	case shape.Elem != nil:
		return exprText(f, shape.Elem)
	case shape.ElemType != nil:
		return res.TypeString(shape.ElemType)
	default:
		return ""
	}
}

// exprText returns the expression as written, falling back to a printed form
// when the raw content is unavailable.
func exprText(f source.File, e ast.Expr) string {
	if text := f.Text(e); text != "" {
		return text
	}

	return types.ExprString(e)
}

func typeOf(info *types.Info, e ast.Expr) types.Type {
	t := info.TypeOf(e)
	if t == nil {
		return nil
	}

	return t.Underlying()
}

// replace builds a text edit substituting a node's source range.
func replace(n ast.Node, text string) analysis.TextEdit {
	return analysis.TextEdit{Pos: n.Pos(), End: n.End(), NewText: []byte(text)}
}

// importEdit inserts a named import of the wrapper package, extending the
// last import block when one exists and otherwise starting a new declaration
// after the package clause. Leading file comments stay untouched either way.
func importEdit(file *ast.File, w nilable.Wrapper) analysis.TextEdit {
	spec := w.Qual + " " + strconv.Quote(w.Path)

	var last *ast.GenDecl

	for _, d := range file.Decls {
		if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
			last = g
		}
	}

	switch {
	case last != nil && last.Lparen.IsValid():
		return analysis.TextEdit{Pos: last.Rparen, End: last.Rparen, NewText: []byte("\n" + spec + "\n")}

	case last != nil:
		return analysis.TextEdit{Pos: last.End(), End: last.End(), NewText: []byte("\nimport " + spec)}

	default:
		pos := file.Name.End()

		return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport " + spec)}
	}
}

// optionNames renders references to the wrapper type. When explicit is set
// the type argument is always spelled out, since inference cannot see
// through defined pointer types.
type optionNames struct {
	qual     string
	name     string
	inner    string
	explicit bool
}

func (o optionNames) prefix() string {
	if o.qual == "" {
		return ""
	}

	return o.qual + "."
}

// typ renders the wrapper type, e.g. "optional.Option[User]".
func (o optionNames) typ() string {
	return o.prefix() + o.name + "[" + o.inner + "]"
}

// none renders the absent constructor, e.g. "optional.None[User]()".
func (o optionNames) none() string {
	return o.prefix() + "None[" + o.inner + "]()"
}

// some renders the present constructor around a value.
func (o optionNames) some(arg string) string {
	return o.prefix() + "Some(" + arg + ")"
}

// fromNillable renders the nil-tolerant constructor around a pointer value.
func (o optionNames) fromNillable(arg string) string {
	if o.explicit {
		return o.prefix() + "FromNillable[" + o.inner + "](" + arg + ")"
	}

	return o.prefix() + "FromNillable(" + arg + ")"
}
