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

// Package nilable classifies result types by whether they express absence as
// nil. It is a pure query layer over syntax and [go/types]; nothing is cached
// across calls since type information is scoped to one compilation snapshot.
package nilable

import (
	"go/ast"
	"go/types"
)

// Kind is the nilability classification of a result type.
type Kind uint8

const (
	// NotNilable means the type does not use nil to express absence.
	NotNilable Kind = iota

	// Nilable means the result is a pointer-shaped value where nil means
	// "no value".
	Nilable

	// ChanWrapped means the result is a channel carrying pointer-shaped
	// values, the asynchronous variant of [Nilable].
	ChanWrapped

	// AlreadyWrapper means the result already is the target Option type.
	AlreadyWrapper
)

// Shape is the transient classification of a single result type. It is
// computed fresh for every function under analysis and never persisted.
type Shape struct {
	// Kind is the classification outcome.
	Kind Kind

	// Ptr is the pointer-shaped syntax node when the classification was
	// syntactic: the *T expression itself, nil for semantic outcomes.
	Ptr ast.Expr

	// Elem is the pointee syntax for syntactic classifications.
	Elem ast.Expr

	// ElemType is the resolved pointee type; may be nil without type
	// information.
	ElemType types.Type

	// PtrType is the resolved pointer-shaped type as written, e.g. *T or a
	// defined type whose underlying type is *T. May be nil.
	PtrType types.Type

	// Dir is the channel direction for [ChanWrapped] shapes.
	Dir ast.ChanDir

	// Semantic records that the classification required the type checker,
	// i.e. no pointer is spelled in the syntax.
	Semantic bool
}

// Resolver answers nilability questions about the types of a single file's
// package. The zero value works syntactically but resolves nothing.
type Resolver struct {
	info    *types.Info
	pkg     *types.Package
	wrapper Wrapper
}

// NewResolver creates a [Resolver] over the given type information. Both info
// and pkg may be nil; semantic classifications then degrade to "not nilable".
func NewResolver(info *types.Info, pkg *types.Package, wrapper Wrapper) Resolver {
	return Resolver{info: info, pkg: pkg, wrapper: wrapper}
}

// Classify determines the nilability [Shape] of a result type expression.
// The checks run in priority order: syntactic pointer, syntactic
// channel-of-pointer, already-the-wrapper, semantic channel-of-nilable,
// semantic nilable. The first match wins.
func (r Resolver) Classify(result ast.Expr) Shape {
	switch t := ast.Unparen(result).(type) {
	case *ast.StarExpr:
		return Shape{
			Kind:     Nilable,
			Ptr:      t,
			Elem:     t.X,
			ElemType: r.typeOf(t.X),
			PtrType:  r.typeOf(t),
		}

	case *ast.ChanType:
		if star, ok := ast.Unparen(t.Value).(*ast.StarExpr); ok {
			return Shape{
				Kind:     ChanWrapped,
				Ptr:      star,
				Elem:     star.X,
				ElemType: r.typeOf(star.X),
				PtrType:  r.typeOf(star),
				Dir:      t.Dir,
			}
		}
	}

	ty := r.typeOf(result)
	if ty == nil {
		return Shape{} // unresolved types are conservatively not nilable
	}

	if r.IsWrapper(ty) {
		return Shape{Kind: AlreadyWrapper}
	}

	if ch, ok := ty.Underlying().(*types.Chan); ok {
		if r.IsWrapper(ch.Elem()) {
			return Shape{Kind: AlreadyWrapper}
		}

		if elem := PointeeOf(ch.Elem()); elem != nil {
			return Shape{
				Kind:     ChanWrapped,
				ElemType: elem,
				PtrType:  ch.Elem(),
				Dir:      chanDir(ch.Dir()),
				Semantic: true,
			}
		}

		return Shape{}
	}

	if elem := PointeeOf(ty); elem != nil {
		return Shape{
			Kind:     Nilable,
			ElemType: elem,
			PtrType:  ty,
			Semantic: true,
		}
	}

	return Shape{}
}

// IsWrapper reports whether a type is (an instantiation of, or an alias for)
// the configured wrapper type. The check is by resolved package path and type
// name, not syntax, so renamed imports and type aliases are caught.
func (r Resolver) IsWrapper(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Name() == r.wrapper.Name && obj.Pkg().Path() == r.wrapper.Path
}

// IsPointerShaped reports whether a type uses nil pointers to express
// absence: a plain pointer, a defined type or alias with pointer underlying
// type, or a type parameter whose constraint permits only one pointer type.
func (r Resolver) IsPointerShaped(t types.Type) bool {
	return t != nil && PointeeOf(t) != nil
}

// TypeString renders a type minimally qualified relative to the resolver's
// package.
func (r Resolver) TypeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == r.pkg {
			return ""
		}

		return p.Name()
	})
}

// Wrapper returns the configured wrapper identity.
func (r Resolver) Wrapper() Wrapper {
	return r.wrapper
}

// typeOf resolves the type of an expression, mapping missing information and
// error types to nil.
func (r Resolver) typeOf(e ast.Expr) types.Type {
	if r.info == nil {
		return nil
	}

	t := r.info.TypeOf(e)
	if t == nil || t == types.Typ[types.Invalid] {
		return nil
	}

	return t
}

// PointeeOf returns the pointed-to type of a pointer-shaped type, or nil.
// Defined types and aliases are unwrapped to their underlying type; type
// parameters qualify when every term of their constraint is the same pointer
// type.
func PointeeOf(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Pointer:
		return t.Elem()

	case *types.Alias:
		return PointeeOf(types.Unalias(t))

	case *types.Named:
		return PointeeOf(t.Underlying())

	case *types.TypeParam:
		return constraintPointee(t)
	}

	return nil
}

// constraintPointee returns the common pointee when all terms of a type
// parameter's constraint are pointer-shaped with an identical element type.
func constraintPointee(tp *types.TypeParam) types.Type {
	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok || iface.NumEmbeddeds() == 0 {
		return nil
	}

	var elem types.Type

	merge := func(t types.Type) bool {
		e := PointeeOf(t)
		if e == nil || (elem != nil && !types.Identical(e, elem)) {
			return false
		}

		elem = e

		return true
	}

	for i := range iface.NumEmbeddeds() {
		switch emb := iface.EmbeddedType(i).(type) {
		case *types.Union:
			for j := range emb.Len() {
				if !merge(emb.Term(j).Type()) {
					return nil
				}
			}

		default:
			if !merge(emb) {
				return nil
			}
		}
	}

	return elem
}

// chanDir converts a semantic channel direction to its syntactic form.
func chanDir(dir types.ChanDir) ast.ChanDir {
	switch dir {
	case types.SendOnly:
		return ast.SEND
	case types.RecvOnly:
		return ast.RECV
	default:
		return ast.SEND | ast.RECV
	}
}

// ChanPrefix renders the channel keyword with direction arrows for a
// [ChanWrapped] shape.
func ChanPrefix(dir ast.ChanDir) string {
	switch dir {
	case ast.RECV:
		return "<-chan "
	case ast.SEND:
		return "chan<- "
	default:
		return "chan "
	}
}
