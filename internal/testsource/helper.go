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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of detectors and rewriters by handling
// the common boilerplate of parsing and type-checking complete Go files.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

const testpkg = "test"

// Load parses and type-checks a complete Go file and returns it bundled as a
// [source.File] together with the file's [inspector.Cursor], ready to hand to
// a detector or rewriter. The source must start with a package clause.
func Load(tb testing.TB, src string) (source.File, inspector.Cursor) {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	file := source.NewFile(fset, f, info, pkg, []byte(src))
	if !file.Valid() {
		tb.Fatal("Source file without valid position table")
	}

	return file, fileCursor(tb, f)
}

// Parse parses a complete Go file, including comments.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing components that require type information
// (e.g. for type identity or the error interface).
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}

// fileCursor returns the cursor of the file node, the shape detectors receive
// from the run pipeline.
func fileCursor(tb testing.TB, f *ast.File) inspector.Cursor {
	tb.Helper()

	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Children() {
		return c
	}

	tb.Fatal("Inspector without file node")

	return root
}
