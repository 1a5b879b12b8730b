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

package rewrite_test

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/detect"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/nilable"
	. "github.com/Lintelligent-org/Lintelligent/internal/rewrite"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
	"github.com/Lintelligent-org/Lintelligent/internal/testsource"
)

var testWrapper = nilable.Wrapper{Path: "test/option", Name: "Option", Qual: "option"}

const pointerSrc = `package test

type User struct {
	name string
}

func lookup(users map[string]*User, id string) *User {
	if u, ok := users[id]; ok {
		return u
	}

	if id == "" {
		return nil
	}

	return &User{name: id}
}
`

const pointerFixed = `package test

import option "test/option"

type User struct {
	name string
}

func lookup(users map[string]*User, id string) option.Option[User] {
	if u, ok := users[id]; ok {
		return option.FromNillable(u)
	}

	if id == "" {
		return option.None[User]()
	}

	return option.Some(User{name: id})
}
`

func TestNilToOptionPointer(t *testing.T) {
	t.Parallel()

	f, file, fset := loadChecked(t, pointerSrc)

	edits := rewriteOnly(t, f, file)
	assertApplied(t, fset, f, pointerSrc, edits, pointerFixed)
}

const definedSrc = `package test

type Conn struct {
	open bool
}

type ref *Conn

func dial(ok bool) ref {
	if !ok {
		return nil
	}

	c := &Conn{open: true}

	return c
}
`

const definedFixed = `package test

import option "test/option"

type Conn struct {
	open bool
}

type ref *Conn

func dial(ok bool) option.Option[Conn] {
	if !ok {
		return option.None[Conn]()
	}

	c := &Conn{open: true}

	return option.FromNillable[Conn](c)
}
`

// Defined pointer types leave nothing for type inference, so every
// constructor spells out the type argument.
func TestNilToOptionDefinedType(t *testing.T) {
	t.Parallel()

	f, file, fset := loadChecked(t, definedSrc)

	edits := rewriteOnly(t, f, file)
	assertApplied(t, fset, f, definedSrc, edits, definedFixed)
}

const chanSrc = `package test

type User struct {
	name string
}

func stream(users []*User) <-chan *User {
	out := make(chan *User, 1)

	go func() {
		for _, u := range users {
			out <- u
		}

		out <- nil
		close(out)
	}()

	return out
}
`

const chanFixed = `package test

import option "test/option"

type User struct {
	name string
}

func stream(users []*User) <-chan option.Option[User] {
	out := make(chan option.Option[User], 1)

	go func() {
		for _, u := range users {
			out <- option.FromNillable(u)
		}

		out <- option.None[User]()
		close(out)
	}()

	return out
}
`

// Channel results rewrite the element type, the matching make sites, and the
// sends inside the producer goroutine. The returned channel value itself
// stays as written.
func TestNilToOptionChan(t *testing.T) {
	t.Parallel()

	f, file, fset := loadChecked(t, chanSrc)

	edits := rewriteOnly(t, f, file)
	assertApplied(t, fset, f, chanSrc, edits, chanFixed)
}

const importedSrc = `package test

import (
	"fmt"

	option "test/option"
)

type User struct {
	name string
}

func render(u *User) string {
	return fmt.Sprint(u)
}

func pick(users []*User) *User {
	if len(users) == 0 {
		return nil
	}

	return users[0]
}
`

const importedFixed = `package test

import (
	"fmt"

	option "test/option"
)

type User struct {
	name string
}

func render(u *User) string {
	return fmt.Sprint(u)
}

func pick(users []*User) option.Option[User] {
	if len(users) == 0 {
		return option.None[User]()
	}

	return option.FromNillable(users[0])
}
`

// An existing import of the wrapper package is reused, not duplicated.
// Parse-only on purpose: the wrapper package does not resolve, and syntactic
// pointer results classify without type information.
func TestNilToOptionImported(t *testing.T) {
	t.Parallel()

	f, file, fset := loadParsed(t, importedSrc)

	findings := detect.NilReturn{Wrapper: testWrapper}.Detect(f, file)
	require.Len(t, findings, 1)

	edits := NilToOption{Wrapper: testWrapper}.Rewrite(findings[0], f, file)
	require.NotEmpty(t, edits)

	assertApplied(t, fset, f, importedSrc, edits, importedFixed)
}

const singleImportSrc = `package test

import "fmt"

type User struct {
	name string
}

func show(u *User) *User {
	fmt.Println(u.name)

	return u
}
`

// A file with a single unparenthesized import gets a second import
// declaration right after it.
func TestNilToOptionImportAfterDecl(t *testing.T) {
	t.Parallel()

	f, file, _ := loadChecked(t, singleImportSrc)

	edits := rewriteOnly(t, f, file)
	require.NotEmpty(t, edits)

	last := edits[len(edits)-1]
	assert.Equal(t, `
import option "test/option"`, string(last.NewText))
	assert.Equal(t, last.Pos, last.End)
}

func TestNilToOptionStale(t *testing.T) {
	t.Parallel()

	f, file, _ := loadChecked(t, pointerSrc)

	name := f.AST().Name
	stale := finding.New(finding.RuleNilReturn, finding.SeverityWarning,
		name.Pos(), name.End(), "Function 'lookup' returns nilable type '*User'")

	assert.Nil(t, NilToOption{Wrapper: testWrapper}.Rewrite(stale, f, file))
}

// Operator-level findings of the same rule have no structural fix; their
// spans do not address a result type, so the rewriter stands down.
func TestNilToOptionComparisonFinding(t *testing.T) {
	t.Parallel()

	src := `package test

type Conn struct {
	open bool
}

func describe(c *Conn) string {
	if c == nil {
		return "none"
	}

	return "conn"
}
`

	f, file, _ := loadChecked(t, src)

	findings := detect.NilReturn{Wrapper: testWrapper, Extended: true}.Detect(f, file)
	require.Len(t, findings, 1)

	assert.Nil(t, NilToOption{Wrapper: testWrapper}.Rewrite(findings[0], f, file))
}

// rewriteOnly runs the detector, expects exactly one finding, and returns the
// rewriter's edits for it.
func rewriteOnly(tb testing.TB, f source.File, file inspector.Cursor) []analysis.TextEdit {
	tb.Helper()

	findings := detect.NilReturn{Wrapper: testWrapper}.Detect(f, file)
	if len(findings) != 1 {
		tb.Fatalf("Expected one finding, got %d", len(findings))
	}

	edits := NilToOption{Wrapper: testWrapper}.Rewrite(findings[0], f, file)
	if len(edits) == 0 {
		tb.Fatal("Rewriter produced no edits")
	}

	return edits
}

// loadChecked parses and type-checks a source file, keeping the file set for
// offset mapping when edits are applied.
func loadChecked(tb testing.TB, src string) (source.File, inspector.Cursor, *token.FileSet) {
	tb.Helper()

	fset, astFile := testsource.Parse(tb, src)
	pkg, info := testsource.Check(tb, fset, astFile)

	f := source.NewFile(fset, astFile, info, pkg, []byte(src))
	if !f.Valid() {
		tb.Fatal("Source file without valid position table")
	}

	return f, cursorOf(tb, astFile), fset
}

// loadParsed skips type checking, for sources whose imports do not resolve.
func loadParsed(tb testing.TB, src string) (source.File, inspector.Cursor, *token.FileSet) {
	tb.Helper()

	fset, astFile := testsource.Parse(tb, src)

	f := source.NewFile(fset, astFile, nil, nil, []byte(src))
	if !f.Valid() {
		tb.Fatal("Source file without valid position table")
	}

	return f, cursorOf(tb, astFile), fset
}

func cursorOf(tb testing.TB, astFile *ast.File) inspector.Cursor {
	tb.Helper()

	root := inspector.New([]*ast.File{astFile}).Root()
	for c := range root.Children() {
		return c
	}

	tb.Fatal("Inspector without file node")

	return root
}

// assertApplied splices the edits into the source text and compares the
// result, printing a unified diff on mismatch.
func assertApplied(tb testing.TB, fset *token.FileSet, f source.File, src string, edits []analysis.TextEdit, want string) {
	tb.Helper()

	handle := fset.File(f.AST().FileStart)
	if handle == nil {
		tb.Fatal("Missing position table")
	}

	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) })

	var sb strings.Builder

	last := 0

	for _, e := range sorted {
		start, end := handle.Offset(e.Pos), handle.Offset(e.End)
		if start < last || end < start || end > len(src) {
			tb.Fatalf("Edit out of order or out of bounds: [%d, %d) after %d", start, end, last)
		}

		sb.WriteString(src[last:start])
		sb.Write(e.NewText)

		last = end
	}

	sb.WriteString(src[last:])

	got := sb.String()
	if got == want {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		tb.Fatalf("Rewritten source differs from expectation:\n%s", got)
	}

	tb.Fatalf("Rewritten source differs from expectation:\n%s", diff)
}
