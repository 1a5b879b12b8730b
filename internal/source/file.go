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

// Package source bundles the host-provided views of a single parsed file:
// its syntax tree, position table, type information and raw text. Detectors
// and rewriters consume it read-only.
package source

import (
	"go/ast"
	"go/token"
	"go/types"
	"regexp"
	"slices"
	"strings"
)

// lintelligent is the name of the linter in nolint directives.
const lintelligent = "lintelligent"

// File holds everything known about a single source file under analysis.
type File struct {
	file      *ast.File
	handle    *token.File
	info      *types.Info
	pkg       *types.Package
	content   []byte
	generated bool
}

// NewFile creates a [File]. Type information, package and content may each be
// nil; consumers degrade accordingly. A nil file or missing position table
// yields an invalid File that callers must skip.
func NewFile(fset *token.FileSet, file *ast.File, info *types.Info, pkg *types.Package, content []byte) File {
	if file == nil {
		return File{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return File{}
	}

	generated := ast.IsGenerated(file)

	return File{file: file, handle: handle, info: info, pkg: pkg, content: content, generated: generated}
}

// Valid returns true if the [File] was successfully created from a valid
// file handle.
func (f File) Valid() bool {
	return f.handle != nil
}

// AST returns the file's syntax tree.
func (f File) AST() *ast.File {
	return f.file
}

// TypesInfo returns the type information for the file's package, or nil.
func (f File) TypesInfo() *types.Info {
	return f.info
}

// Pkg returns the file's package, or nil.
func (f File) Pkg() *types.Package {
	return f.pkg
}

// Generated returns true if the file is a generated file.
func (f File) Generated() bool {
	return f.generated
}

// HasContent reports whether the raw file text is available.
func (f File) HasContent() bool {
	return f.content != nil
}

// Text returns the raw source text of a node, exactly as written including
// interior whitespace. It returns "" when the content is unavailable or the
// node's positions do not fall inside this file.
func (f File) Text(n ast.Node) string {
	if f.content == nil || f.handle == nil || n == nil {
		return ""
	}

	pos, end := n.Pos(), n.End()
	if !pos.IsValid() || !end.IsValid() || end < pos {
		return ""
	}

	base := token.Pos(f.handle.Base())
	if pos < base || end > base+token.Pos(f.handle.Size()) {
		return ""
	}

	start, stop := f.handle.Offset(pos), f.handle.Offset(end)
	if stop > len(f.content) {
		return ""
	}

	return string(f.content[start:stop])
}

// Line returns the line of a position within the file.
func (f File) Line(pos token.Pos) int {
	return f.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint:lintelligent comment.
func (f File) NoLintComment(pos token.Pos) bool {
	if f.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(f.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(f.file.Comments) {
		return false
	}

	comment := f.file.Comments[i].List[0]

	if f.Line(comment.Pos()) != f.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a
// `//nolint:lintelligent` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == lintelligent || l == "all" {
			return true
		}
	}

	return false
}
