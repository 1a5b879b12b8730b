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

package nilable

import (
	"go/ast"
	"strconv"
)

// Wrapper identifies the Option-like target type that replaces nil-as-absence
// results. Identity is the import path plus type name, so aliased imports and
// type aliases are recognized.
type Wrapper struct {
	// Path is the import path of the package providing the wrapper.
	Path string

	// Name is the name of the generic wrapper type.
	Name string

	// Qual is the package qualifier used in generated code when the file
	// does not already import the package under another name.
	Qual string
}

// DefaultWrapper returns the default Option wrapper.
func DefaultWrapper() Wrapper {
	return Wrapper{
		Path: "github.com/moznion/go-optional",
		Name: "Option",
		Qual: "optional",
	}
}

// Qualifier returns the package qualifier to use for the wrapper within the
// given file. An existing import of the wrapper package wins, including
// renamed imports; a dot import yields the empty qualifier.
func (w Wrapper) Qualifier(file *ast.File) string {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != w.Path {
			continue
		}

		if imp.Name == nil {
			return w.Qual
		}

		switch imp.Name.Name {
		case ".":
			return ""
		case "_":
			continue
		default:
			return imp.Name.Name
		}
	}

	return w.Qual
}

// Imported reports whether the file already imports the wrapper package
// under any name.
func (w Wrapper) Imported(file *ast.File) bool {
	for _, imp := range file.Imports {
		if path, err := strconv.Unquote(imp.Path.Value); err == nil && path == w.Path {
			return true
		}
	}

	return false
}
