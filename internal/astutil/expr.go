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

package astutil

import (
	"go/ast"
	"go/types"
)

// IsNilIdent reports whether an expression is the predeclared nil, looking
// through parentheses. Without type information the check falls back to the
// identifier's name.
func IsNilIdent(info *types.Info, e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok || id.Name != "nil" {
		return false
	}

	if info == nil {
		return true
	}

	obj := info.Uses[id]

	return obj == nil || obj == types.Universe.Lookup("nil")
}

// SingleResult returns the sole result field of a function type, or nil when
// the function has no results, multiple results, or a single field declaring
// several names.
func SingleResult(ft *ast.FuncType) *ast.Field {
	if ft == nil || ft.Results == nil || len(ft.Results.List) != 1 {
		return nil
	}

	field := ft.Results.List[0]
	if len(field.Names) > 1 {
		return nil
	}

	return field
}
