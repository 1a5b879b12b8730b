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

// Package analyzer implements the lintelligent static analysis pass.
//
// # Overview
//
// Lintelligent reports code health findings in four rules:
//
//   - empty-handler: error handlers with an empty body and deferred recovers
//     that swallow panics
//   - nesting-depth: conditionals nested beyond a configurable depth
//   - dry-damp: duplicated statement blocks and conditions combining too many
//     logical operators
//   - nil-return: functions whose single result expresses absence as nil
//
// # Example
//
// Before:
//
//	func lookup(id string) *User {
//	    u, ok := cache[id]
//	    if !ok {
//	        return nil  // absence is implicit in the pointer
//	    }
//	    return &u
//	}
//
// After applying lintelligent's suggested fix:
//
//	func lookup(id string) optional.Option[User] {
//	    u, ok := cache[id]
//	    if !ok {
//	        return optional.None[User]()  // absence is explicit
//	    }
//	    return optional.Some(u)
//	}
//
// # Suppression
//
// A `//nolint:lintelligent` comment suppresses findings for its line; on the
// last line of a file or function doc comment it suppresses the whole file or
// function.
package analyzer
