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

// Package option is a minimal Option implementation for analyzer tests.
package option

// Option represents a value that may be absent.
type Option[T any] []T

// Some returns a present Option carrying v.
func Some[T any](v T) Option[T] { return Option[T]{v} }

// None returns an absent Option.
func None[T any]() Option[T] { return nil }

// FromNillable converts a nillable pointer into an Option.
func FromNillable[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}

	return Some(*v)
}

// IsSome reports whether the Option carries a value.
func (o Option[T]) IsSome() bool { return len(o) != 0 }

// Unwrap returns the carried value; absent Options yield the zero value.
func (o Option[T]) Unwrap() T {
	if len(o) == 0 {
		var zero T

		return zero
	}

	return o[0]
}
