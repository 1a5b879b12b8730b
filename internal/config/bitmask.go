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

package config

// BitMask holds a set of binary flags of one flag type. Both flag sets of
// this package fit in a byte, so the constraint stays at ~uint8.
type BitMask[T ~uint8] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T ~uint8](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables a flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets a flag.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable clears a flag.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled reports whether a flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}
