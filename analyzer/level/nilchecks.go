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

// Package level defines textual configuration levels for lintelligent rules.
package level

import (
	"fmt"
	"strings"
)

// NilChecks specifies the nil analysis level.
type NilChecks uint8

const (
	// NilChecksFull reports nilable result types plus explicit nil
	// comparisons and nil fallback assignments.
	NilChecksFull NilChecks = iota

	// NilChecksOff restricts the nil rule to result types only.
	NilChecksOff
)

// Enabled reports whether extended nil checks are enabled at this level.
func (o NilChecks) Enabled() bool {
	return o == NilChecksFull
}

// MarshalText implements [encoding.TextMarshaler].
func (o NilChecks) MarshalText() ([]byte, error) {
	switch o {
	case NilChecksFull:
		return []byte("full"), nil

	case NilChecksOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown nil checks level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *NilChecks) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "full":
		*o = NilChecksFull

	case "off", "false":
		*o = NilChecksOff

	default:
		return fmt.Errorf("unknown nil checks level %q", string(text))
	}

	return nil
}
