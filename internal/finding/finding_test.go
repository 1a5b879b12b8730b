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

package finding_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Lintelligent-org/Lintelligent/internal/finding"
)

func TestNew(t *testing.T) {
	t.Parallel()

	f := New(RuleNilReturn, SeverityWarning, 10, 20, "message")

	assert.Equal(t, RuleNilReturn, f.Rule)
	assert.Equal(t, SeverityWarning, f.Severity)
	assert.Equal(t, token.Pos(10), f.Pos())
	assert.Equal(t, token.Pos(20), f.End())
	assert.Equal(t, "message", f.Message)
}

func TestSpanContract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end token.Pos
	}{
		{name: "Invalid", start: token.NoPos, end: 5},
		{name: "Reversed", start: 7, end: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Panics(t, func() { NewSpan(tt.start, tt.end) })
		})
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}
