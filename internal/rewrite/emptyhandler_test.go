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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lintelligent-org/Lintelligent/internal/detect"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	. "github.com/Lintelligent-org/Lintelligent/internal/rewrite"
)

const emptyHandlerSrc = `package test

import "errors"

func work() error {
	return errors.New("boom")
}

func ignores() {
	if err := work(); err != nil {
	}
}
`

const emptyHandlerFixed = `package test

import "errors"

func work() error {
	return errors.New("boom")
}

func ignores() {
	if err := work(); err != nil {
// TODO: handle the error

	}
}
`

func TestEmptyHandlerComment(t *testing.T) {
	t.Parallel()

	f, file, fset := loadChecked(t, emptyHandlerSrc)

	findings := detect.EmptyHandler{}.Detect(f, file)
	require.Len(t, findings, 1)

	edits := EmptyHandlerComment{}.Rewrite(findings[0], f, file)
	require.Len(t, edits, 1)

	assertApplied(t, fset, f, emptyHandlerSrc, edits, emptyHandlerFixed)
}

const recoverSrc = `package test

func quiet() {
	defer func() {
		_ = recover()
	}()
}
`

const recoverFixed = `package test

func quiet() {
	defer func() {
		_ = recover()
// TODO: handle the panic

	}()
}
`

func TestEmptyHandlerRecover(t *testing.T) {
	t.Parallel()

	f, file, fset := loadChecked(t, recoverSrc)

	findings := detect.EmptyHandler{}.Detect(f, file)
	require.Len(t, findings, 1)

	edits := EmptyHandlerComment{}.Rewrite(findings[0], f, file)
	require.Len(t, edits, 1)

	assertApplied(t, fset, f, recoverSrc, edits, recoverFixed)
}

func TestEmptyHandlerStale(t *testing.T) {
	t.Parallel()

	f, file, _ := loadChecked(t, emptyHandlerSrc)

	name := f.AST().Name
	stale := finding.New(finding.RuleEmptyHandler, finding.SeverityWarning,
		name.Pos(), name.End(), "Empty error handler discards the error")

	assert.Nil(t, EmptyHandlerComment{}.Rewrite(stale, f, file))
}
