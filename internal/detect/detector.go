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

// Package detect implements the tree-pattern detectors. Each detector is a
// pure function over one file's syntax tree and type information: same input,
// same findings, no shared state, no I/O. Malformed or partially parsed
// subtrees degrade to fewer findings, never to a panic.
package detect

import (
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// Default thresholds shared by the detectors and their configuration surface.
const (
	// DefaultMaxDepth is the conditional nesting depth above which findings
	// are produced.
	DefaultMaxDepth = 3

	// DefaultMinStatements is the minimum block length considered for
	// duplicate detection.
	DefaultMinStatements = 3

	// DefaultMaxConditions is the number of logical operators a single
	// condition may combine before it is flagged.
	DefaultMaxConditions = 3
)

// Detector inspects a single file and reports rule violations. The cursor
// addresses the file's node within its inspector.
type Detector interface {
	// Rule returns the stable rule identifier of the detector's findings.
	Rule() string

	// Detect returns the findings for the file, in deterministic order.
	Detect(f source.File, file inspector.Cursor) []finding.Finding
}
