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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/Lintelligent-org/Lintelligent/internal/astutil"
	"github.com/Lintelligent-org/Lintelligent/internal/config"
	"github.com/Lintelligent-org/Lintelligent/internal/finding"
	"github.com/Lintelligent-org/Lintelligent/internal/source"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the lintelligent rule pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("lintelligent: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Lintelligent")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	detectors := r.Detectors()
	rewriters := r.Rewriters()

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		src := source.NewFile(p.Fset, file, p.TypesInfo, p.Pkg, fileContent(p, file))
		if !src.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if src.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && source.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		for _, d := range detectors {
			var findings []finding.Finding

			trace.WithRegion(ctx, d.Rule(), func() {
				findings = d.Detect(src, f)
			})

			for _, fdg := range findings {
				if fdg.Rule != d.Rule() {
					astutil.InternalError(p, fdg, "Detector %s produced a %s finding", d.Rule(), fdg.Rule)

					continue
				}

				// Skip findings suppressed on their line
				if src.NoLintComment(fdg.Pos()) {
					continue
				}

				diagnostic := analysis.Diagnostic{
					Pos:      fdg.Pos(),
					End:      fdg.End(),
					Category: fdg.Rule,
					Message:  fdg.Message,
				}

				if rw, ok := rewriters[fdg.Rule]; ok {
					if edits := rw.Rewrite(fdg, src, f); len(edits) > 0 {
						diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
							Message:   fixMessage(fdg.Rule),
							TextEdits: edits,
						}}
					}
				}

				p.Report(diagnostic)
			}
		}
	}

	return nil, nil
}

// fileContent reads the raw text of a file through the pass, so overlays and
// in-editor buffers are honored. Returns nil when unavailable; text-dependent
// detections then stand down.
func fileContent(p *analysis.Pass, file *ast.File) []byte {
	handle := p.Fset.File(file.FileStart)
	if handle == nil {
		return nil
	}

	content, err := p.ReadFile(handle.Name())
	if err != nil {
		return nil
	}

	return content
}

// fixMessage is the user-facing description of a rule's suggested fix.
func fixMessage(rule string) string {
	switch rule {
	case finding.RuleEmptyHandler:
		return "Insert a TODO marker for the missing handling"

	case finding.RuleNilReturn:
		return "Wrap the result in an Option type"

	default:
		return "Apply the suggested rewrite"
	}
}
