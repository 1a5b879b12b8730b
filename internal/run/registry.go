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
	"github.com/Lintelligent-org/Lintelligent/internal/config"
	"github.com/Lintelligent-org/Lintelligent/internal/detect"
	"github.com/Lintelligent-org/Lintelligent/internal/rewrite"
)

// Detectors assembles the detector set for the enabled rules, configured from
// the options. The order is stable so diagnostics stay deterministic across
// runs.
func (r *Options) Detectors() []detect.Detector {
	var detectors []detect.Detector

	if r.Rules.Enabled(config.EmptyHandlerRule) {
		detectors = append(detectors, detect.EmptyHandler{})
	}

	if r.Rules.Enabled(config.NestingRule) {
		detectors = append(detectors, detect.Nesting{MaxDepth: r.MaxDepth})
	}

	if r.Rules.Enabled(config.DryDampRule) {
		detectors = append(detectors, detect.DryDamp{MinStatements: r.MinStatements, MaxConditions: r.MaxConditions})
	}

	if r.Rules.Enabled(config.NilReturnRule) {
		detectors = append(detectors, detect.NilReturn{
			Wrapper:  r.Wrapper,
			Extended: r.Behavior.Enabled(config.ExtendedNilChecks),
		})
	}

	return detectors
}

// Rewriters maps rule names to the rewriter producing that rule's suggested
// fix. Returns nil when suggested fixes are disabled; rules without an entry
// report plain diagnostics.
func (r *Options) Rewriters() map[string]rewrite.Rewriter {
	if !r.Behavior.Enabled(config.SuggestFixes) {
		return nil
	}

	rewriters := make(map[string]rewrite.Rewriter)

	for _, rw := range []rewrite.Rewriter{
		rewrite.EmptyHandlerComment{},
		rewrite.NilToOption{Wrapper: r.Wrapper},
	} {
		rewriters[rw.Rule()] = rw
	}

	return rewriters
}
