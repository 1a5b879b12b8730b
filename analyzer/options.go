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

package analyzer

import (
	"log/slog"

	"github.com/Lintelligent-org/Lintelligent/internal/config"
	"github.com/Lintelligent-org/Lintelligent/internal/run"
)

// Option configures specific behavior of a [New] lintelligent analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithEmptyHandler is an [Option] to configure whether empty handler checks are enabled.
func WithEmptyHandler(emptyHandler bool) Option {
	return emptyHandlerOption{emptyHandler: emptyHandler}
}

type emptyHandlerOption struct{ emptyHandler bool }

func (o emptyHandlerOption) apply(r *run.Options) {
	r.Rules.Set(config.EmptyHandlerRule, o.emptyHandler)
}

func (o emptyHandlerOption) LogAttr() slog.Attr {
	return slog.Bool("empty-handler", o.emptyHandler)
}

// WithNesting is an [Option] to configure whether nesting depth checks are enabled.
func WithNesting(nesting bool) Option {
	return nestingOption{nesting: nesting}
}

type nestingOption struct{ nesting bool }

func (o nestingOption) apply(r *run.Options) {
	r.Rules.Set(config.NestingRule, o.nesting)
}

func (o nestingOption) LogAttr() slog.Attr {
	return slog.Bool("nesting", o.nesting)
}

// WithDryDamp is an [Option] to configure whether duplication and condition
// complexity checks are enabled.
func WithDryDamp(dryDamp bool) Option {
	return dryDampOption{dryDamp: dryDamp}
}

type dryDampOption struct{ dryDamp bool }

func (o dryDampOption) apply(r *run.Options) {
	r.Rules.Set(config.DryDampRule, o.dryDamp)
}

func (o dryDampOption) LogAttr() slog.Attr {
	return slog.Bool("dry-damp", o.dryDamp)
}

// WithNilReturn is an [Option] to configure whether nilable result checks are enabled.
func WithNilReturn(nilReturn bool) Option {
	return nilReturnOption{nilReturn: nilReturn}
}

type nilReturnOption struct{ nilReturn bool }

func (o nilReturnOption) apply(r *run.Options) {
	r.Rules.Set(config.NilReturnRule, o.nilReturn)
}

func (o nilReturnOption) LogAttr() slog.Attr {
	return slog.Bool("nil-return", o.nilReturn)
}

// WithNilChecks is an [Option] to configure reporting of explicit nil
// comparisons and nil fallback assignments.
func WithNilChecks(nilChecks bool) Option {
	return nilChecksOption{nilChecks: nilChecks}
}

type nilChecksOption struct{ nilChecks bool }

func (o nilChecksOption) apply(r *run.Options) {
	r.Behavior.Set(config.ExtendedNilChecks, o.nilChecks)
}

func (o nilChecksOption) LogAttr() slog.Attr {
	return slog.Bool("nil-checks", o.nilChecks)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether findings carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithMaxDepth is an [Option] to configure the deepest tolerated conditional nesting.
func WithMaxDepth(maxDepth int) Option { return maxDepthOption{maxDepth: maxDepth} }

type maxDepthOption struct{ maxDepth int }

func (o maxDepthOption) apply(r *run.Options) {
	r.MaxDepth = o.maxDepth
}

func (o maxDepthOption) LogAttr() slog.Attr {
	return slog.Int("max-depth", o.maxDepth)
}

// WithMinStatements is an [Option] to configure the smallest block size
// considered by duplicate detection.
func WithMinStatements(minStatements int) Option {
	return minStatementsOption{minStatements: minStatements}
}

type minStatementsOption struct{ minStatements int }

func (o minStatementsOption) apply(r *run.Options) {
	r.MinStatements = o.minStatements
}

func (o minStatementsOption) LogAttr() slog.Attr {
	return slog.Int("min-statements", o.minStatements)
}

// WithMaxConditions is an [Option] to configure the largest tolerated number
// of logical operators in a single condition.
func WithMaxConditions(maxConditions int) Option {
	return maxConditionsOption{maxConditions: maxConditions}
}

type maxConditionsOption struct{ maxConditions int }

func (o maxConditionsOption) apply(r *run.Options) {
	r.MaxConditions = o.maxConditions
}

func (o maxConditionsOption) LogAttr() slog.Attr {
	return slog.Int("max-conditions", o.maxConditions)
}

// WithOptionPackage is an [Option] to configure the import path of the Option
// type suggested for nilable results.
func WithOptionPackage(path string) Option { return optionPackageOption{path: path} }

type optionPackageOption struct{ path string }

func (o optionPackageOption) apply(r *run.Options) {
	r.Wrapper.Path = o.path
}

func (o optionPackageOption) LogAttr() slog.Attr {
	return slog.String("option-package", o.path)
}

// WithOptionName is an [Option] to configure the name of the Option type.
func WithOptionName(optionName string) Option { return optionNameOption{optionName: optionName} }

type optionNameOption struct{ optionName string }

func (o optionNameOption) apply(r *run.Options) {
	r.Wrapper.Name = o.optionName
}

func (o optionNameOption) LogAttr() slog.Attr {
	return slog.String("option-name", o.optionName)
}

// WithOptionQualifier is an [Option] to configure the package qualifier used
// when the Option package is newly imported by a fix.
func WithOptionQualifier(qualifier string) Option { return optionQualifierOption{qualifier: qualifier} }

type optionQualifierOption struct{ qualifier string }

func (o optionQualifierOption) apply(r *run.Options) {
	r.Wrapper.Qual = o.qualifier
}

func (o optionQualifierOption) LogAttr() slog.Attr {
	return slog.String("option-qualifier", o.qualifier)
}
