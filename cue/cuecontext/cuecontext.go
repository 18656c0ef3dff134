// Copyright 2021 CUE Authors
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

// Package cuecontext is the public entry point a host evaluator embeds:
// it owns the sealing registry a run of contract checks shares and exposes
// Check, the std.contract.check boundary where blame turns from a fatal
// Bottom back into a recoverable Go error.
package cuecontext

import (
	"github.com/nrhtr/nickel/internal/core/adt"
	"github.com/nrhtr/nickel/internal/diag"
)

// Context owns the sealing registry and debug configuration for one
// evaluation session. Sealing keys allocated from FreshKey are only
// meaningful relative to the Context that allocated them.
type Context struct {
	op *adt.OpContext
}

// Option configures a Context at construction time.
type Option struct {
	apply func(c *Context)
}

// New creates a Context with a fresh sealing registry.
func New(options ...Option) *Context {
	c := &Context{op: adt.New()}
	for _, o := range options {
		o.apply(c)
	}
	return c
}

// Strict sets the OpContext's Strict flag. No contract reads that flag:
// duplicate sealing-key insertion panics whether or not it is set, and an
// unrecognised Tail variant is treated as an empty tail either way.
func Strict() Option {
	return Option{func(c *Context) { c.op.Strict = true }}
}

// LogEval enables contract-descent tracing at the given verbosity, the
// CUE_DEBUG-style knob internal/core/adt/debug.go gates on.
func LogEval(level int) Option {
	return Option{func(c *Context) { c.op.LogEval = level }}
}

// FreshKey allocates a sealing key scoped to this Context, for a caller
// wiring up a forall contract outside of the stdlib/contract combinators.
func (c *Context) FreshKey() adt.SealKey { return c.op.FreshKey() }

// Op exposes the underlying adt.OpContext, for callers that build contract
// trees directly against internal/core/adt rather than through
// stdlib/contract.
func (c *Context) Op() *adt.OpContext { return c.op }

// Check is the std.contract.check boundary: it applies c to v under l and,
// rather than letting a failing contract propagate as a fatal Bottom,
// recovers it as a diag.Error. A successful check returns the (possibly
// wrapped) value and a nil error.
func (c *Context) Check(l *adt.Label, contract adt.Contract, v adt.Value) (adt.Value, error) {
	got := contract(c.op, l, v)
	if b, ok := adt.AsBottom(got); ok {
		return nil, b.Report
	}
	return got, nil
}

// CheckAll runs every check and collects every failure into a diag.List,
// rather than stopping at the first one, for a caller validating several
// independent annotations (e.g. a record's top-level fields) and wanting
// one combined report.
func (c *Context) CheckAll(checks ...func(c *Context) error) error {
	var errs diag.List
	for _, check := range checks {
		if err := check(c); err != nil {
			if e, ok := err.(diag.Error); ok {
				errs.Add(e)
				continue
			}
			return err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	errs.Sort()
	return errs
}
