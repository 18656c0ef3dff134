// Copyright 2020 CUE Authors
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

// Package contract exposes the contract-side surface a host evaluator
// binds into its global namespace: combinators and flat contracts backed
// directly by internal/core/adt, under the `$`-prefixed names a language
// frontend would bind so user code can never shadow them.
package contract

import (
	"github.com/nrhtr/nickel/internal/core/adt"
)

// Re-exports of the flat and combinator contracts, under Go-idiomatic
// names for callers that link against this package directly rather than
// through the Bindings table.
var (
	Dyn       = adt.Contract(adt.Dyn)
	Num       = adt.Contract(adt.Num)
	Bool      = adt.Contract(adt.BoolContract)
	String    = adt.Contract(adt.Str)
	Fail      = adt.Contract(adt.Fail)
	EnumFail  = adt.Contract(adt.EnumFail)
	DynTail   = adt.TailContract(adt.DynTailContract)
	EmptyTail = adt.TailContract(adt.EmptyTailContract)
)

// Array builds the `$array` combinator.
func Array(elem adt.Contract) adt.Contract { return adt.ArrayContract(elem) }

// Func builds the `$func` combinator.
func Func(dom, cod adt.Contract) adt.Contract { return adt.FuncContract(dom, cod) }

// Enums builds the `$enums` combinator.
func Enums(cases adt.Contract) adt.Contract { return adt.Enums(cases) }

// EnumMatch builds the dispatch-by-tag contract Enums expects.
func EnumMatch(byTag map[string]adt.Contract) adt.Contract { return adt.EnumMatch(byTag) }

// Record builds the `$record` combinator.
func Record(fields []adt.FieldSpec, tail adt.TailContract) adt.Contract {
	return adt.RecordContract(fields, tail)
}

// DictContract builds the `$dict_contract` combinator.
func DictContract(c adt.Contract) adt.Contract { return adt.DictContract(c) }

// DictType builds the `$dict_type` combinator.
func DictType(c adt.Contract) adt.Contract { return adt.DictType(c) }

// ForallVar builds the `$forall_var` combinator.
func ForallVar(key adt.SealKey) adt.Contract { return adt.ForallVar(key) }

// Forall builds the `$forall` combinator.
func Forall(key adt.SealKey, binderPolarity adt.Polarity, body adt.Contract) adt.Contract {
	return adt.Forall(key, binderPolarity, body)
}

// ForallTail builds the `$forall_tail` combinator.
func ForallTail(key adt.SealKey, binderPolarity adt.Polarity, constraints []string) adt.TailContract {
	return adt.ForallTail(key, binderPolarity, constraints)
}

// Equal backs `$stdlib_contract_equal`: structural equality, used both as
// a user-visible predicate and internally by array- and scalar-merge.
func Equal(a, b adt.Value) bool { return adt.Equal(a, b) }

// RecDefault backs `$rec_default`. The merge model adopted here (see
// DESIGN.md) is priority-free: a field's value must already agree across
// merge operands, so there is no default-priority tier to demote into.
// RecDefault is therefore the identity, retained so the binding exists
// and so a host evaluator that still parses a `| default` annotation has
// something to call.
func RecDefault(ctx *adt.OpContext, l *adt.Label, v adt.Value) adt.Value { return v }

// RecForce backs `$rec_force`, the identity for the same reason as
// RecDefault.
func RecForce(ctx *adt.OpContext, l *adt.Label, v adt.Value) adt.Value { return v }

// Bindings is the full contract-side surface, keyed by the literal
// `$`-prefixed identifiers a host evaluator binds into its global
// namespace. The leading `$` is not a legal identifier in most surface
// grammars, which is exactly why it is used here: nothing written in user
// code can rebind these.
var Bindings = map[string]interface{}{
	"$dyn":                   Dyn,
	"$num":                   Num,
	"$bool":                  Bool,
	"$string":                String,
	"$fail":                  Fail,
	"$array":                 Array,
	"$func":                  Func,
	"$forall_var":            ForallVar,
	"$forall":                Forall,
	"$enums":                 Enums,
	"$enum_fail":             EnumFail,
	"$record":                Record,
	"$dict_contract":         DictContract,
	"$dict_type":             DictType,
	"$forall_tail":           ForallTail,
	"$dyn_tail":              DynTail,
	"$empty_tail":            EmptyTail,
	"$rec_force":             RecForce,
	"$rec_default":           RecDefault,
	"$stdlib_contract_equal": Equal,
}
