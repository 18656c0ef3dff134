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

// Package eval implements the small set of evaluator primitives the
// contract subsystem consumes from its host language: field and element
// access, record reshaping, lazy contract attachment, and tail sealing.
// It is not a parser or an evaluator for any surface syntax — callers
// build adt.Value trees directly, the way a host language's runtime would
// after parsing and desugaring its own program.
package eval

import (
	"github.com/nrhtr/nickel/internal/core/adt"
	"github.com/nrhtr/nickel/internal/diag"
)

// TypeOf names v's runtime tag, the primitive a `match` expression or a
// diagnostic message uses to describe a value without forcing its
// contents further.
func TypeOf(v adt.Value) string { return v.Kind().String() }

// HasField reports whether name is bound in r.
func HasField(r *adt.Record, name string) bool { return r.HasField(name) }

// Fields lists r's field names in declaration order.
func Fields(r *adt.Record) []string {
	return append([]string(nil), r.Fields...)
}

// RecordInsert returns a new record with name bound to v.
func RecordInsert(r *adt.Record, name string, v adt.Value) *adt.Record {
	return r.Insert(name, v)
}

// RecordRemove returns a new record with name unbound.
func RecordRemove(r *adt.Record, name string) *adt.Record {
	return r.Remove(name)
}

// ElemAt projects array element i without forcing any other element.
func ElemAt(a *adt.Array, i int) adt.Value { return adt.ElemAt(a, i) }

// Length reports an array's element count or a record's field count,
// without forcing any element or field value.
func Length(v adt.Value) int {
	switch x := v.(type) {
	case *adt.Array:
		return adt.Length(x)
	case *adt.Record:
		return len(x.Fields)
	default:
		return 0
	}
}

// Map applies fn to every element of a lazily, producing a new array that
// shares no structure with a beyond the element count.
func Map(a *adt.Array, fn func(adt.Thunk) adt.Thunk) *adt.Array {
	return adt.MapArray(a, fn)
}

// Assume applies contract c to v under label l, the primitive behind a
// `value | Contract` annotation: it is the single entry point every other
// contract application in this package ultimately goes through.
func Assume(ctx *adt.OpContext, c adt.Contract, l *adt.Label, v adt.Value) adt.Value {
	return c(ctx, l, v)
}

// RecordLazyAssume attaches c to record v without forcing any field: the
// evaluator-boundary name for what adt.RecordContract/adt.DictContract
// already implement internally. Exposed separately so a host evaluator
// can attach a record contract to a value it received from elsewhere
// without re-deriving the FieldSpec list.
func RecordLazyAssume(ctx *adt.OpContext, c adt.Contract, l *adt.Label, v *adt.Record) adt.Value {
	return c(ctx, l, v)
}

// ArrayLazyAssume attaches c to array v without forcing any element: the
// evaluator-boundary name for what adt.ArrayContract already implements
// internally.
func ArrayLazyAssume(ctx *adt.OpContext, c adt.Contract, l *adt.Label, v *adt.Array) adt.Value {
	return c(ctx, l, v)
}

// RecordSealTail replaces r's current tail with a SealedTail under key,
// carrying whatever fields the previous tail exposed (none, for NoTail).
// This is the primitive a `forall r. {prefix; r}` contract uses to take
// ownership of a record's openness before handing prefix back to its
// caller.
func RecordSealTail(key adt.SealKey, r *adt.Record) *adt.Record {
	residue := adt.TailAsRecord(r.Tail)
	pairs := make([]adt.KV, 0, len(residue.Fields))
	for _, name := range residue.Fields {
		th, _ := residue.Field(name)
		pairs = append(pairs, adt.KV{Name: name, Thunk: th})
	}
	return r.WithTail(adt.NewSealedTail(key, pairs...))
}

// RecordUnsealTail reverses RecordSealTail: if r's tail is sealed under
// key, it is replaced with an open DynTail carrying the same fields;
// otherwise the call blames a sealed-value leak at l.
func RecordUnsealTail(l *adt.Label, key adt.SealKey, r *adt.Record) adt.Value {
	sealed, ok := r.Tail.(adt.SealedTail)
	if !ok || sealed.Key != key {
		return adt.Blame(l, diag.SealedValueLeak, "cannot unseal: tail was not sealed under this key")
	}
	residue := sealed.AsRecord()
	pairs := make([]adt.KV, 0, len(residue.Fields))
	for _, name := range residue.Fields {
		th, _ := residue.Field(name)
		pairs = append(pairs, adt.KV{Name: name, Thunk: th})
	}
	return r.WithTail(adt.NewDynTail(pairs...))
}

// Blame is the evaluator-boundary wrapper around adt.Blame, exposed so a
// host evaluator can raise a diagnostic without importing internal/diag
// directly for the common kinds.
func Blame(l *adt.Label, kind diag.Kind, message string) *adt.Bottom {
	return adt.Blame(l, kind, message)
}

// DecodeText is the evaluator-boundary wrapper around adt.DecodeText,
// the primitive a host lexer calls to turn a string literal's raw bytes
// into a String value.
func DecodeText(b []byte) (adt.String, error) {
	return adt.DecodeText(b)
}
