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

// Package adt implements the contract subsystem's data model and
// operational semantics: values, labels, the sealing registry, and the
// primitive, structural and polymorphic contracts that validate and wrap
// them.
package adt

import "github.com/cockroachdb/apd/v3"

// Kind tags the disjoint alternatives of Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	EnumKind
	ArrayKind
	RecordKind
	FunctionKind
	SealedKind
	BottomKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case BoolKind:
		return "Bool"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case EnumKind:
		return "Enum"
	case ArrayKind:
		return "Array"
	case RecordKind:
		return "Record"
	case FunctionKind:
		return "Function"
	case SealedKind:
		return "Sealed"
	case BottomKind:
		return "Bottom"
	default:
		return "<invalid>"
	}
}

// Value is the tagged sum : Null | Bool | Number | String | Enum |
// Array | Record | Function | Sealed, plus Bottom, the blame-carrying value
// that a failing contract returns in place of a concrete result.
type Value interface {
	Kind() Kind
}

// Null is the unit value.
type Null struct{}

func (Null) Kind() Kind { return NullKind }

// Bool is a boolean scalar.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

// Number is an arbitrary-precision decimal, the way the teacher represents
// CUE's own numeric values (see DESIGN.md for why apd.Decimal rather than
// math/big.Rat). Values with a finite decimal expansion are exact; a
// fraction such as 1/3 has no exact Number.
type Number struct {
	*apd.Decimal
}

// NewNumber builds a Number from an int64, a convenience used pervasively
// in tests and by the evaluator boundary in internal/core/eval.
func NewNumber(i int64) Number {
	return Number{apd.New(i, 0)}
}

// ParseNumber parses a decimal literal. Evaluator primitives that decode
// source numerals funnel through this.
func ParseNumber(s string) (Number, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{d}, nil
}

func (Number) Kind() Kind { return NumberKind }

// String is a Unicode scalar.
type String string

func (String) Kind() Kind { return StringKind }

// Enum is a value carrying one of a finite set of tags, as produced by a
// language-level enum literal (e.g. `'Foo`).
type Enum struct {
	Tag string
}

func (Enum) Kind() Kind { return EnumKind }

// Thunk is a deferred computation of a Value: the laziness primitive that
// array elements and record fields are stored as ("All composite
// constructors are lazy: elements are thunks").
type Thunk func() Value

// LitThunk wraps an already-evaluated Value as a Thunk, for constructing
// test fixtures and evaluator-boundary literals without indirection.
func LitThunk(v Value) Thunk {
	return func() Value { return v }
}

// Array is a lazy sequence: indexing does not force elements.
type Array struct {
	Elems []Thunk
}

func (*Array) Kind() Kind { return ArrayKind }

// NewArray builds an Array whose elements are already-evaluated values.
func NewArray(vs ...Value) *Array {
	elems := make([]Thunk, len(vs))
	for i, v := range vs {
		elems[i] = LitThunk(v)
	}
	return &Array{Elems: elems}
}

// Record maps field names to lazy values and carries an optional Tail (// Record tail). Fields preserves insertion order for diagnostics and
// iteration.
type Record struct {
	Fields []string
	byName map[string]Thunk
	Tail   Tail
}

func (*Record) Kind() Kind { return RecordKind }

// NewRecord builds a Record with the given tail from name/value pairs,
// preserving the given order.
func NewRecord(tail Tail, pairs ...KV) *Record {
	r := &Record{byName: make(map[string]Thunk, len(pairs)), Tail: tail}
	for _, kv := range pairs {
		r.Fields = append(r.Fields, kv.Name)
		r.byName[kv.Name] = kv.Thunk
	}
	return r
}

// KV is a name/thunk pair used by NewRecord.
type KV struct {
	Name  string
	Thunk Thunk
}

// Field returns (thunk, true) if name is present.
func (r *Record) Field(name string) (Thunk, bool) {
	th, ok := r.byName[name]
	return th, ok
}

// HasField reports whether name is a field of r (evaluator primitive
// has_field).
func (r *Record) HasField(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Insert returns a new Record with name bound to v, appended to the field
// order if not already present (evaluator primitive record_insert).
func (r *Record) Insert(name string, v Value) *Record {
	out := r.shallowCopy()
	if _, exists := out.byName[name]; !exists {
		out.Fields = append(out.Fields, name)
	}
	out.byName[name] = LitThunk(v)
	return out
}

// Remove returns a new Record with name removed (evaluator primitive
// record_remove).
func (r *Record) Remove(name string) *Record {
	out := &Record{byName: make(map[string]Thunk, len(r.byName)), Tail: r.Tail}
	for _, n := range r.Fields {
		if n == name {
			continue
		}
		out.Fields = append(out.Fields, n)
		out.byName[n] = r.byName[n]
	}
	return out
}

// EmptyWithTail returns an empty Record carrying r's tail (evaluator
// primitive record_empty_with_tail).
func (r *Record) EmptyWithTail() *Record {
	return &Record{byName: map[string]Thunk{}, Tail: r.Tail}
}

// WithTail returns a shallow copy of r with its tail replaced, leaving its
// own fields untouched. Used by the evaluator-boundary tail-sealing
// primitives to swap a record's openness without re-checking its known
// fields.
func (r *Record) WithTail(t Tail) *Record {
	out := r.shallowCopy()
	out.Tail = t
	return out
}

// TailAsRecord exposes any Tail's fields as a plain, tailless Record,
// regardless of concrete variant. NoTail has none.
func TailAsRecord(t Tail) *Record {
	switch x := t.(type) {
	case DynTail:
		return x.AsRecord()
	case SealedTail:
		return x.AsRecord()
	default:
		return &Record{byName: map[string]Thunk{}, Tail: NoTail{}}
	}
}

func (r *Record) shallowCopy() *Record {
	out := &Record{
		Fields: append([]string(nil), r.Fields...),
		byName: make(map[string]Thunk, len(r.byName)),
		Tail:   r.Tail,
	}
	for k, v := range r.byName {
		out.byName[k] = v
	}
	return out
}

// Tail is one of: no tail, a Dyn-typed extension, or an
// opaque bundle sealed under a forall-row key.
type Tail interface {
	tail()
}

// NoTail means the record is exactly its listed fields.
type NoTail struct{}

func (NoTail) tail() {}

// DynTail is an open, Dyn-typed extension: any additional field is allowed
// and left unchecked.
type DynTail struct {
	Fields []string
	byName map[string]Thunk
}

func (DynTail) tail() {}

// NewDynTail builds a DynTail from name/value pairs.
func NewDynTail(pairs ...KV) DynTail {
	t := DynTail{byName: make(map[string]Thunk, len(pairs))}
	for _, kv := range pairs {
		t.Fields = append(t.Fields, kv.Name)
		t.byName[kv.Name] = kv.Thunk
	}
	return t
}

// AsRecord exposes a DynTail's fields as a plain Record, for merging.
func (t DynTail) AsRecord() *Record {
	r := &Record{byName: make(map[string]Thunk, len(t.byName)), Tail: NoTail{}}
	for _, n := range t.Fields {
		r.Fields = append(r.Fields, n)
		r.byName[n] = t.byName[n]
	}
	return r
}

// SealedTail is an opaque bundle of fields introduced by `forall r. {...;
// r}`, bound to a specific sealing key. Only a forall_tail
// contract presenting the matching key may unseal and merge it.
type SealedTail struct {
	Key    SealKey
	Fields []string
	byName map[string]Thunk
}

func (SealedTail) tail() {}

// NewSealedTail builds a SealedTail from name/value pairs under key.
func NewSealedTail(key SealKey, pairs ...KV) SealedTail {
	t := SealedTail{Key: key, byName: make(map[string]Thunk, len(pairs))}
	for _, kv := range pairs {
		t.Fields = append(t.Fields, kv.Name)
		t.byName[kv.Name] = kv.Thunk
	}
	return t
}

// AsRecord exposes a SealedTail's fields as a plain Record, used once it
// has been legitimately unsealed by a matching forall_tail contract.
func (t SealedTail) AsRecord() *Record {
	r := &Record{byName: make(map[string]Thunk, len(t.byName)), Tail: NoTail{}}
	for _, n := range t.Fields {
		r.Fields = append(r.Fields, n)
		r.byName[n] = t.byName[n]
	}
	return r
}

// Function is a closure value. Apply is strict in nothing but its own
// control flow; laziness of the result is the caller's responsibility.
type Function struct {
	Name  string
	Apply func(ctx *OpContext, arg Value) Value
}

func (*Function) Kind() Kind { return FunctionKind }

// Sealed is an opaque value introduced by a forall contract:
// visible only to an Unseal presenting the matching key.
type Sealed struct {
	Key   SealKey
	Inner Value
}

func (Sealed) Kind() Kind { return SealedKind }
