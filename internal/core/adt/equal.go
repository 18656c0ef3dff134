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

package adt

import "github.com/google/go-cmp/cmp"

// Equal reports whether a and b are structurally equal values: same kind,
// and recursively equal contents. Arrays compare element-wise, forcing
// every thunk; records compare by field set and per-field value,
// independent of field order. Functions and Sealed values are never equal
// to anything, including themselves, since neither has an observable
// representation to compare. This backs both the equality builtin exposed
// to evaluator primitives and the merge-by-equality rule for arrays and
// scalars.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		bv := b.(Bool)
		return av == bv
	case Number:
		bv := b.(Number)
		if av.Decimal == nil || bv.Decimal == nil {
			return av.Decimal == bv.Decimal
		}
		return av.Cmp(bv.Decimal) == 0
	case String:
		bv := b.(String)
		return av == bv
	case Enum:
		bv := b.(Enum)
		return av.Tag == bv.Tag
	case *Array:
		bv := b.(*Array)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i](), bv.Elems[i]()) {
				return false
			}
		}
		return true
	case *Record:
		bv := b.(*Record)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, name := range av.Fields {
			at, ok := av.Field(name)
			if !ok {
				return false
			}
			bt, ok := bv.Field(name)
			if !ok {
				return false
			}
			if !Equal(at(), bt()) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// diffReport renders a human-readable diff of two unequal values for
// diagnostics, using go-cmp's default formatting on a structural snapshot
// rather than comparing the values directly (Value's private fields and
// Thunk funcs are not themselves comparable by cmp).
func diffReport(a, b Value) string {
	return cmp.Diff(snapshot(a), snapshot(b))
}

// snapshot forces a value into a plain, cmp-comparable tree: maps, slices
// and scalars only, no funcs or interfaces holding funcs.
func snapshot(v Value) interface{} {
	switch x := v.(type) {
	case *Array:
		out := make([]interface{}, len(x.Elems))
		for i, th := range x.Elems {
			out[i] = snapshot(th())
		}
		return out
	case *Record:
		out := make(map[string]interface{}, len(x.Fields))
		for _, name := range x.Fields {
			th, _ := x.Field(name)
			out[name] = snapshot(th())
		}
		return out
	case Number:
		if x.Decimal == nil {
			return "<nil>"
		}
		return x.String()
	default:
		return v
	}
}
