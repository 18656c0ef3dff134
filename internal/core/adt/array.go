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

// ArrayContract returns a contract that blames unless v is an Array, then
// returns a lazily wrapped array. elem is deferred to each
// element upon projection; iterating, mapping and length queries do not
// trigger checks.
func ArrayContract(elem Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		arr, ok := v.(*Array)
		if !ok {
			return BlameTypeMismatch(l, "Array", v)
		}
		elemLabel := l.GoArray()
		wrapped := make([]Thunk, len(arr.Elems))
		for i, th := range arr.Elems {
			th := th
			wrapped[i] = func() Value {
				return elem(ctx, elemLabel, th())
			}
		}
		return &Array{Elems: wrapped}
	}
}

// ElemAt projects element i without forcing any other element (evaluator
// primitive elem_at).
func ElemAt(a *Array, i int) Value {
	return a.Elems[i]()
}

// Length returns an array's length without forcing any element.
func Length(a *Array) int { return len(a.Elems) }

// ArraySlice returns elements [i, j) as a fresh Array sharing the original
// thunks (evaluator primitive array_slice).
func ArraySlice(i, j int, a *Array) *Array {
	return &Array{Elems: append([]Thunk(nil), a.Elems[i:j]...)}
}

// MapArray applies fn to each thunk lazily, without forcing (evaluator
// primitive map).
func MapArray(a *Array, fn func(Thunk) Thunk) *Array {
	out := make([]Thunk, len(a.Elems))
	for i, th := range a.Elems {
		out[i] = fn(th)
	}
	return &Array{Elems: out}
}
