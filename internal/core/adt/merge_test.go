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

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestMergeEqualScalarsSucceeds(t *testing.T) {
	ctx := New()
	got := Merge(ctx, rootLabel(), NewNumber(3), NewNumber(3))
	qt.Assert(t, qt.IsTrue(Equal(got, NewNumber(3))))
}

func TestMergeDistinctScalarsBlames(t *testing.T) {
	ctx := New()
	got := Merge(ctx, rootLabel(), NewNumber(3), NewNumber(4))
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestMergeEqualArraysSucceeds(t *testing.T) {
	ctx := New()
	a := NewArray(NewNumber(1), NewNumber(2))
	b := NewArray(NewNumber(1), NewNumber(2))
	got := Merge(ctx, rootLabel(), a, b)
	_, isBottom := AsBottom(got)
	qt.Assert(t, qt.IsFalse(isBottom))
}

func TestMergeUnequalArraysBlames(t *testing.T) {
	ctx := New()
	a := NewArray(NewNumber(1))
	b := NewArray(NewNumber(2))
	got := Merge(ctx, rootLabel(), a, b)
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestMergeRecordsAllLeft(t *testing.T) {
	ctx := New()
	a := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})
	b := NewRecord(NoTail{})
	got := Merge(ctx, rootLabel(), a, b).(*Record)
	qt.Assert(t, qt.IsTrue(got.HasField("a")))
}

func TestMergeRecordsAllRight(t *testing.T) {
	ctx := New()
	a := NewRecord(NoTail{})
	b := NewRecord(NoTail{}, KV{Name: "b", Thunk: LitThunk(NewNumber(1))})
	got := Merge(ctx, rootLabel(), a, b).(*Record)
	qt.Assert(t, qt.IsTrue(got.HasField("b")))
}

func TestMergeRecordsSharedFieldRecurses(t *testing.T) {
	ctx := New()
	innerA := NewRecord(NoTail{}, KV{Name: "x", Thunk: LitThunk(NewNumber(1))})
	innerB := NewRecord(NoTail{}, KV{Name: "y", Thunk: LitThunk(NewNumber(2))})
	a := NewRecord(NoTail{}, KV{Name: "shared", Thunk: LitThunk(innerA)})
	b := NewRecord(NoTail{}, KV{Name: "shared", Thunk: LitThunk(innerB)})

	got := Merge(ctx, rootLabel(), a, b).(*Record)
	th, _ := got.Field("shared")
	merged := th().(*Record)
	qt.Assert(t, qt.IsTrue(merged.HasField("x")))
	qt.Assert(t, qt.IsTrue(merged.HasField("y")))
}

func TestMergeRecordsSharedFieldConflictBlames(t *testing.T) {
	ctx := New()
	a := NewRecord(NoTail{}, KV{Name: "shared", Thunk: LitThunk(NewNumber(1))})
	b := NewRecord(NoTail{}, KV{Name: "shared", Thunk: LitThunk(NewNumber(2))})

	got := Merge(ctx, rootLabel(), a, b).(*Record)
	th, _ := got.Field("shared")
	_, isBottom := AsBottom(th())
	qt.Assert(t, qt.IsTrue(isBottom))
}

func TestMergeRejectsSealedTail(t *testing.T) {
	ctx := New()
	reg := NewSealRegistry()
	key := reg.Fresh()
	a := NewRecord(NewSealedTail(key, KV{Name: "hidden", Thunk: LitThunk(NewNumber(1))}))
	b := NewRecord(NoTail{})

	got := Merge(ctx, rootLabel(), a, b)
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestSplitFieldsPartitions(t *testing.T) {
	a := NewRecord(NoTail{},
		KV{Name: "onlyA", Thunk: LitThunk(Null{})},
		KV{Name: "shared", Thunk: LitThunk(Null{})},
	)
	b := NewRecord(NoTail{},
		KV{Name: "shared", Thunk: LitThunk(Null{})},
		KV{Name: "onlyB", Thunk: LitThunk(Null{})},
	)

	onlyA, onlyB, both := splitFields(a, b)
	qt.Assert(t, qt.DeepEquals(onlyA, []string{"onlyA"}))
	qt.Assert(t, qt.DeepEquals(onlyB, []string{"onlyB"}))
	qt.Assert(t, qt.DeepEquals(both, []string{"shared"}))
}

func TestSplitFieldsAllCenter(t *testing.T) {
	a := NewRecord(NoTail{}, KV{Name: "x", Thunk: LitThunk(Null{})})
	b := NewRecord(NoTail{}, KV{Name: "x", Thunk: LitThunk(Null{})})

	onlyA, onlyB, both := splitFields(a, b)
	qt.Assert(t, qt.HasLen(onlyA, 0))
	qt.Assert(t, qt.HasLen(onlyB, 0))
	qt.Assert(t, qt.DeepEquals(both, []string{"x"}))
}
