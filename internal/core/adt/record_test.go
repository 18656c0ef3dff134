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

	"github.com/nrhtr/nickel/internal/diag"
)

func TestRecordContractPassesExactMatch(t *testing.T) {
	ctx := New()
	c := RecordContract([]FieldSpec{{Name: "a", Contract: Num}}, EmptyTailContract)
	r := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})

	got := c(ctx, rootLabel(), r)
	_, isBottom := AsBottom(got)
	qt.Assert(t, qt.IsFalse(isBottom))
}

func TestRecordContractBlamesMissingBeforeExtra(t *testing.T) {
	ctx := New()
	c := RecordContract(
		[]FieldSpec{{Name: "a", Contract: Num}, {Name: "missing", Contract: Num}},
		EmptyTailContract,
	)
	r := NewRecord(NoTail{},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
		KV{Name: "extra", Thunk: LitThunk(NewNumber(1))},
	)

	got := c(ctx, rootLabel(), r)
	b, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b.Report.Kind, diag.MissingFields))
}

func TestRecordContractBlamesExtraUnderEmptyTail(t *testing.T) {
	ctx := New()
	c := RecordContract([]FieldSpec{{Name: "a", Contract: Num}}, EmptyTailContract)
	r := NewRecord(NoTail{},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
		KV{Name: "extra", Thunk: LitThunk(NewNumber(1))},
	)

	got := c(ctx, rootLabel(), r)
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestRecordContractAllowsExtraUnderDynTail(t *testing.T) {
	ctx := New()
	c := RecordContract([]FieldSpec{{Name: "a", Contract: Num}}, DynTailContract)
	r := NewRecord(NoTail{},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
		KV{Name: "extra", Thunk: LitThunk(String("anything"))},
	)

	got := c(ctx, rootLabel(), r)
	out, ok := got.(*Record)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(out.HasField("extra")))
}

func TestRecordContractFieldCheckingIsLazy(t *testing.T) {
	ctx := New()
	forced := false
	c := RecordContract([]FieldSpec{{Name: "a", Contract: Num}}, EmptyTailContract)
	r := NewRecord(NoTail{}, KV{Name: "a", Thunk: func() Value { forced = true; return NewNumber(1) }})

	got := c(ctx, rootLabel(), r).(*Record)
	qt.Assert(t, qt.IsFalse(forced))

	th, _ := got.Field("a")
	th()
	qt.Assert(t, qt.IsTrue(forced))
}

func TestRecordContractFieldOrderInsensitive(t *testing.T) {
	ctx := New()
	c := RecordContract(
		[]FieldSpec{{Name: "a", Contract: Num}, {Name: "b", Contract: Num}},
		EmptyTailContract,
	)
	r1 := NewRecord(NoTail{},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
		KV{Name: "b", Thunk: LitThunk(NewNumber(2))},
	)
	r2 := NewRecord(NoTail{},
		KV{Name: "b", Thunk: LitThunk(NewNumber(2))},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
	)

	got1, ok1 := c(ctx, rootLabel(), r1).(*Record)
	got2, ok2 := c(ctx, rootLabel(), r2).(*Record)
	qt.Assert(t, qt.IsTrue(ok1))
	qt.Assert(t, qt.IsTrue(ok2))
	qt.Assert(t, qt.IsTrue(Equal(got1, got2)))
}
