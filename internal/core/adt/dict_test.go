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

func smallRecord() *Record {
	return NewRecord(NoTail{},
		KV{Name: "a", Thunk: LitThunk(NewNumber(1))},
		KV{Name: "b", Thunk: LitThunk(NewNumber(2))},
	)
}

func TestDictContractIsLazy(t *testing.T) {
	ctx := New()
	forced := false
	r := NewRecord(NoTail{}, KV{Name: "a", Thunk: func() Value { forced = true; return NewNumber(1) }})

	wrapped := DictContract(Num)(ctx, rootLabel(), r)
	qt.Assert(t, qt.IsFalse(forced))

	out := wrapped.(*Record)
	th, ok := out.Field("a")
	qt.Assert(t, qt.IsTrue(ok))
	th()
	qt.Assert(t, qt.IsTrue(forced))
}

func TestDictContractChecksOnForce(t *testing.T) {
	ctx := New()
	r := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(String("bad"))})
	wrapped := DictContract(Num)(ctx, rootLabel(), r).(*Record)

	th, _ := wrapped.Field("a")
	_, isBottom := AsBottom(th())
	qt.Assert(t, qt.IsTrue(isBottom))
}

func TestDictTypeChecksEagerly(t *testing.T) {
	ctx := New()
	got := DictType(Num)(ctx, rootLabel(), smallRecord())
	_, isBottom := AsBottom(got)
	qt.Assert(t, qt.IsFalse(isBottom))
}

func TestDictTypeBlamesEagerly(t *testing.T) {
	ctx := New()
	r := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(String("bad"))})
	got := DictType(Num)(ctx, rootLabel(), r)
	_, isBottom := AsBottom(got)
	qt.Assert(t, qt.IsTrue(isBottom))
}

func TestDictContractBlamesNonRecord(t *testing.T) {
	ctx := New()
	got := DictContract(Num)(ctx, rootLabel(), Null{})
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}
