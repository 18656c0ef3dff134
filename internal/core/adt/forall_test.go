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

// identityForall is `forall a. a -> a`, built directly from the
// primitives rather than a surface-syntax parser.
func identityForall(ctx *OpContext) Contract {
	key := ctx.FreshKey()
	body := FuncContract(ForallVar(key), ForallVar(key))
	return Forall(key, Positive, body)
}

func TestForallIdentityPassesThroughOpaquely(t *testing.T) {
	ctx := New()
	c := identityForall(ctx)
	wrapped := c(ctx, rootLabel(), identityFunc()).(*Function)

	got := wrapped.Apply(ctx, NewNumber(7))
	qt.Assert(t, qt.IsTrue(Equal(got, NewNumber(7))))
}

func TestForallIdentityRejectsNonIdentityImplementation(t *testing.T) {
	ctx := New()
	liar := &Function{
		Name: "liar",
		Apply: func(ctx *OpContext, arg Value) Value { return NewNumber(999) },
	}
	c := identityForall(ctx)
	wrapped := c(ctx, rootLabel(), liar).(*Function)

	got := wrapped.Apply(ctx, NewNumber(7))
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestForallVarEscapedBlames(t *testing.T) {
	ctx := New()
	reg := NewSealRegistry()
	key := reg.Fresh()
	c := ForallVar(key)

	got := c(ctx, rootLabel(), NewNumber(1))
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestDynTailContractUnionsFields(t *testing.T) {
	ctx := New()
	acc := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})
	residual := NewRecord(NoTail{}, KV{Name: "b", Thunk: LitThunk(NewNumber(2))})

	got := DynTailContract(ctx, rootLabel(), acc, residual).(*Record)
	qt.Assert(t, qt.IsTrue(got.HasField("a")))
	qt.Assert(t, qt.IsTrue(got.HasField("b")))
}

func TestEmptyTailContractBlamesNonEmptyResidual(t *testing.T) {
	ctx := New()
	acc := NewRecord(NoTail{})
	residual := NewRecord(NoTail{}, KV{Name: "extra", Thunk: LitThunk(NewNumber(1))})

	got := EmptyTailContract(ctx, rootLabel(), acc, residual)
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestEmptyTailContractPassesEmptyResidual(t *testing.T) {
	ctx := New()
	acc := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})
	residual := NewRecord(NoTail{})

	got := EmptyTailContract(ctx, rootLabel(), acc, residual)
	_, isBottom := AsBottom(got)
	qt.Assert(t, qt.IsFalse(isBottom))
}

func TestForallTailForbidsConstrainedFieldInResidual(t *testing.T) {
	ctx := New()
	reg := NewSealRegistry()
	key := reg.Fresh()
	tail := ForallTail(key, Positive, []string{"a"})

	acc := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})
	residual := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(99))})

	got := tail(ctx, rootLabel().ChngPol(), acc, residual)
	_, ok := AsBottom(got)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestForallTailSealsResidualOnNegativeSide(t *testing.T) {
	ctx := New()
	reg := NewSealRegistry()
	key := reg.Fresh()
	tail := ForallTail(key, Positive, []string{"a"})

	acc := NewRecord(NoTail{}, KV{Name: "a", Thunk: LitThunk(NewNumber(1))})
	residual := NewRecord(NoTail{}, KV{Name: "unconstrained", Thunk: LitThunk(NewNumber(2))})

	got := tail(ctx, rootLabel().ChngPol(), acc, residual).(*Record)
	sealed, ok := got.Tail.(SealedTail)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(sealed.Key, key))
}
