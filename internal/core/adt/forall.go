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

import "github.com/nrhtr/nickel/internal/diag"

// Forall produces the contract for `forall k. body`. Applied to
// (L, v): if L is dualized the binder polarity is flipped, key is bound in
// a fresh label, and body runs under that label.
func Forall(key SealKey, binderPolarity Polarity, body Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		pol := binderPolarity
		if l.IsDualized() {
			pol = pol.Flip()
		}
		l2 := l.InsertTypeVariable(key, pol)
		return body(ctx, l2, v)
	}
}

// ForallVar is the contract used wherever a forall-bound type variable
// appears in the body. Its behaviour depends on whether the
// current position matches the binder's stored polarity:
//
//   - same polarity (negative from the binder's viewpoint): the caller
//     supplied the value, so it must already be sealed with key; unseal it,
//     blaming a sealed-value leak if the keys don't match.
//   - different polarity (positive): the implementation is producing a
//     value the context must treat opaquely; seal it.
func ForallVar(key SealKey) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		binding, ok := l.LookupTypeVariable(key)
		if !ok {
			return Blame(l, diag.SealedValueLeak, "escaped type variable")
		}
		if binding.Polarity == l.Polarity() {
			return Unseal(key, v, func() Value {
				return Blame(l, diag.SealedValueLeak, "sealed-value leak: value was not produced through this type variable")
			})
		}
		return Seal(key, v)
	}
}

// DynTailContract is the `dyn_tail` tail contract: acc ∪ residual,
// unchecked.
func DynTailContract(ctx *OpContext, l *Label, acc *Record, residual *Record) Value {
	return mergeDisjointFields(acc, residual)
}

// EmptyTailContract is the `empty_tail` tail contract: blame if
// residual is non-empty, otherwise acc.
func EmptyTailContract(ctx *OpContext, l *Label, acc *Record, residual *Record) Value {
	if len(residual.Fields) > 0 {
		return Blame(l, diag.ExtraFields, diag.ExtraFieldsMessage(residual.Fields))
	}
	return acc
}

// ForallTail builds the `forall_tail` tail contract used as the
// tail_contract slot of a record contract introduced by `forall r.
// {prefix; r}`. constraints names the fields forbidden in the tail
// (already bound in the prefix).
func ForallTail(key SealKey, binderPolarity Polarity, constraints []string) TailContract {
	return func(ctx *OpContext, l *Label, acc *Record, residual *Record) Value {
		pol := binderPolarity
		if l.IsDualized() {
			pol = pol.Flip()
		}
		tailLabel := l.GoTailOf()

		if pol == l.Polarity() {
			// Positive side: the producer must hand back a residual with no
			// fields of its own whose tail was sealed under key by a
			// matching forall_tail on the negative side. A residual with no
			// tail and one whose tail is sealed under another key both
			// blame as the same tail mismatch (the design notes' open
			// question collapses these two cases, as the source does).
			if len(residual.Fields) == 0 {
				if st, ok := residual.Tail.(SealedTail); ok && st.Key == key {
					return mergeDisjointFields(acc, st.AsRecord())
				}
				return Blame(tailLabel, diag.TailMismatch, "polymorphic tail mismatch")
			}
			return Blame(tailLabel, diag.ExtraFields, diag.ExtraFieldsMessage(residual.Fields))
		}

		// Negative side: the context is handing us a tail to seal on its
		// behalf. Any residual field name colliding with the prefix's own
		// fields (constraints) is forbidden.
		var forbidden []string
		for _, name := range residual.Fields {
			if containsString(constraints, name) {
				forbidden = append(forbidden, name)
			}
		}
		if len(forbidden) > 0 {
			return Blame(tailLabel, diag.ForbiddenTailField, diag.ForbiddenTailFieldsMessage(forbidden))
		}

		out := &Record{
			Fields: append([]string(nil), acc.Fields...),
			byName: make(map[string]Thunk, len(acc.byName)),
			Tail:   sealResidual(key, residual),
		}
		for _, n := range acc.Fields {
			th, _ := acc.Field(n)
			out.setField(n, th)
		}
		return out
	}
}

func sealResidual(key SealKey, residual *Record) SealedTail {
	t := SealedTail{Key: key, byName: make(map[string]Thunk, len(residual.Fields))}
	for _, n := range residual.Fields {
		th, _ := residual.Field(n)
		t.Fields = append(t.Fields, n)
		t.byName[n] = th
	}
	return t
}

// mergeDisjointFields combines acc and extra's field sets. Callers ensure
// the two are disjoint: acc is a record contract's checked prefix and
// extra is the residual that contract didn't mention.
func mergeDisjointFields(acc *Record, extra *Record) *Record {
	out := &Record{
		Fields: append([]string(nil), acc.Fields...),
		byName: make(map[string]Thunk, len(acc.byName)+len(extra.byName)),
		Tail:   acc.Tail,
	}
	for _, n := range acc.Fields {
		th, _ := acc.Field(n)
		out.setField(n, th)
	}
	for _, n := range extra.Fields {
		th, _ := extra.Field(n)
		if !out.HasField(n) {
			out.Fields = append(out.Fields, n)
		}
		out.setField(n, th)
	}
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
