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

// Merge combines two values written to the same field, the way two
// pending contracts on one binding get reconciled once both sides are
// forced. Scalars of matching kind must be equal, or the merge blames;
// arrays merge by pairwise equality rather than concatenation or
// elementwise union, since an array has no natural per-slot contract to
// recurse into; records merge field-by-field, recursing into fields both
// sides define and adopting fields only one side defines; sealed tails may
// never survive a merge, since a merge produces a value no single forall
// bound the tail for.
func Merge(ctx *OpContext, l *Label, a, b Value) Value {
	if ab, ok := AsBottom(a); ok {
		return ab
	}
	if bb, ok := AsBottom(b); ok {
		return bb
	}
	if a.Kind() != b.Kind() {
		return Blame(l, diag.TypeMismatch, "cannot merge values of different kinds")
	}
	switch av := a.(type) {
	case *Array:
		bv := b.(*Array)
		if !Equal(av, bv) {
			return blameMergeMismatch(l, "cannot merge unequal arrays", av, bv)
		}
		return av
	case *Record:
		return mergeRecords(ctx, l, av, b.(*Record))
	default:
		if !Equal(a, b) {
			return blameMergeMismatch(l, "cannot merge distinct values", a, b)
		}
		return a
	}
}

// blameMergeMismatch is Blame plus a diffReport note, so a merge failure's
// diagnostic shows what the two sides actually were rather than only that
// they disagreed.
func blameMergeMismatch(l *Label, message string, a, b Value) *Bottom {
	bot := Blame(l, diag.TypeMismatch, message)
	bot.Report.Notes = append(bot.Report.Notes, diffReport(a, b))
	return bot
}

// mergeRecords implements the record case of Merge: fields unique to
// either side pass through untouched, fields present on both sides merge
// recursively, and a sealed tail on either side is rejected outright since
// nothing at this point holds the key that would let it rejoin later.
func mergeRecords(ctx *OpContext, l *Label, a, b *Record) Value {
	if _, ok := a.Tail.(SealedTail); ok {
		return Blame(l, diag.SealedValueLeak, "cannot merge a polymorphic tail")
	}
	if _, ok := b.Tail.(SealedTail); ok {
		return Blame(l, diag.SealedValueLeak, "cannot merge a polymorphic tail")
	}

	onlyA, onlyB, both := splitFields(a, b)

	tail := a.Tail
	if _, ok := tail.(NoTail); ok {
		tail = b.Tail
	}
	out := &Record{byName: make(map[string]Thunk, len(onlyA)+len(onlyB)+len(both)), Tail: tail}

	for _, name := range onlyA {
		th, _ := a.Field(name)
		out.Fields = append(out.Fields, name)
		out.setField(name, th)
	}
	for _, name := range onlyB {
		th, _ := b.Field(name)
		out.Fields = append(out.Fields, name)
		out.setField(name, th)
	}
	for _, name := range both {
		at, _ := a.Field(name)
		bt, _ := b.Field(name)
		fieldLabel := l.GoField(name)
		out.Fields = append(out.Fields, name)
		out.setField(name, func() Value { return Merge(ctx, fieldLabel, at(), bt()) })
	}
	return out
}

// splitFields partitions a and b's field names into those found only in a
// (all_left), only in b (all_right), and in both (mixed/all_center),
// preserving a's order for onlyA/both and b's order for onlyB.
func splitFields(a, b *Record) (onlyA, onlyB, both []string) {
	for _, name := range a.Fields {
		if b.HasField(name) {
			both = append(both, name)
		} else {
			onlyA = append(onlyA, name)
		}
	}
	for _, name := range b.Fields {
		if !a.HasField(name) {
			onlyB = append(onlyB, name)
		}
	}
	return onlyA, onlyB, both
}
