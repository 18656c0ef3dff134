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

// DictContract wraps a record so that every field projection applies c to
// that field's value with label go_dict(L). The set of fields is
// not enforced, and field enumeration returns the underlying field set
// without forcing values: laziness is preserved.
func DictContract(c Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		r, ok := v.(*Record)
		if !ok {
			return BlameTypeMismatch(l, "Record", v)
		}
		dictLabel := l.GoDict()
		out := r.EmptyWithTail()
		for _, name := range r.Fields {
			th, _ := r.Field(name)
			out.Fields = append(out.Fields, name)
			out.setField(name, func() Value { return c(ctx, dictLabel, th()) })
		}
		return out
	}
}

// DictType immediately maps c over every field of the record, returning a
// fresh record whose fields have been checked. Unlike
// DictContract, it never wraps, so it can be iterated without triggering
// further checks.
func DictType(c Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		r, ok := v.(*Record)
		if !ok {
			return BlameTypeMismatch(l, "Record", v)
		}
		dictLabel := l.GoDict()
		out := r.EmptyWithTail()
		for _, name := range r.Fields {
			th, _ := r.Field(name)
			checked := c(ctx, dictLabel, th())
			if b, ok := AsBottom(checked); ok {
				return b
			}
			out.Fields = append(out.Fields, name)
			out.setField(name, LitThunk(checked))
		}
		return out
	}
}

// setField installs a thunk directly, bypassing Insert's "append only if
// absent" bookkeeping, since DictContract/DictType already own a fresh
// field-order slice built from the source record's own order.
func (r *Record) setField(name string, th Thunk) {
	r.byName[name] = th
}
