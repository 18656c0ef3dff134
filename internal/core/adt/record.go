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

// FieldSpec pairs a field name with the contract that must hold for it, in
// the order the record contract was written.
type FieldSpec struct {
	Name     string
	Contract Contract
}

// TailContract is the tail_contract slot of a record contract: given
// the already-checked prefix (acc) and the residual fields not mentioned
// by field_contracts, it decides how — or whether — the residual is
// allowed, and returns the final record (or a *Bottom).
type TailContract func(ctx *OpContext, l *Label, acc *Record, residual *Record) Value

// RecordContract enforces that v is a record, every field in fields is
// present (missing fields blame before anything else is checked), each
// present field is checked at go_field(name, L), and the residual is
// handed to tail.
func RecordContract(fields []FieldSpec, tail TailContract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		r, ok := v.(*Record)
		if !ok {
			return BlameTypeMismatch(l, "Record", v)
		}

		var missing []string
		for _, f := range fields {
			if !r.HasField(f.Name) {
				missing = append(missing, f.Name)
			}
		}
		if len(missing) > 0 {
			return blameMissingFields(l, missing)
		}

		known := make(map[string]bool, len(fields))
		acc := &Record{byName: map[string]Thunk{}, Tail: NoTail{}}
		for _, f := range fields {
			known[f.Name] = true
			name, c := f.Name, f.Contract
			th, _ := r.Field(name)
			fieldLabel := l.GoField(name)
			acc.Fields = append(acc.Fields, name)
			acc.setField(name, func() Value { return c(ctx, fieldLabel, th()) })
		}

		residual := &Record{byName: map[string]Thunk{}, Tail: r.Tail}
		for _, name := range r.Fields {
			if known[name] {
				continue
			}
			th, _ := r.Field(name)
			residual.Fields = append(residual.Fields, name)
			residual.setField(name, th)
		}

		return tail(ctx, l, acc, residual)
	}
}

func blameMissingFields(l *Label, names []string) Value {
	return Blame(l, diag.MissingFields, diag.MissingFieldsMessage(names))
}
