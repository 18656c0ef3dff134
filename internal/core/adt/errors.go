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

// This file contains the blame encoding.
//
// *Bottom:
//   - an adt.Value
//   - carries a *diag.Report
//   - marks a contract violation used for control flow: any contract that
//     observes a Bottom where it expected a concrete value must propagate
//     it unchanged rather than inspect it further.

import (
	"github.com/nrhtr/nickel/internal/diag"
)

// Bottom is the Value a contract returns in place of a result when it
// blames. It threads through the evaluator the way a
// result-type's error variant would, per the design notes' "result-type
// with a distinguished blame variant".
type Bottom struct {
	Report *diag.Report
}

func (*Bottom) Kind() Kind { return BottomKind }

func (b *Bottom) Error() string { return b.Report.Error() }

// AsBottom reports whether v is a Bottom, the standard check every
// structural contract performs before continuing past a sub-contract call.
func AsBottom(v Value) (*Bottom, bool) {
	b, ok := v.(*Bottom)
	return b, ok
}

// Blame terminates the current contract application, producing a Bottom
// carrying a structured report built from l's path, polarity, span and the
// given kind/message.
func Blame(l *Label, kind diag.Kind, message string) *Bottom {
	msg := message
	if l.Message() != "" {
		msg = l.Message()
	}
	return &Bottom{Report: &diag.Report{
		Path:     pathStrings(l.Path()),
		Polarity: diag.Polarity(l.Polarity()),
		Message:  msg,
		Span:     l.Span(),
		Kind:     kind,
	}}
}

func pathStrings(path []PathFragment) []string {
	out := make([]string, len(path))
	for i, f := range path {
		out[i] = f.String()
	}
	return out
}

// BlameTypeMismatch builds the diagnostic for a flat contract that
// rejects v's tag.
func BlameTypeMismatch(l *Label, want string, got Value) *Bottom {
	return Blame(l, diag.TypeMismatch, want+" contract applied to a "+got.Kind().String()+" value")
}
