// Copyright 2018 The CUE Authors
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

// Package diag defines the structured diagnostics produced by the contract
// subsystem: blame reports that carry a path, polarity, diagnostic message
// and source span, rather than bare strings.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mpvl/unique"
	"gopkg.in/yaml.v3"

	"github.com/nrhtr/nickel/cue/token"
)

// Kind classifies the seven error kinds a contract can raise.
type Kind int

const (
	// TypeMismatch is a flat contract rejecting a value with the wrong tag.
	TypeMismatch Kind = iota
	// MissingFields reports that a record contract's prefix is unsatisfied.
	MissingFields
	// ExtraFields reports residual fields a closed record contract forbids.
	ExtraFields
	// ForbiddenTailField reports a residual field colliding with a forall
	// row's prefix.
	ForbiddenTailField
	// TailMismatch reports a sealed tail whose key does not match.
	TailMismatch
	// SealedValueLeak reports an unseal presenting the wrong key.
	SealedValueLeak
	// UnmatchedEnumTag reports an enum value outside its declared cases.
	UnmatchedEnumTag
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case MissingFields:
		return "missing field(s)"
	case ExtraFields:
		return "extra field(s)"
	case ForbiddenTailField:
		return "forbidden field in tail"
	case TailMismatch:
		return "polymorphic tail mismatch"
	case SealedValueLeak:
		return "sealed-value leak"
	case UnmatchedEnumTag:
		return "unmatched enum tag"
	default:
		return "error"
	}
}

// Polarity mirrors adt.Polarity without importing the adt package, so
// diagnostics stay acyclic with respect to the value model.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// Error is the common diagnostic message, mirroring the teacher's
// cue/errors.Error: every diagnostic in this subsystem can report a source
// position and a message without position information.
type Error interface {
	Position() token.Pos
	Error() string
}

// Report is a blame report: the structured value
// produced by blame(L). Path, Polarity and Message are rendered verbatim;
// Span points at the annotation site.
type Report struct {
	Path     []string
	Polarity Polarity
	Message  string
	Span     token.Pos
	Kind     Kind

	// Notes are supplementary diagnostic notes, e.g. "Have you misspelled a
	// field?", following the teacher's with_diagnostic_notes pattern.
	Notes []string
}

func (r *Report) Position() token.Pos { return r.Span }

func (r *Report) Error() string {
	path := strings.Join(r.Path, ".")
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("%s: %s (%s)", path, r.Message, r.Polarity)
}

// MarshalYAML renders the report in the blame report shape:
// {path, polarity, message, span: {file, start, end}}.
func (r *Report) MarshalYAML() (interface{}, error) {
	type span struct {
		File  string `yaml:"file"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	}
	type doc struct {
		Path     []string `yaml:"path"`
		Polarity string   `yaml:"polarity"`
		Message  string   `yaml:"message"`
		Span     span     `yaml:"span"`
	}
	return doc{
		Path:     r.Path,
		Polarity: r.Polarity.String(),
		Message:  r.Message,
		Span: span{
			File:  r.Span.Filename,
			Start: r.Span.Start.String(),
			End:   r.Span.End.String(),
		},
	}, nil
}

// List is a list of diagnostics, mirroring cue/errors.List.
type List []Error

func (p *List) Add(err Error) { *p = append(*p, err) }

func (p List) Len() int      { return len(p) }
func (p List) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p List) Less(i, j int) bool {
	return p[i].Position().String() < p[j].Position().String()
}

// Sort sorts a List by position.
func (p List) Sort() { sort.Sort(p) }

func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0].Error(), len(p)-1)
}

// Print writes one diagnostic per line to w.
func Print(w io.Writer, list List) {
	for _, e := range list {
		fmt.Fprintln(w, e.Error())
	}
}

// RenderYAML renders list in the blame report shape each *Report's
// MarshalYAML describes, for a host evaluator embedding structured
// diagnostics back into its own configuration output rather than plain
// text.
func RenderYAML(list List) ([]byte, error) {
	return yaml.Marshal(list)
}

// Plural appends English plural "s" to word when n != 1. This governs the
// "missing field(s)" / "extra field(s)" diagnostics below.
func Plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// stringSlice adapts a []string to unique.Interface so that mpvl/unique can
// sort and compact it in place without a bespoke dedup loop here.
type stringSlice struct{ s *[]string }

func (s stringSlice) Len() int           { return len(*s.s) }
func (s stringSlice) Less(i, j int) bool { return (*s.s)[i] < (*s.s)[j] }
func (s stringSlice) Swap(i, j int)      { (*s.s)[i], (*s.s)[j] = (*s.s)[j], (*s.s)[i] }
func (s stringSlice) Truncate(n int)     { *s.s = (*s.s)[:n] }

// FieldList sorts and de-duplicates names, quotes each with backticks, and
// joins them with commas for diagnostics such as "missing field(s) `a`,
// `b`". Deduplication matters because a residual may be reported once even
// if several contracts independently flagged the same field.
func FieldList(names []string) string {
	cp := append([]string(nil), names...)
	unique.Sort(stringSlice{&cp})

	quoted := make([]string, len(cp))
	for i, n := range cp {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}

// MissingFieldsMessage builds the diagnostic for a record contract whose
// prefix is unsatisfied.
func MissingFieldsMessage(names []string) string {
	return fmt.Sprintf("%s %s", Plural("missing field", len(names)), FieldList(names))
}

// ExtraFieldsMessage builds the diagnostic for a record contract with
// residual fields it does not accept.
func ExtraFieldsMessage(names []string) string {
	return fmt.Sprintf("%s %s", Plural("extra field", len(names)), FieldList(names))
}

// ForbiddenTailFieldsMessage builds the diagnostic for a row tail whose
// residual collides with the prefix it must not touch.
func ForbiddenTailFieldsMessage(names []string) string {
	return fmt.Sprintf("%s not allowed in tail: %s", Plural("field", len(names)), FieldList(names))
}
