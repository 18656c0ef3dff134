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
	"strings"

	"github.com/nrhtr/nickel/cue/token"
)

// Polarity is positive at a type's output position and negative at an
// input position.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

// Flip is an involution: Flip(Flip(p)) == p.
func (p Polarity) Flip() Polarity {
	if p == Positive {
		return Negative
	}
	return Positive
}

func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// FragmentKind enumerates the path-fragment varieties : field names,
// Array, Domain, Codomain, Dict, TailOf.
type FragmentKind int

const (
	FieldFragment FragmentKind = iota
	ArrayFragment
	DomainFragment
	CodomainFragment
	DictFragment
	TailOfFragment
)

// PathFragment is one element of a Label's path.
type PathFragment struct {
	Kind  FragmentKind
	Field string // meaningful only when Kind == FieldFragment
}

func (f PathFragment) String() string {
	switch f.Kind {
	case FieldFragment:
		return f.Field
	case ArrayFragment:
		return "Array"
	case DomainFragment:
		return "Domain"
	case CodomainFragment:
		return "Codomain"
	case DictFragment:
		return "Dict"
	case TailOfFragment:
		return "TailOf"
	default:
		return "?"
	}
}

// TypeVarBinding records the polarity a forall bound a type or row
// variable at, plus, for row variables, the field names forbidden in the
// tail.
type TypeVarBinding struct {
	Polarity    Polarity
	Constraints []string
}

// Label carries polarity, path, diagnostic message and the active
// type-variable environment through contract applications. Labels are
// immutable: every operation below returns a new Label.
type Label struct {
	path     []PathFragment
	polarity Polarity
	message  string
	typeVars map[SealKey]TypeVarBinding
	span     token.Pos
	dualize  bool
}

// RootLabel creates the label for a top-level annotation `value | Contract`,
// starting from positive polarity.
func RootLabel(span token.Pos) *Label {
	return &Label{polarity: Positive, span: span}
}

func (l *Label) clone() *Label {
	out := *l
	out.path = append([]PathFragment(nil), l.path...)
	return &out
}

// Path returns the label's path, root first.
func (l *Label) Path() []PathFragment { return l.path }

// PathString renders the path the way blame diagnostics want it, e.g.
// "a.Array".
func (l *Label) PathString() string {
	parts := make([]string, len(l.path))
	for i, f := range l.path {
		parts[i] = f.String()
	}
	return strings.Join(parts, ".")
}

// Span returns the source location of the annotation that introduced this
// contract application.
func (l *Label) Span() token.Pos { return l.span }

// Message returns the diagnostic message currently attached to the label,
// if any.
func (l *Label) Message() string { return l.message }

func (l *Label) goPath(f PathFragment) *Label {
	out := l.clone()
	out.path = append(out.path, f)
	return out
}

// GoField appends a field-name fragment (record projection).
func (l *Label) GoField(name string) *Label {
	return l.goPath(PathFragment{Kind: FieldFragment, Field: name})
}

// GoArray appends an Array fragment (array-element observation).
func (l *Label) GoArray() *Label { return l.goPath(PathFragment{Kind: ArrayFragment}) }

// GoDict appends a Dict fragment (dictionary-field observation).
func (l *Label) GoDict() *Label { return l.goPath(PathFragment{Kind: DictFragment}) }

// GoDom appends a Domain fragment. It does not itself flip polarity; the
// function contract composes ChngPol(GoDom(L)) explicitly.
func (l *Label) GoDom() *Label { return l.goPath(PathFragment{Kind: DomainFragment}) }

// GoCodom appends a Codomain fragment.
func (l *Label) GoCodom() *Label { return l.goPath(PathFragment{Kind: CodomainFragment}) }

// GoTailOf appends a TailOf fragment, used when blaming a row tail.
func (l *Label) GoTailOf() *Label { return l.goPath(PathFragment{Kind: TailOfFragment}) }

// ChngPol flips the label's polarity. An involution: ChngPol(ChngPol(L))
// is observationally L.
func (l *Label) ChngPol() *Label {
	out := l.clone()
	out.polarity = l.polarity.Flip()
	return out
}

// Dualize toggles the dualize flag, crossed when entering a merge (&).
func (l *Label) Dualize() *Label {
	out := l.clone()
	out.dualize = !l.dualize
	return out
}

// IsDualized reports the current dualize flag.
func (l *Label) IsDualized() bool { return l.dualize }

// Polarity returns the label's effective polarity: its stored polarity,
// flipped once more if dualize is set.
func (l *Label) Polarity() Polarity {
	if l.dualize {
		return l.polarity.Flip()
	}
	return l.polarity
}

// WithMessage replaces the diagnostic message.
func (l *Label) WithMessage(msg string) *Label {
	out := l.clone()
	out.message = msg
	return out
}

// InsertTypeVariable binds key to {polarity, no constraints} in a fresh
// label. Rebinding an already-bound key is a programmer error and
// panics rather than silently shadowing, since it would otherwise corrupt
// unrelated forall scopes.
func (l *Label) InsertTypeVariable(key SealKey, polarity Polarity) *Label {
	return l.insertTypeVariable(key, TypeVarBinding{Polarity: polarity})
}

// InsertRowVariable binds key to {polarity, constraints}, additionally
// recording which field names a row tail forbids. ForallTail does not
// call it: it takes its constraints as an argument instead.
func (l *Label) InsertRowVariable(key SealKey, polarity Polarity, constraints []string) *Label {
	return l.insertTypeVariable(key, TypeVarBinding{Polarity: polarity, Constraints: constraints})
}

func (l *Label) insertTypeVariable(key SealKey, binding TypeVarBinding) *Label {
	if _, dup := l.typeVars[key]; dup {
		panic("adt: duplicate sealing key inserted into label; this is a programmer error in the contract that built the forall")
	}
	out := l.clone()
	out.typeVars = make(map[SealKey]TypeVarBinding, len(l.typeVars)+1)
	for k, v := range l.typeVars {
		out.typeVars[k] = v
	}
	out.typeVars[key] = binding
	return out
}

// LookupTypeVariable returns the binding for key, and false if key has
// escaped its enclosing forall.
func (l *Label) LookupTypeVariable(key SealKey) (TypeVarBinding, bool) {
	b, ok := l.typeVars[key]
	return b, ok
}
