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

package token

import "fmt"

// Position describes an arbitrary and printable source position within a
// file, including offset, line, and column location, which can be rendered
// in a human-friendly text form.
//
// A Position is valid if the line number is > 0.
type Position struct {
	Filename string // filename, if any
	Offset   int    // offset, starting at 0
	Line     int    // line number, starting at 1
	Column   int    // column number, starting at 1 (byte count)
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String returns a human-readable form of a position in one of several
// forms:
//
//	file:line:column    valid position with file name
//	line:column         valid position without file name
//	file                invalid position with file name
//	-                   invalid position without file name
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Pos is a compact source position: the start and end of a span within a
// single file. Contract labels carry a Pos to report the source
// location of the annotation that introduced a contract.
type Pos struct {
	Filename string
	Start    Position
	End      Position
}

// NoPos is the zero value for Pos; it is not a valid position.
var NoPos = Pos{}

// IsValid reports whether p is a known, non-empty position.
func (p Pos) IsValid() bool { return p.Start.IsValid() }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Start == p.End {
		return p.Start.String()
	}
	return fmt.Sprintf("%s-%d:%d", p.Start.String(), p.End.Line, p.End.Column)
}
