// Copyright 2025 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adt

import (
	"fmt"
	"log"
	"strings"

	"github.com/kr/pretty"
)

func init() {
	log.SetFlags(0)
}

// Logf writes one numbered trace line through the standard log package
// when c.LogEval is non-zero, the same gate the teacher's OpContext.Logf
// uses for evaluator tracing. The contracts in this package do not call
// it, so key allocation, wrapper construction and blame are not traced.
func (c *OpContext) Logf(format string, args ...interface{}) {
	if c.LogEval == 0 {
		return
	}
	w := &strings.Builder{}
	c.logID++
	fmt.Fprintf(w, "%3d ", c.logID)
	for i := 0; i < c.indent; i++ {
		w.WriteString("... ")
	}
	fmt.Fprintf(w, format, args...)
	_ = log.Output(2, w.String())
}

// Dumpf is like Logf but pretty-prints v with kr/pretty first, for tracing
// a Label or Value tree in full rather than a one-line summary.
func (c *OpContext) Dumpf(label string, v interface{}) {
	if c.LogEval == 0 {
		return
	}
	c.Logf("%s: %s", label, pretty.Sprint(v))
}
