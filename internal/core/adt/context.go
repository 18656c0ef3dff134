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

// OpContext threads the sealing registry and debug-tracing configuration
// through a tree of contract applications. It holds no evaluation state of
// its own — the contract subsystem performs no I/O and does not suspend
// — it is purely the evaluator-facing handle contracts are called
// with.
type OpContext struct {
	// Strict is a flag mirroring the teacher's OpContext.Strict gate for
	// Assertf. No code in this package reads it: duplicate sealing-key
	// insertion panics regardless, and a Tail of unknown concrete type is
	// treated as an empty tail regardless.
	Strict bool

	// LogEval gates the tracing in Logf; 0 disables it.
	LogEval int

	seal   *SealRegistry
	logID  int
	indent int
}

// New creates an OpContext with a fresh sealing registry.
func New() *OpContext {
	return &OpContext{seal: NewSealRegistry()}
}

// FreshKey allocates a new sealing key from this context's registry,
// allocated the moment a forall contract is entered.
func (c *OpContext) FreshKey() SealKey {
	return c.seal.Fresh()
}
