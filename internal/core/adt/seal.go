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

import "github.com/google/uuid"

// SealKey is a fresh, globally unique opaque token allocated when a forall
// contract is entered. Keys are unforgeable: only the same key
// unseals a sealed value. A UUID gives this for free, without a shared
// mutable counter — "any monotone, collision-free scheme suffices".
type SealKey uuid.UUID

// SealRegistry allocates fresh sealing keys. It carries no other
// state: keys need not be persisted across runs, and unsealing only
// compares a key against the one stored in a Sealed value.
type SealRegistry struct{}

// NewSealRegistry constructs a sealing registry.
func NewSealRegistry() *SealRegistry { return &SealRegistry{} }

// Fresh returns a new key, never equal to any existing or future key
// unless allocated by this exact call.
func (*SealRegistry) Fresh() SealKey { return SealKey(uuid.New()) }

// Seal wraps value under key.
func Seal(key SealKey, value Value) Value {
	return Sealed{Key: key, Inner: value}
}

// Unseal returns the inner value if v is Sealed under key; otherwise it
// evaluates onMismatch, which is typically a blame call.
func Unseal(key SealKey, v Value, onMismatch func() Value) Value {
	s, ok := v.(Sealed)
	if !ok || s.Key != key {
		return onMismatch()
	}
	return s.Inner
}
