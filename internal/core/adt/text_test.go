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
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDecodeTextPlainUTF8(t *testing.T) {
	got, err := DecodeText([]byte("hello"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, String("hello")))
}

func TestDecodeTextStripsUTF8BOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	got, err := DecodeText(append(bom, []byte("bar")...))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, String("bar")))
}
