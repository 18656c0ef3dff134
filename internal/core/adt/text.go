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
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText turns raw bytes into a String value, the primitive a host
// evaluator's lexer uses to decode a string literal or an external file's
// contents. A leading UTF-8, UTF-16LE or UTF-16BE byte-order mark is
// detected and stripped; content with no BOM is decoded as UTF-8, matching
// the teacher's own treatment of String as true Unicode text rather than
// raw bytes.
func DecodeText(b []byte) (String, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return "", err
	}
	return String(out), nil
}
