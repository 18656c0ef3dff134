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

// Contract is the two-argument function : it validates, and possibly
// wraps, a Value under a Label, returning either the (possibly wrapped)
// value or a *Bottom.
type Contract func(ctx *OpContext, l *Label, v Value) Value

// Dyn always passes, returning the value unchanged.
func Dyn(ctx *OpContext, l *Label, v Value) Value {
	return v
}

// Num blames unless v is a Number.
func Num(ctx *OpContext, l *Label, v Value) Value {
	if v.Kind() != NumberKind {
		return BlameTypeMismatch(l, "Number", v)
	}
	return v
}

// BoolContract blames unless v is a Bool.
func BoolContract(ctx *OpContext, l *Label, v Value) Value {
	if v.Kind() != BoolKind {
		return BlameTypeMismatch(l, "Bool", v)
	}
	return v
}

// Str blames unless v is a String.
func Str(ctx *OpContext, l *Label, v Value) Value {
	if v.Kind() != StringKind {
		return BlameTypeMismatch(l, "String", v)
	}
	return v
}

// Fail always blames: the residual contract for unmatched enum tags, and a
// building block for any contract that should never pass.
func Fail(ctx *OpContext, l *Label, v Value) Value {
	return Blame(l, diag.UnmatchedEnumTag, "fail")
}

// EnumFail is the residual applied by Enums when a tag has no matching
// case; it is Fail specialized with the offending tag in the message.
func EnumFail(ctx *OpContext, l *Label, v Value) Value {
	e, ok := v.(Enum)
	if !ok {
		return BlameTypeMismatch(l, "Enum", v)
	}
	return Blame(l, diag.UnmatchedEnumTag, "unmatched enum tag `"+e.Tag+"`")
}

// Enums blames unless v is an Enum, then applies cases — itself a contract
// built from a match on known tags with EnumFail as the default.
func Enums(cases Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		if v.Kind() != EnumKind {
			return BlameTypeMismatch(l, "Enum", v)
		}
		return cases(ctx, l, v)
	}
}

// EnumMatch builds the "case" contract expects Enums to be handed: a
// dispatch on known tags, defaulting to EnumFail for anything else.
func EnumMatch(byTag map[string]Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		e, ok := v.(Enum)
		if !ok {
			return BlameTypeMismatch(l, "Enum", v)
		}
		if c, found := byTag[e.Tag]; found {
			return c(ctx, l, v)
		}
		return EnumFail(ctx, l, v)
	}
}
