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

// FuncContract returns a contract that blames unless v is a Function, then
// returns a new Function which, on application, checks dom against the
// argument at label chng_pol(go_dom(L)) (contravariance), applies the
// inner function, and checks cod against the result at go_codom(L).
func FuncContract(dom, cod Contract) Contract {
	return func(ctx *OpContext, l *Label, v Value) Value {
		fn, ok := v.(*Function)
		if !ok {
			return BlameTypeMismatch(l, "Function", v)
		}
		domLabel := l.GoDom().ChngPol()
		codLabel := l.GoCodom()
		inner := fn
		return &Function{
			Name: fn.Name,
			Apply: func(ctx *OpContext, arg Value) Value {
				checkedArg := dom(ctx, domLabel, arg)
				if b, ok := AsBottom(checkedArg); ok {
					return b
				}
				result := inner.Apply(ctx, checkedArg)
				if b, ok := AsBottom(result); ok {
					return b
				}
				return cod(ctx, codLabel, result)
			},
		}
	}
}
