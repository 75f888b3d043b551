// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"github.com/qslang/qcheck/types"
)

// Instantiate replaces each quantifier of s with a fresh type-variable of the same name and kind.
//
// Every call allocates new variables, so bindings made for one instantiation never affect another.
func (ctx *Context) Instantiate(s *types.Scheme) types.Type {
	// Non-generic types can be shared:
	if s.IsMono() || !s.Body.IsGeneric() {
		return s.Body
	}
	for _, q := range s.Quantifiers {
		ctx.InstLookup[q.ID] = ctx.VarTracker.New(q.Name, q.Kind)
	}
	t := types.Substitute(s.Body, func(tv *types.Var) (types.Type, bool) {
		next, ok := ctx.InstLookup[tv.ID]
		if !ok {
			return nil, false
		}
		return next, true
	})
	ctx.ClearInstantiationLookup()
	return t
}
