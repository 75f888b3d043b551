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
	set "github.com/hashicorp/go-set/v3"
	"github.com/qslang/qcheck/types"
)

// Generalize quantifies the free Generic type-variables of t which are not in bound, in
// first-occurrence order. t should already be resolved (see Context.Resolve).
//
// RowField and AsyncSlot variables are never quantified.
func Generalize(t types.Type, bound *set.Set[int]) *types.Scheme {
	free := types.FreeVars(t, types.Generic)
	if len(free) == 0 {
		return types.Mono(t)
	}
	quantified := make([]*types.Var, 0, len(free))
	for _, tv := range free {
		if bound != nil && bound.Contains(tv.ID) {
			continue
		}
		quantified = append(quantified, tv)
	}
	return types.NewScheme(quantified, t)
}
