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
	"github.com/benbjohnson/immutable"
	"github.com/qslang/qcheck/types"
)

var emptySubst = immutable.NewSortedMap(nil)

// Subst is a persistent mapping from type-variable IDs to their bindings. Binding a variable
// returns a new substitution; earlier versions remain valid, which makes rollback free.
type Subst struct {
	m *immutable.SortedMap
}

func NewSubst() Subst { return Subst{emptySubst} }

func (s Subst) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

func (s Subst) Lookup(id int) (types.Type, bool) {
	if s.m == nil {
		return nil, false
	}
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

func (s Subst) Bind(id int, t types.Type) Subst {
	m := s.m
	if m == nil {
		m = emptySubst
	}
	return Subst{m.Set(id, t)}
}

// Range visits bindings in ID order.
func (s Subst) Range(f func(id int, t types.Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(types.Type)) {
			return
		}
	}
}
