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

package types

import (
	set "github.com/hashicorp/go-set/v3"
)

// FreeVars returns the type-variables occurring in t, in first-occurrence order. When kinds
// are given, only variables of those kinds are returned.
//
// A function's return type is visited before its parameters, so the implicit return variable
// of a declaration is listed first.
func FreeVars(t Type, kinds ...VarKind) []*Var {
	c := varCollector{seen: set.New[int](8), kinds: kinds}
	c.visit(t)
	return c.vars
}

type varCollector struct {
	seen  *set.Set[int]
	kinds []VarKind
	vars  []*Var
}

func (c *varCollector) wants(k VarKind) bool {
	if len(c.kinds) == 0 {
		return true
	}
	for _, want := range c.kinds {
		if want == k {
			return true
		}
	}
	return false
}

func (c *varCollector) visit(t Type) {
	if !t.IsGeneric() {
		return
	}
	switch t := t.(type) {
	case *Var:
		if c.wants(t.Kind) && c.seen.Insert(t.ID) {
			c.vars = append(c.vars, t)
		}
	case *List:
		c.visit(t.Elem)
	case *Record:
		for _, f := range t.fields {
			c.visit(f.Type)
		}
	case *Function:
		c.visit(t.Return)
		c.visit(t.Params)
	}
}
