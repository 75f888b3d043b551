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
	"errors"

	"github.com/qslang/qcheck/types"
)

// Context holds the state of a single checking pass: allocated type-variables and their bindings.
//
// A context is not safe for concurrent use; each declaration and query is checked with its own.
type Context struct {
	VarTracker VarTracker
	Subst      Subst
	InstLookup map[int]*types.Var // instantiation lookup for quantified type-variables
}

// NewContext creates a context which allocates type-variables starting at nextID.
func NewContext(nextID int) *Context {
	ctx := &Context{}
	ctx.Init()
	ctx.VarTracker.NextID = nextID
	return ctx
}

func (ctx *Context) Init() {
	ctx.Subst, ctx.InstLookup = NewSubst(), make(map[int]*types.Var, 16)
}

func (ctx *Context) Reset() {
	ctx.VarTracker.Reset()
	ctx.Subst = NewSubst()
	ctx.ClearInstantiationLookup()
}

func (ctx *Context) ClearInstantiationLookup() {
	for k := range ctx.InstLookup {
		delete(ctx.InstLookup, k)
	}
}

// Txn marks a point to which bindings can be rolled back.
type Txn struct {
	subst Subst
}

func (ctx *Context) NewTxn() Txn { return Txn{ctx.Subst} }

// Rollback discards every binding made since txn was created.
func (ctx *Context) Rollback(txn Txn) { ctx.Subst = txn.subst }

// Prune follows the bindings of t until reaching a non-variable or an unbound variable.
func (ctx *Context) Prune(t types.Type) types.Type {
	for {
		tv, ok := t.(*types.Var)
		if !ok {
			return t
		}
		next, ok := ctx.Subst.Lookup(tv.ID)
		if !ok {
			return t
		}
		t = next
	}
}

// Resolve applies the current bindings throughout t.
func (ctx *Context) Resolve(t types.Type) types.Type {
	if ctx.Subst.Len() == 0 {
		return t
	}
	return types.Substitute(t, func(tv *types.Var) (types.Type, bool) {
		next, ok := ctx.Subst.Lookup(tv.ID)
		if !ok {
			return nil, false
		}
		return ctx.Resolve(next), true
	})
}

// IsUnbound reports whether t resolves to an unbound type-variable.
func (ctx *Context) IsUnbound(t types.Type) (*types.Var, bool) {
	tv, ok := ctx.Prune(t).(*types.Var)
	return tv, ok
}

// Bind tv to t. The binding fails when t contains tv.
func (ctx *Context) Bind(tv *types.Var, t types.Type) error {
	if other, ok := t.(*types.Var); ok && other.ID == tv.ID {
		return nil
	}
	if ctx.occurs(tv.ID, t) {
		return errors.New("Implicitly recursive types are not supported")
	}
	ctx.Subst = ctx.Subst.Bind(tv.ID, t)
	return nil
}

func (ctx *Context) occurs(id int, t types.Type) bool {
	if !t.IsGeneric() {
		return false
	}
	for _, tv := range types.FreeVars(ctx.Resolve(t)) {
		if tv.ID == id {
			return true
		}
	}
	return false
}
