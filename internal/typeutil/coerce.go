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
	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

type coerceOp uint8

const (
	// Symmetric: the result is the least upper bound of both operands.
	opCoerce coerceOp = iota
	// Directed: the first operand must widen to the second.
	opAssign
)

// Coerce returns the common type of a and b, or a *diag.CoercionError tagged with loc.
//
// Type-variables in a and b may be bound by the coercion; the returned type is resolved.
func Coerce(a, b types.Type, loc ast.Location) (types.Type, error) {
	ctx := NewContext(maxVarID(a, b) + 1)
	t, err := ctx.Coerce(a, b, loc)
	if err != nil {
		return nil, err
	}
	return ctx.Resolve(t), nil
}

func maxVarID(ts ...types.Type) int {
	max := -1
	for _, t := range ts {
		for _, tv := range types.FreeVars(t) {
			if tv.ID > max {
				max = tv.ID
			}
		}
	}
	return max
}

// Coerce finds the type both a and b can be treated as:
//
//	Int32, Int64         -> Int64
//	Null, Utf8           -> Utf8
//	[Int32], [Float64]   -> [Float64]
//	?async_slot?, Utf8   -> Utf8
//
// Failures are reported as *diag.CoercionError at loc. Bindings made by a failed coercion are
// rolled back.
func (ctx *Context) Coerce(a, b types.Type, loc ast.Location) (types.Type, error) {
	return ctx.try(opCoerce, a, b, loc)
}

// Assign coerces src into dst. Unlike Coerce, numeric narrowing fails: Int64 may be assigned to
// Float64 but not to Int32.
func (ctx *Context) Assign(src, dst types.Type, loc ast.Location) (types.Type, error) {
	return ctx.try(opAssign, src, dst, loc)
}

func (ctx *Context) try(op coerceOp, a, b types.Type, loc ast.Location) (types.Type, error) {
	txn := ctx.NewTxn()
	t, err := ctx.coerce(op, a, b, loc)
	if err != nil {
		ctx.Rollback(txn)
		if ce, ok := err.(*diag.CoercionError); ok {
			ce.Types[0], ce.Types[1] = ctx.Resolve(ce.Types[0]), ctx.Resolve(ce.Types[1])
		}
		return nil, err
	}
	return t, nil
}

func (ctx *Context) coerce(op coerceOp, a, b types.Type, loc ast.Location) (types.Type, error) {
	a, b = ctx.Prune(a), ctx.Prune(b)

	// Unbound type-variables are transparent:
	if tv, ok := a.(*types.Var); ok {
		if err := ctx.Bind(tv, b); err != nil {
			return nil, mismatch(a, b, loc)
		}
		return b, nil
	}
	if tv, ok := b.(*types.Var); ok {
		if err := ctx.Bind(tv, a); err != nil {
			return nil, mismatch(a, b, loc)
		}
		return a, nil
	}

	switch a := a.(type) {
	case *types.Atom:
		bt, ok := b.(*types.Atom)
		if !ok {
			return nil, mismatch(a, b, loc)
		}
		if t := coerceAtoms(op, a, bt); t != nil {
			return t, nil
		}
		return nil, mismatch(a, b, loc)

	case *types.List:
		bt, ok := b.(*types.List)
		if !ok {
			return nil, mismatch(a, b, loc)
		}
		elem, err := ctx.coerce(op, a.Elem, bt.Elem, loc)
		if err != nil {
			return nil, err
		}
		return types.NewList(elem), nil

	case *types.Record:
		bt, ok := b.(*types.Record)
		if !ok {
			return nil, mismatch(a, b, loc)
		}
		r, err := ctx.matchRecords(op, a, bt)
		if err != nil {
			ce := mismatch(a, b, loc)
			ce.Cause = err.(*diag.WrongType)
			return nil, ce
		}
		return r, nil

	case *types.Function:
		bt, ok := b.(*types.Function)
		if !ok || a.Params.Len() != bt.Params.Len() {
			return nil, mismatch(a, b, loc)
		}
		// Parameters are paired by position:
		fields := make([]types.Field, a.Params.Len())
		for i := range fields {
			pa, pb := a.Params.Field(i), bt.Params.Field(i)
			var (
				t   types.Type
				err error
			)
			if op == opAssign {
				// Parameters are contravariant: dst's arguments must be accepted by src.
				t, err = ctx.coerce(op, pb.Type, pa.Type, loc)
			} else {
				t, err = ctx.coerce(op, pa.Type, pb.Type, loc)
			}
			if err != nil {
				return nil, mismatch(a, b, loc)
			}
			fields[i] = types.Field{Name: pa.Name, Type: t, Nullable: pa.Nullable || pb.Nullable}
		}
		ret, err := ctx.coerce(op, a.Return, bt.Return, loc)
		if err != nil {
			return nil, mismatch(a, b, loc)
		}
		params, _ := types.NewRecord(fields...)
		return types.NewFunction(params, ret), nil
	}
	return nil, mismatch(a, b, loc)
}

// coerceAtoms returns nil when a and b are incompatible.
func coerceAtoms(op coerceOp, a, b *types.Atom) types.Type {
	switch {
	case a.Kind == b.Kind:
		return a
	case a.Kind == types.Null:
		return b
	case b.Kind == types.Null:
		return a
	case a.Kind.IsNumeric() && b.Kind.IsNumeric():
		if a.Kind.Rank() < b.Kind.Rank() {
			return b
		}
		if op == opAssign {
			return nil
		}
		return a
	}
	return nil
}

func mismatch(a, b types.Type, loc ast.Location) *diag.CoercionError {
	return &diag.CoercionError{Types: [2]types.Type{a, b}, Location: loc}
}
