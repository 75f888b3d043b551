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

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

var errWrongType = errors.New("Record shapes differ")

// MatchRecords unifies two records by field name, returning the unified record or a
// *diag.WrongType describing both shapes.
//
// A record of exactly one field typed by an unbound RowField variable (a probe) matches any record
// which contains that field; the variable is bound to the field's type and the other record is
// returned. Otherwise both records must declare the same field names, and each pair of fields must
// coerce. A field is nullable in the result when it is nullable on either side.
func (ctx *Context) MatchRecords(lhs, rhs *types.Record) (*types.Record, error) {
	return ctx.matchRecords(opCoerce, lhs, rhs)
}

func (ctx *Context) matchRecords(op coerceOp, lhs, rhs *types.Record) (*types.Record, error) {
	txn := ctx.NewTxn()
	var (
		r   *types.Record
		err error
	)
	if probe, ok := ctx.probe(lhs); ok {
		r, err = ctx.matchProbe(probe, lhs, rhs)
	} else if probe, ok := ctx.probe(rhs); ok {
		r, err = ctx.matchProbe(probe, rhs, lhs)
	} else {
		r, err = ctx.matchFields(op, lhs, rhs)
	}
	if err != nil {
		ctx.Rollback(txn)
		return nil, ctx.wrongType(lhs, rhs)
	}
	return r, nil
}

// probe returns the placeholder when r has the shape `{name ?field?}`.
func (ctx *Context) probe(r *types.Record) (*types.Var, bool) {
	if r.Len() != 1 {
		return nil, false
	}
	tv, ok := ctx.IsUnbound(r.Field(0).Type)
	if !ok || tv.Kind != types.RowField {
		return nil, false
	}
	return tv, true
}

func (ctx *Context) matchProbe(tv *types.Var, probe, other *types.Record) (*types.Record, error) {
	field, ok := other.Lookup(probe.Field(0).Name)
	if !ok {
		return nil, errWrongType
	}
	if err := ctx.Bind(tv, field.Type); err != nil {
		return nil, err
	}
	return other, nil
}

func (ctx *Context) matchFields(op coerceOp, lhs, rhs *types.Record) (*types.Record, error) {
	if !lhs.SameNames(rhs) {
		return nil, errWrongType
	}
	fields := make([]types.Field, lhs.Len())
	for i := range fields {
		fa := lhs.Field(i)
		fb, _ := rhs.Lookup(fa.Name)
		t, err := ctx.coerce(op, fa.Type, fb.Type, ast.Unknown)
		if err != nil {
			return nil, err
		}
		nullable := fa.Nullable || fb.Nullable ||
			types.IsNull(ctx.Prune(fa.Type)) || types.IsNull(ctx.Prune(fb.Type))
		fields[i] = types.Field{Name: fa.Name, Type: t, Nullable: nullable}
	}
	return types.NewRecord(fields...)
}

func (ctx *Context) wrongType(lhs, rhs *types.Record) *diag.WrongType {
	return &diag.WrongType{
		Lhs: ctx.Resolve(lhs).(*types.Record).Canonical(),
		Rhs: ctx.Resolve(rhs).(*types.Record).Canonical(),
	}
}
