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

package qcheck

import (
	"strconv"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

var (
	boolType  = types.NewAtom(types.Boolean)
	utf8Type  = types.NewAtom(types.Utf8)
	floatType = types.NewAtom(types.Float64)
)

func (cc *checkContext) infer(expr ast.Expr) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return types.NewAtom(e.Kind), nil

	case *ast.Ref:
		return cc.inferRef(e, false)

	case *ast.Call:
		return cc.inferCall(e)

	case *ast.Select:
		return cc.inferSelect(e)

	case *ast.RecordLit:
		fields := make([]types.Field, len(e.Fields))
		for i, fv := range e.Fields {
			t, err := cc.infer(fv.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = types.Field{Name: fv.Name, Type: t, Nullable: types.IsNull(cc.common.Prune(t))}
		}
		r, err := types.NewRecord(fields...)
		if err != nil {
			return nil, cc.duplicateField(e)
		}
		return r, nil

	case *ast.ListLit:
		if len(e.Elems) == 0 {
			return types.NewList(cc.newVar("T", types.Generic)), nil
		}
		elem, err := cc.infer(e.Elems[0])
		if err != nil {
			return nil, err
		}
		for _, next := range e.Elems[1:] {
			t, err := cc.infer(next)
			if err != nil {
				return nil, err
			}
			if elem, err = cc.common.Coerce(elem, t, next.Location()); err != nil {
				return nil, err
			}
		}
		return types.NewList(elem), nil

	case *ast.Binary:
		return cc.inferBinary(e)

	case *ast.If:
		cond, err := cc.infer(e.Cond)
		if err != nil {
			return nil, err
		}
		if _, err = cc.common.Coerce(cond, boolType, e.Cond.Location()); err != nil {
			return nil, err
		}
		then, err := cc.infer(e.Then)
		if err != nil {
			return nil, err
		}
		els, err := cc.infer(e.Else)
		if err != nil {
			return nil, err
		}
		return cc.common.Coerce(then, els, e.Loc)

	case nil:
		return nil, &diag.UndefinedError{Name: "<nil>"}
	}
	return nil, &diag.UndefinedError{Name: expr.ExprName(), Location: expr.Location()}
}

func (cc *checkContext) duplicateField(e *ast.RecordLit) error {
	seen := make(map[string]bool, len(e.Fields))
	for _, fv := range e.Fields {
		if seen[fv.Name] {
			return &diag.DuplicateError{What: "field", Name: fv.Name, Location: e.Loc}
		}
		seen[fv.Name] = true
	}
	return &diag.DuplicateError{What: "field", Location: e.Loc}
}

// inferRef types a reference. callee is set when the reference is called directly, in which case
// inferCall forces a deferred function itself.
func (cc *checkContext) inferRef(e *ast.Ref, callee bool) (types.Type, error) {
	if t, ok := cc.scope[e.Name]; ok {
		return t, nil
	}
	entry, ok := cc.env.entry(e.Name)
	if !ok {
		return nil, &diag.UndefinedError{Name: e.Name, Location: e.Loc}
	}
	if entry.IsType {
		return nil, &diag.WrongKindError{Name: e.Name, Expected: "value", Location: e.Loc}
	}
	if entry.Err != nil {
		return nil, diag.Runtime(entry.Err, e.Loc)
	}
	t := cc.common.Instantiate(entry.Scheme)
	if !entry.Deferred {
		return t, nil
	}
	// Deferred values are forced where they are referenced; deferred functions where they are
	// called, or once the enclosing query is checked when passed around as values:
	if !entry.Decl.IsFunc {
		return cc.forceValue(entry, t, e.Loc)
	}
	if fn, ok := t.(*types.Function); ok && !callee {
		cc.pending = append(cc.pending, pendingForce{entry: entry, fn: fn, loc: e.Loc})
	}
	return t, nil
}

func (cc *checkContext) inferCall(e *ast.Call) (types.Type, error) {
	var (
		callee types.Type
		err    error
	)
	if ref, ok := e.Func.(*ast.Ref); ok {
		callee, err = cc.inferRef(ref, true)
	} else {
		callee, err = cc.infer(e.Func)
	}
	if err != nil {
		return nil, err
	}
	args := make([]types.Type, len(e.Args))
	for i, arg := range e.Args {
		if args[i], err = cc.infer(arg); err != nil {
			return nil, err
		}
	}

	switch f := cc.common.Prune(callee).(type) {
	case *types.Function:
		if f.Params.Len() != len(args) {
			return nil, &diag.CoercionError{
				Types:    [2]types.Type{cc.common.Resolve(f), cc.callShape(args)},
				Location: e.Loc,
			}
		}
		for i, arg := range args {
			if _, err := cc.common.Assign(arg, f.Params.Field(i).Type, e.Loc); err != nil {
				return nil, err
			}
		}
		if entry, ok := cc.deferredCallee(e.Func); ok {
			return cc.forceCall(entry, f, e.Loc)
		}
		return f.Return, nil

	case *types.Var:
		shape := cc.callShape(args)
		if err := cc.common.Bind(f, shape); err != nil {
			return nil, &diag.CoercionError{Types: [2]types.Type{f, shape}, Location: e.Loc}
		}
		return shape.Return, nil

	default:
		return nil, &diag.CoercionError{
			Types:    [2]types.Type{cc.common.Resolve(f), cc.callShape(args)},
			Location: e.Loc,
		}
	}
}

// callShape returns the function type implied by a call: `λ {_0 Int64, _1 Utf8} -> __Return`
func (cc *checkContext) callShape(args []types.Type) *types.Function {
	fields := make([]types.Field, len(args))
	for i, arg := range args {
		fields[i] = types.Field{Name: "_" + strconv.Itoa(i), Type: cc.common.Resolve(arg), Nullable: true}
	}
	params, _ := types.NewRecord(fields...)
	return types.NewFunction(params, cc.newVar("__Return", types.Generic))
}

// deferredCallee returns the declaration called by fn when it must be forced.
func (cc *checkContext) deferredCallee(fn ast.Expr) (*Entry, bool) {
	ref, ok := fn.(*ast.Ref)
	if !ok {
		return nil, false
	}
	if _, local := cc.scope[ref.Name]; local {
		return nil, false
	}
	entry, ok := cc.env.entry(ref.Name)
	if !ok || !entry.Deferred || entry.Decl == nil {
		return nil, false
	}
	return entry, true
}

func (cc *checkContext) inferSelect(e *ast.Select) (types.Type, error) {
	rt, err := cc.infer(e.Record)
	if err != nil {
		return nil, err
	}
	switch r := cc.common.Prune(rt).(type) {
	case *types.Record:
		return cc.selectField(r, e)

	case *types.List:
		switch elem := cc.common.Prune(r.Elem).(type) {
		case *types.Record:
			t, err := cc.selectField(elem, e)
			if err != nil {
				return nil, err
			}
			return types.NewList(t), nil
		case *types.Var:
			cc.deferred = true
			return types.NewList(cc.newVar("async_slot", types.AsyncSlot)), nil
		}

	case *types.Var:
		cc.deferred = true
		return cc.newVar("async_slot", types.AsyncSlot), nil
	}
	probe := cc.probe(e.Field)
	return nil, &diag.CoercionError{Types: [2]types.Type{cc.common.Resolve(rt), probe}, Location: e.Loc}
}

// probe returns the record `{field ?field?}`.
func (cc *checkContext) probe(field string) *types.Record {
	r, _ := types.NewRecord(types.Field{Name: field, Type: cc.newVar("field", types.RowField), Nullable: true})
	return r
}

func (cc *checkContext) selectField(r *types.Record, e *ast.Select) (types.Type, error) {
	probe := cc.probe(e.Field)
	if _, err := cc.common.Coerce(probe, r, e.Loc); err != nil {
		return nil, err
	}
	return cc.common.Prune(probe.Field(0).Type), nil
}

func (cc *checkContext) inferBinary(e *ast.Binary) (types.Type, error) {
	left, err := cc.infer(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := cc.infer(e.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case e.Op.IsArithmetic():
		t, err := cc.common.Coerce(left, right, e.Loc)
		if err != nil {
			return nil, err
		}
		switch pt := cc.common.Prune(t).(type) {
		case *types.Var:
			return pt, nil
		case *types.Atom:
			if pt.Kind.IsNumeric() {
				return pt, nil
			}
		}
		return nil, &diag.CoercionError{Types: [2]types.Type{cc.common.Resolve(t), floatType}, Location: e.Loc}

	case e.Op.IsComparison():
		if _, err := cc.common.Coerce(left, right, e.Loc); err != nil {
			return nil, err
		}
		return boolType, nil

	case e.Op == ast.OpConcat:
		return cc.coerceBoth(left, right, utf8Type, e.Loc)

	case e.Op.IsLogical():
		return cc.coerceBoth(left, right, boolType, e.Loc)
	}
	return nil, &diag.UndefinedError{Name: string(e.Op), Location: e.Loc}
}

func (cc *checkContext) coerceBoth(left, right, t types.Type, loc ast.Location) (types.Type, error) {
	if _, err := cc.common.Coerce(left, t, loc); err != nil {
		return nil, err
	}
	if _, err := cc.common.Coerce(right, t, loc); err != nil {
		return nil, err
	}
	return t, nil
}
