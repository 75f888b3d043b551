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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslang/qcheck/ast"
	. "github.com/qslang/qcheck/construct"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

var loc = ast.Range("test.q", 39, 5, 13)

func TestCoerceNumericLattice(t *testing.T) {
	cases := []struct {
		a, b, wider types.AtomKind
	}{
		{types.Int32, types.Int32, types.Int32},
		{types.Int32, types.Int64, types.Int64},
		{types.Int32, types.Float64, types.Float64},
		{types.Int64, types.Int64, types.Int64},
		{types.Int64, types.Float64, types.Float64},
		{types.Float64, types.Float64, types.Float64},
	}
	for i, tc := range cases {
		ab, err := Coerce(TAtom(tc.a), TAtom(tc.b), loc)
		require.NoError(t, err, "[%v]", i)
		ba, err := Coerce(TAtom(tc.b), TAtom(tc.a), loc)
		require.NoError(t, err, "[%v]", i)
		assert.Equal(t, TAtom(tc.wider), ab, "[%v] %s, %s", i, tc.a, tc.b)
		assert.Equal(t, TAtom(tc.wider), ba, "[%v] %s, %s", i, tc.b, tc.a)
	}
}

func TestCoerceDistinctAtomsFail(t *testing.T) {
	cases := []struct {
		a, b types.AtomKind
	}{
		{types.Float64, types.Utf8},
		{types.Int32, types.Boolean},
		{types.Utf8, types.Boolean},
		{types.Int64, types.Utf8},
	}
	for i, tc := range cases {
		for _, pair := range [][2]types.Type{{TAtom(tc.a), TAtom(tc.b)}, {TAtom(tc.b), TAtom(tc.a)}} {
			_, err := Coerce(pair[0], pair[1], loc)
			var ce *diag.CoercionError
			require.ErrorAs(t, err, &ce, "[%v]", i)
			assert.Equal(t, pair, ce.Types, "[%v]", i)
			assert.Equal(t, loc, ce.Location, "[%v]", i)
			assert.Nil(t, ce.Cause, "[%v]", i)
		}
	}
}

func TestCoerceNull(t *testing.T) {
	for _, kind := range []types.AtomKind{types.Int32, types.Float64, types.Utf8, types.Boolean} {
		got, err := Coerce(TNull(), TAtom(kind), loc)
		require.NoError(t, err)
		assert.Equal(t, TAtom(kind), got)
		got, err = Coerce(TAtom(kind), TNull(), loc)
		require.NoError(t, err)
		assert.Equal(t, TAtom(kind), got)
	}
}

func TestAssignNarrowingFails(t *testing.T) {
	ctx := NewContext(0)

	got, err := ctx.Assign(TInt32(), TFloat64(), loc)
	require.NoError(t, err)
	assert.Equal(t, TFloat64(), got)

	_, err = ctx.Assign(TInt64(), TInt32(), loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [2]types.Type{TInt64(), TInt32()}, ce.Types)

	_, err = ctx.Assign(TList(TFloat64()), TList(TInt64()), loc)
	require.Error(t, err)
}

func TestCoerceLists(t *testing.T) {
	got, err := Coerce(TList(TInt32()), TList(TFloat64()), loc)
	require.NoError(t, err)
	assert.True(t, types.Equal(TList(TFloat64()), got))

	_, err = Coerce(TList(TUtf8()), TList(TFloat64()), loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [2]types.Type{TUtf8(), TFloat64()}, ce.Types)
}

func TestCoerceRecordWithScalarFails(t *testing.T) {
	table := TRecord(TField("id", TInt32()))
	_, err := Coerce(table, TInt64(), loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [2]types.Type{table, TInt64()}, ce.Types)
	assert.Nil(t, ce.Cause)

	_, err = Coerce(TInt64(), TList(table), loc)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [2]types.Type{TInt64(), TList(table)}, ce.Types)
}

func TestCoerceVariables(t *testing.T) {
	ctx := NewContext(10)
	for _, kind := range []types.VarKind{types.Generic, types.AsyncSlot, types.RowField} {
		tv := ctx.VarTracker.New("R", kind)
		got, err := ctx.Coerce(tv, TUtf8(), loc)
		require.NoError(t, err)
		assert.Equal(t, TUtf8(), got)
		assert.Equal(t, TUtf8(), ctx.Resolve(tv))

		// Once bound, the variable behaves like its binding:
		_, err = ctx.Coerce(TBool(), tv, loc)
		require.Error(t, err)
	}
}

func TestCoerceRecursiveTypeFails(t *testing.T) {
	ctx := NewContext(0)
	tv := ctx.VarTracker.New("T", types.Generic)
	_, err := ctx.Coerce(tv, TList(tv), loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	_, bound := ctx.Subst.Lookup(tv.ID)
	assert.False(t, bound)
}

func TestCoerceFunctions(t *testing.T) {
	ctx := NewContext(0)
	r := ctx.VarTracker.New("R", types.Generic)
	f := TFunc(r, TField("u", r))
	shape := TFunc(ctx.VarTracker.New("__Return", types.Generic), TField("_0", TInt64()))

	got, err := ctx.Coerce(f, shape, loc)
	require.NoError(t, err)
	assert.Equal(t, "λ {u Int64} -> Int64", types.TypeString(ctx.Resolve(got)))

	_, err = ctx.Coerce(f, TFunc(TInt64()), loc)
	require.Error(t, err)
}

func TestAssignFunctionParameters(t *testing.T) {
	wide := TFunc(TBool(), TField("x", TInt64()))
	narrow := TFunc(TBool(), TField("x", TInt32()))

	// A function accepting Int64 may stand in where Int32 arguments are passed:
	ctx := NewContext(0)
	got, err := ctx.Assign(wide, narrow, loc)
	require.NoError(t, err)
	assert.Equal(t, "λ {x Int64} -> Boolean", types.TypeString(got))

	_, err = ctx.Assign(narrow, wide, loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, [2]types.Type{narrow, wide}, ce.Types)

	// Return types are covariant:
	_, err = ctx.Assign(TFunc(TInt32()), TFunc(TInt64()), loc)
	require.NoError(t, err)
	_, err = ctx.Assign(TFunc(TInt64()), TFunc(TInt32()), loc)
	require.Error(t, err)
}

func TestCoerceRollsBackOnFailure(t *testing.T) {
	ctx := NewContext(0)
	tv := ctx.VarTracker.New("T", types.Generic)
	// The element binds T before the second field fails:
	lhs := TRecord(TField("a", tv), TField("b", TInt64()))
	rhs := TRecord(TField("a", TInt64()), TField("b", TUtf8()))

	_, err := ctx.Coerce(lhs, rhs, loc)
	var ce *diag.CoercionError
	require.ErrorAs(t, err, &ce)
	var wt *diag.WrongType
	require.True(t, errors.As(err, &wt))
	assert.Equal(t, "{a T, b Int64}", types.TypeString(wt.Lhs))

	_, bound := ctx.Subst.Lookup(tv.ID)
	assert.False(t, bound)
}
