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

package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/types"
)

func TestMessages(t *testing.T) {
	loc := ast.Range("q.sql", 39, 5, 13)
	row, _ := types.NewRecord(types.Field{Name: "id", Type: types.NewAtom(types.Int32), Nullable: true})
	cases := []struct {
		err      Diagnostic
		kind     string
		expected string
	}{
		{
			&CoercionError{Types: [2]types.Type{types.NewAtom(types.Float64), types.NewAtom(types.Utf8)}, Location: loc},
			"CoercionError", "Cannot coerce Float64 and Utf8 (q.sql:39:5-13)",
		},
		{&WrongType{Lhs: row, Rhs: types.EmptyRecord}, "WrongType", "Expected {id Int32}, found {}"},
		{&TypeMismatch{Expected: types.NewAtom(types.Float64), Actual: types.NewAtom(types.Null)},
			"TypeMismatch", "Type mismatch: expected Float64, found Null"},
		{&UnresolvedTypeError{VariableName: "__Return"}, "UnresolvedTypeError", "Unknown type cannot exist at runtime (?__Return?)"},
		{&DuplicateError{What: "field", Name: "a"}, "DuplicateError", "Duplicate field a"},
		{&UndefinedError{Name: "x", Location: loc}, "UndefinedError", "No such entry: x (q.sql:39:5-13)"},
		{&UndefinedError{Name: "x", Later: true}, "UndefinedError", "Declared after use: x"},
		{&RecursionError{Names: []string{"ping", "pong"}}, "RecursionError", "Recursive declarations: ping, pong"},
		{&WrongKindError{Name: "users", Expected: "type", Location: loc}, "WrongKindError", "Expected users to be a type (q.sql:39:5-13)"},
		{&WrongKindError{Name: "User", Expected: "value"}, "WrongKindError", "Expected User to be a value"},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.kind, tc.err.Kind(), "[%v]", i)
		assert.Equal(t, tc.expected, tc.err.Error(), "[%v]", i)
	}
}

func TestRuntimeKeepsInnermostSource(t *testing.T) {
	inner := ast.Range("q.sql", 39, 5, 13)
	outer := ast.Range("q.sql", 44, 1, 27)
	source := &CoercionError{Types: [2]types.Type{types.NewAtom(types.Float64), types.NewAtom(types.Utf8)}, Location: inner}

	rt := Runtime(Runtime(source, ast.Range("q.sql", 40, 1, 9)), outer)
	assert.Same(t, source, rt.Source)
	assert.Equal(t, outer, rt.Location)
	assert.Equal(t, "Cannot coerce Float64 and Utf8 (q.sql:39:5-13) (q.sql:44:1-27)", rt.Error())

	var ce *CoercionError
	require.True(t, errors.As(rt, &ce))
	assert.Same(t, source, ce)
}

func TestCoercionErrorUnwrapsShapes(t *testing.T) {
	row, _ := types.NewRecord(types.Field{Name: "id", Type: types.NewAtom(types.Int32), Nullable: true})
	wt := &WrongType{Lhs: row, Rhs: types.EmptyRecord}
	ce := &CoercionError{Types: [2]types.Type{row, types.EmptyRecord}, Cause: wt}

	var found *WrongType
	require.ErrorAs(t, Runtime(ce, ast.Unknown), &found)
	assert.Same(t, wt, found)

	assert.Nil(t, (&CoercionError{}).Unwrap())
}
