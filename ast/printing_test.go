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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/qslang/qcheck/construct"

	"github.com/qslang/qcheck/ast"
)

func TestExprString(t *testing.T) {
	cases := []struct {
		expr     ast.Expr
		expected string
	}{
		{Int(1), "1"},
		{Float(2.5), "2.5"},
		{Str("x"), `"x"`},
		{Null(), "null"},
		{Call(Ref("f"), Select(Ref("u"), "id"), Str("x")), `f(u.id, "x")`},
		{Binary(ast.OpAdd, Select(Ref("u"), "id"), Int(1)), "u.id + 1"},
		{Binary(ast.OpMul, Binary(ast.OpAdd, Int(1), Int(2)), Int(3)), "(1 + 2) * 3"},
		{Select(Call(Ref("identity"), Ref("users")), "name"), "identity(users).name"},
		{RecordLit(FieldValue("a", Int(1)), FieldValue("b", ListLit(Bool(true)))), "{a: 1, b: [true]}"},
		{If(Bool(true), Int(1), Null()), "if true then 1 else null"},
		{Call(Ref("f"), If(Ref("c"), Int(1), Int(2))), "f(if c then 1 else 2)"},
		{Binary(ast.OpConcat, If(Ref("c"), Str("a"), Str("b")), Str("!")), `(if c then "a" else "b") || "!"`},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, ast.ExprString(tc.expr), "[%v]", i)
	}
}

func TestTypeExprString(t *testing.T) {
	te := RecordOf(
		FieldOf("a", Named("int64"), true),
		FieldOf("b", ListOf(Named("R")), false),
	)
	assert.Equal(t, "{a int64, b [R] not null}", ast.TypeExprString(te))
}

func TestRefs(t *testing.T) {
	expr := Call(Ref("f"), Select(Ref("u"), "id"), RecordLit(FieldValue("x", If(Ref("c"), Ref("a"), ListLit(Ref("b"))))))
	var names []string
	for _, ref := range ast.Refs(expr) {
		names = append(names, ref.Name)
	}
	assert.Equal(t, []string{"f", "u", "c", "a", "b"}, names)

	var kinds []string
	ast.WalkExpr(Binary(ast.OpAdd, Int(1), Ref("x")), func(e ast.Expr) { kinds = append(kinds, e.ExprName()) })
	assert.Equal(t, []string{"Binary", "1", "Ref"}, kinds)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "<unknown>", ast.Unknown.String())
	assert.Equal(t, "q.sql:39:5-13", ast.Range("q.sql", 39, 5, 13).String())
	assert.Equal(t, "q.sql:4:2", ast.Range("q.sql", 4, 2, 2).String())
	multi := ast.Location{File: "q.sql", Start: ast.Position{Line: 1, Column: 3}, End: ast.Position{Line: 2, Column: 7}}
	assert.Equal(t, "q.sql:1:3-2:7", multi.String())
	assert.True(t, At(Int(1), ast.Unknown).Location().IsUnknown())
}
