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

package astutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/qslang/qcheck/construct"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
)

func TestAnalyze(t *testing.T) {
	unit := Unit([]*ast.Decl{
		Let("base", Int(1)),
		Func("inc", []ast.Param{Param("base", "")}, Binary(ast.OpAdd, Ref("base"), Int(1))),
		Let("early", Call(Ref("late"), Ref("base"))),
		Func("late", []ast.Param{Param("x", "")}, Ref("x")),
		Func("ping", []ast.Param{Param("x", "")}, Call(Ref("pong"), Ref("x"))),
		Func("pong", []ast.Param{Param("x", "")}, Call(Ref("ping"), Ref("x"))),
		Func("self", nil, Call(Ref("self"))),
		Let("uses", Call(Ref("inc"), Ref("base"), Ref("undeclared"))),
	})
	a := Analyze(unit)

	// Parameters shadow declarations:
	assert.False(t, a.Graph.HasEdge(1, 0))
	assert.True(t, a.Graph.HasEdge(2, 3))
	assert.True(t, a.Graph.HasEdge(7, 1))
	assert.Equal(t, 3, a.Index["late"])

	for _, i := range []int{0, 1, 3, 7} {
		assert.NoError(t, a.Errs[i], "[%v]", i)
	}

	var ue *diag.UndefinedError
	require.ErrorAs(t, a.Errs[2], &ue)
	assert.Equal(t, "late", ue.Name)
	assert.True(t, ue.Later)

	var re *diag.RecursionError
	for _, i := range []int{4, 5} {
		require.ErrorAs(t, a.Errs[i], &re, "[%v]", i)
		assert.Equal(t, []string{"ping", "pong"}, re.Names)
	}
	require.ErrorAs(t, a.Errs[6], &re)
	assert.Equal(t, []string{"self"}, re.Names)
}
