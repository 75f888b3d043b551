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

package qcheck_test

import (
	"testing"

	. "github.com/qslang/qcheck"
	. "github.com/qslang/qcheck/construct"

	"github.com/qslang/qcheck/ast"
)

func BenchmarkGenericCalls(b *testing.B) {
	unit := Unit(
		[]*ast.Decl{identity()},
		Query(RecordLit(
			FieldValue("a", Call(Ref("identity"), Int(1))),
			FieldValue("b", Call(Ref("identity"), Str("x"))),
			FieldValue("c", Call(Ref("identity"), Ref("users"))),
		)),
	)
	checker := NewChecker(Config{Parallelism: 1})

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		prog, err := checker.CheckUnit(unit, externs)
		if err != nil || prog.Queries[0].Err != nil {
			b.Fatal(err, prog.Queries[0].Err)
		}
	}
}

func BenchmarkForcedCalls(b *testing.B) {
	unit := Unit(
		[]*ast.Decl{
			Func("pick", []ast.Param{Param("a", "")}, Select(Ref("a"), "name")),
			Func("label", []ast.Param{Param("r", "")}, Binary(ast.OpConcat, Call(Ref("pick"), Ref("r")), Str("!"))),
		},
		Query(Call(Ref("label"), Ref("user"))),
		Query(Select(Ref("users"), "org_id")),
	)
	checker := NewChecker(Config{Parallelism: 1})

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		prog, err := checker.CheckUnit(unit, externs)
		if err != nil || len(prog.Failed()) > 0 {
			b.Fatal(err, prog.Failed())
		}
	}
}
