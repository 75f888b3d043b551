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

package construct

import (
	"strconv"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/types"
)

// Types

// Primitive type: `Int64`, `Utf8`, etc
func TAtom(kind types.AtomKind) *types.Atom { return types.NewAtom(kind) }

func TInt32() *types.Atom   { return types.NewAtom(types.Int32) }
func TInt64() *types.Atom   { return types.NewAtom(types.Int64) }
func TFloat64() *types.Atom { return types.NewAtom(types.Float64) }
func TUtf8() *types.Atom    { return types.NewAtom(types.Utf8) }
func TBool() *types.Atom    { return types.NewAtom(types.Boolean) }
func TNull() *types.Atom    { return types.NewAtom(types.Null) }

// List type: `[Int64]`
func TList(elem types.Type) *types.List { return types.NewList(elem) }

// Nullable field: `name Utf8`
func TField(name string, t types.Type) types.Field {
	return types.Field{Name: name, Type: t, Nullable: true}
}

// Non-nullable field: `name Utf8 not null`
func TNotNull(name string, t types.Type) types.Field {
	return types.Field{Name: name, Type: t}
}

// Record type: `{a Int64, b Utf8}`
//
// TRecord panics if field names are not unique.
func TRecord(fields ...types.Field) *types.Record {
	r, err := types.NewRecord(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// Function type: `λ {a Int64} -> Int64`
func TFunc(ret types.Type, params ...types.Field) *types.Function {
	return types.NewFunction(TRecord(params...), ret)
}

// Quantified type-variable: `R`
func TGeneric(name string, id int) *types.Var { return types.NewVar(name, id, types.Generic) }

// Field placeholder: `?field?`
func TRowField(name string, id int) *types.Var { return types.NewVar(name, id, types.RowField) }

// Deferred placeholder: `?async_slot?`
func TAsync(name string, id int) *types.Var { return types.NewVar(name, id, types.AsyncSlot) }

// Probe record: `{name ?field?}`
func TProbe(name string, id int) *types.Record {
	return TRecord(TField(name, TRowField("field", id)))
}

// Type annotations

// Named annotation: `int64`, `R`
func Named(name string) *ast.NamedType { return &ast.NamedType{Name: name} }

// List annotation: `[int64]`
func ListOf(elem ast.TypeExpr) *ast.ListType { return &ast.ListType{Elem: elem} }

// Record annotation: `{a int64, b string}`
func RecordOf(fields ...ast.FieldType) *ast.RecordType { return &ast.RecordType{Fields: fields} }

// Field annotation; fields are nullable unless declared `not null`.
func FieldOf(name string, t ast.TypeExpr, nullable bool) ast.FieldType {
	return ast.FieldType{Name: name, Type: t, Nullable: nullable}
}

// Expressions:

// Integer literal: `1`
func Int(v int64) *ast.Literal {
	return &ast.Literal{Syntax: strconv.FormatInt(v, 10), Kind: types.Int64}
}

// Floating-point literal: `1.5`
func Float(v float64) *ast.Literal {
	return &ast.Literal{Syntax: strconv.FormatFloat(v, 'g', -1, 64), Kind: types.Float64}
}

// String literal: `"abc"`
func Str(v string) *ast.Literal {
	return &ast.Literal{Syntax: strconv.Quote(v), Kind: types.Utf8}
}

// Boolean literal: `true`
func Bool(v bool) *ast.Literal {
	return &ast.Literal{Syntax: strconv.FormatBool(v), Kind: types.Boolean}
}

// `null`
func Null() *ast.Literal {
	return &ast.Literal{Syntax: "null", Kind: types.Null}
}

// Reference: `users`
func Ref(name string) *ast.Ref { return &ast.Ref{Name: name} }

// Application: `f(x)`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: f, Args: args} }

// Selecting a field: `r.a`
func Select(record ast.Expr, field string) *ast.Select {
	return &ast.Select{Record: record, Field: field}
}

// Record construction: `{a: 1, b: 2}`
func RecordLit(fields ...ast.FieldValue) *ast.RecordLit { return &ast.RecordLit{Fields: fields} }

// Paired field name and value
func FieldValue(name string, value ast.Expr) ast.FieldValue {
	return ast.FieldValue{Name: name, Value: value}
}

// List construction: `[1, 2]`
func ListLit(elems ...ast.Expr) *ast.ListLit { return &ast.ListLit{Elems: elems} }

// Binary operation: `a + b`
func Binary(op ast.BinaryOp, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// At sets the source range of e and returns it.
func At[E ast.Expr](e E, loc ast.Location) E {
	switch e := any(e).(type) {
	case *ast.Literal:
		e.Loc = loc
	case *ast.Ref:
		e.Loc = loc
	case *ast.Call:
		e.Loc = loc
	case *ast.Select:
		e.Loc = loc
	case *ast.RecordLit:
		e.Loc = loc
	case *ast.ListLit:
		e.Loc = loc
	case *ast.Binary:
		e.Loc = loc
	case *ast.If:
		e.Loc = loc
	}
	return e
}

// Declarations:

// Parameter: `a: R`. An empty annotation leaves the parameter unannotated.
func Param(name, annotation string) ast.Param {
	p := ast.Param{Name: name}
	if annotation != "" {
		p.Type = Named(annotation)
	}
	return p
}

// Function declaration: `let f = fn(a, b) { body }`
func Func(name string, params []ast.Param, body ast.Expr) *ast.Decl {
	return &ast.Decl{Name: name, IsFunc: true, Params: params, Body: body}
}

// Function declaration with a return annotation: `let f = fn(u: R) -> R { u }`
func FuncReturning(name string, params []ast.Param, ret ast.TypeExpr, body ast.Expr) *ast.Decl {
	return &ast.Decl{Name: name, IsFunc: true, Params: params, Return: ret, Body: body}
}

// Value declaration: `let x = 1`
func Let(name string, body ast.Expr) *ast.Decl {
	return &ast.Decl{Name: name, Body: body}
}

// Type declaration: `type User = {id int32}`
func TypeDef(name string, t ast.TypeExpr) *ast.TypeDecl { return &ast.TypeDecl{Name: name, Type: t} }

// Extern declaration: `extern users [User]`
func Extern(name string, t ast.TypeExpr) *ast.Extern { return &ast.Extern{Name: name, Type: t} }

// Top-level query
func Query(e ast.Expr) *ast.Query { return &ast.Query{Expr: e, Loc: e.Location()} }

// Compilation unit
func Unit(decls []*ast.Decl, queries ...*ast.Query) *ast.Unit {
	return &ast.Unit{Decls: decls, Queries: queries}
}
