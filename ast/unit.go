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

package ast

// TypeExpr is a type annotation.
type TypeExpr interface {
	TypeExprName() string
	Location() Location
}

var (
	_ TypeExpr = (*NamedType)(nil)
	_ TypeExpr = (*ListType)(nil)
	_ TypeExpr = (*RecordType)(nil)
)

// Named type: `int64`, `string`, a declared type such as `User`, or a generic parameter such as `R`
type NamedType struct {
	Name string
	Loc  Location
}

func (t *NamedType) TypeExprName() string { return t.Name }
func (t *NamedType) Location() Location   { return t.Loc }

// List type: `[T]`
type ListType struct {
	Elem TypeExpr
	Loc  Location
}

func (t *ListType) TypeExprName() string { return "ListType" }
func (t *ListType) Location() Location   { return t.Loc }

// Record type: `{a int64, b string not null}`
type RecordType struct {
	Fields []FieldType
	Loc    Location
}

type FieldType struct {
	Name     string
	Type     TypeExpr
	Nullable bool
}

func (t *RecordType) TypeExprName() string { return "RecordType" }
func (t *RecordType) Location() Location   { return t.Loc }

// Function parameter, with an optional type annotation.
type Param struct {
	Name string
	Type TypeExpr
	Loc  Location
}

// Declaration: `let name = expr` or `let name = fn(a: R, b) -> T { body }`
type Decl struct {
	Name string
	// IsFunc distinguishes `fn() { ... }` from a value declaration.
	IsFunc bool
	Params []Param
	// Optional return-type annotation.
	Return TypeExpr
	Body   Expr
	Loc    Location
}

// Top-level query: an expression whose value is computed and returned.
type Query struct {
	Expr Expr
	Loc  Location
}

// Type declaration: `type User = {id int32 not null, name string}`
type TypeDecl struct {
	Name string
	Type TypeExpr
	Loc  Location
}

// Extern declaration: `extern users [User]`. Externs are supplied when the unit is executed.
type Extern struct {
	Name string
	Type TypeExpr
	Loc  Location
}

// Unit is a compilation unit. Type declarations are checked first, then externs, then
// declarations in source order; queries come last.
type Unit struct {
	File    string
	Types   []*TypeDecl
	Externs []*Extern
	Decls   []*Decl
	Queries []*Query
}
