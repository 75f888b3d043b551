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

import (
	"github.com/qslang/qcheck/types"
)

// Expr is the base for all expressions.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Source range of the expression.
	Location() Location
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Ref)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*RecordLit)(nil)
	_ Expr = (*ListLit)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*If)(nil)
)

// Literal value: `1`, `1.5`, `"abc"`, `true`, `null`
type Literal struct {
	// Syntax is the source text of the literal.
	Syntax string
	Kind   types.AtomKind
	Loc    Location
}

// Returns the syntax of e.
func (e *Literal) ExprName() string   { return e.Syntax }
func (e *Literal) Location() Location { return e.Loc }

// Reference to a parameter, declaration or external source: `users`
type Ref struct {
	Name string
	Loc  Location
}

// "Ref"
func (e *Ref) ExprName() string   { return "Ref" }
func (e *Ref) Location() Location { return e.Loc }

// Application: `f(x, y)`
//
// Arguments bind to parameters positionally.
type Call struct {
	Func Expr
	Args []Expr
	Loc  Location
}

// "Call"
func (e *Call) ExprName() string   { return "Call" }
func (e *Call) Location() Location { return e.Loc }

// Selecting a field: `r.a`
type Select struct {
	Record Expr
	Field  string
	Loc    Location
}

// "Select"
func (e *Select) ExprName() string   { return "Select" }
func (e *Select) Location() Location { return e.Loc }

// Record construction: `{a: 1, b: "x"}`
type RecordLit struct {
	Fields []FieldValue
	Loc    Location
}

// Paired field name and value
type FieldValue struct {
	Name  string
	Value Expr
}

// "RecordLit"
func (e *RecordLit) ExprName() string   { return "RecordLit" }
func (e *RecordLit) Location() Location { return e.Loc }

// List construction: `[1, 2, 3]`
type ListLit struct {
	Elems []Expr
	Loc   Location
}

// "ListLit"
func (e *ListLit) ExprName() string   { return "ListLit" }
func (e *ListLit) Location() Location { return e.Loc }

// Binary operator
type BinaryOp string

const (
	OpAdd    BinaryOp = "+"
	OpSub    BinaryOp = "-"
	OpMul    BinaryOp = "*"
	OpDiv    BinaryOp = "/"
	OpEq     BinaryOp = "="
	OpNe     BinaryOp = "!="
	OpLt     BinaryOp = "<"
	OpLe     BinaryOp = "<="
	OpGt     BinaryOp = ">"
	OpGe     BinaryOp = ">="
	OpConcat BinaryOp = "||"
	OpAnd    BinaryOp = "and"
	OpOr     BinaryOp = "or"
)

func (op BinaryOp) IsArithmetic() bool {
	return op == OpAdd || op == OpSub || op == OpMul || op == OpDiv
}

func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

func (op BinaryOp) IsLogical() bool { return op == OpAnd || op == OpOr }

// Binary operation: `a + b`, `a = b`, `a || b`
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Loc   Location
}

// "Binary"
func (e *Binary) ExprName() string   { return "Binary" }
func (e *Binary) Location() Location { return e.Loc }

// Conditional: `if c then a else b`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
	Loc  Location
}

// "If"
func (e *If) ExprName() string   { return "If" }
func (e *If) Location() Location { return e.Loc }
