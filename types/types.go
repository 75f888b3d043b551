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

package types

// Type is the base interface for all types.
type Type interface {
	TypeName() string
	// IsGeneric reports whether the type contains type-variables.
	IsGeneric() bool
}

func (t *Atom) TypeName() string     { return "Atom" }
func (t *List) TypeName() string     { return "List" }
func (t *Record) TypeName() string   { return "Record" }
func (t *Function) TypeName() string { return "Function" }
func (t *Var) TypeName() string      { return "Var" }

func (t *Atom) IsGeneric() bool     { return false }
func (t *List) IsGeneric() bool     { return t.Elem.IsGeneric() }
func (t *Record) IsGeneric() bool   { return t.generic }
func (t *Function) IsGeneric() bool { return t.Params.generic || t.Return.IsGeneric() }
func (t *Var) IsGeneric() bool      { return true }

// AtomKind enumerates the primitive types.
type AtomKind uint8

const (
	Int32 AtomKind = iota
	Int64
	Float64
	Utf8
	Boolean
	Null
)

var atomNames = [...]string{
	Int32:   "Int32",
	Int64:   "Int64",
	Float64: "Float64",
	Utf8:    "Utf8",
	Boolean: "Boolean",
	Null:    "Null",
}

func (k AtomKind) String() string {
	if int(k) < len(atomNames) {
		return atomNames[k]
	}
	return "Atom(?)"
}

// IsNumeric reports whether k belongs to the numeric widening lattice.
func (k AtomKind) IsNumeric() bool { return k <= Float64 }

// Rank orders numeric kinds from narrowest to widest. Non-numeric kinds have rank -1.
func (k AtomKind) Rank() int {
	if !k.IsNumeric() {
		return -1
	}
	return int(k)
}

// Primitive type: `Int64`, `Utf8`
type Atom struct {
	Kind AtomKind
}

var atoms = [...]*Atom{
	Int32:   {Int32},
	Int64:   {Int64},
	Float64: {Float64},
	Utf8:    {Utf8},
	Boolean: {Boolean},
	Null:    {Null},
}

// NewAtom returns the shared atom for kind.
func NewAtom(kind AtomKind) *Atom {
	if int(kind) < len(atoms) {
		return atoms[kind]
	}
	return &Atom{Kind: kind}
}

// IsNull reports whether t is the Null atom.
func IsNull(t Type) bool {
	a, ok := t.(*Atom)
	return ok && a.Kind == Null
}

// List type: `[Int64]`
type List struct {
	Elem Type
}

func NewList(elem Type) *List { return &List{Elem: elem} }

// Function type: `λ {a Int64} -> Int64`
//
// Parameters are a record; arguments bind to them positionally, in declaration order.
type Function struct {
	Params *Record
	Return Type
}

func NewFunction(params *Record, ret Type) *Function {
	if params == nil {
		params = EmptyRecord
	}
	return &Function{Params: params, Return: ret}
}

// Kind of a type-variable
type VarKind uint8

const (
	// Quantified type parameter of an enclosing scheme; substituted on instantiation.
	Generic VarKind = iota
	// Stands in for the type of a single named field of a partially known record.
	RowField
	// Stands in for a type determined only by deferred evaluation.
	AsyncSlot
)

func (k VarKind) String() string {
	switch k {
	case Generic:
		return "Generic"
	case RowField:
		return "RowField"
	case AsyncSlot:
		return "AsyncSlot"
	}
	return "VarKind(?)"
}

// Type-variable
//
// Variables are identified by ID; Name is only used for display. IDs are unique within a
// checking context (see typeutil.VarTracker).
type Var struct {
	Name string
	ID   int
	Kind VarKind
}

func NewVar(name string, id int, kind VarKind) *Var {
	return &Var{Name: name, ID: id, Kind: kind}
}

// Placeholder returns the rendering used for unresolved variables: `?name?`.
func (tv *Var) Placeholder() string { return "?" + tv.Name + "?" }
