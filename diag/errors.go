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

// Package diag defines the diagnostics reported while checking and executing a unit.
package diag

import (
	"strings"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/types"
)

// Diagnostic is implemented by every error reported by the checker.
type Diagnostic interface {
	error
	// Name of the diagnostic variant, e.g. "CoercionError".
	Kind() string
}

var (
	_ Diagnostic = (*CoercionError)(nil)
	_ Diagnostic = (*WrongType)(nil)
	_ Diagnostic = (*RuntimeError)(nil)
	_ Diagnostic = (*TypeMismatch)(nil)
	_ Diagnostic = (*UnresolvedTypeError)(nil)
	_ Diagnostic = (*DuplicateError)(nil)
	_ Diagnostic = (*UndefinedError)(nil)
	_ Diagnostic = (*RecursionError)(nil)
	_ Diagnostic = (*WrongKindError)(nil)
)

// CoercionError reports two types which cannot be treated as a common type.
//
// When the pair failed because two records disagree structurally, Cause holds the record shapes.
type CoercionError struct {
	Types    [2]types.Type
	Location ast.Location
	Cause    *WrongType
}

func (e *CoercionError) Kind() string { return "CoercionError" }

func (e *CoercionError) Error() string {
	var sb strings.Builder
	sb.WriteString("Cannot coerce ")
	sb.WriteString(types.TypeString(e.Types[0]))
	sb.WriteString(" and ")
	sb.WriteString(types.TypeString(e.Types[1]))
	writeLocation(&sb, e.Location)
	return sb.String()
}

func (e *CoercionError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

// WrongType reports two records with different shapes. Both records are in canonical order.
type WrongType struct {
	Lhs *types.Record
	Rhs *types.Record
}

func (e *WrongType) Kind() string { return "WrongType" }

func (e *WrongType) Error() string {
	return "Expected " + types.TypeString(e.Lhs) + ", found " + types.TypeString(e.Rhs)
}

// RuntimeError reports a failure found while forcing a deferred declaration. Location is the range
// of the expression which forced it.
type RuntimeError struct {
	Source   error
	Location ast.Location
}

func (e *RuntimeError) Kind() string { return "RuntimeError" }

func (e *RuntimeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Source.Error())
	writeLocation(&sb, e.Location)
	return sb.String()
}

func (e *RuntimeError) Unwrap() error { return e.Source }

// Wrap source as a RuntimeError at loc. The innermost source is kept when source is already a
// RuntimeError; the new location replaces the old one.
func Runtime(source error, loc ast.Location) *RuntimeError {
	if rt, ok := source.(*RuntimeError); ok {
		source = rt.Source
	}
	return &RuntimeError{Source: source, Location: loc}
}

// TypeMismatch reports a value whose runtime type disagrees with its static type.
type TypeMismatch struct {
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatch) Kind() string { return "TypeMismatch" }

func (e *TypeMismatch) Error() string {
	return "Type mismatch: expected " + types.TypeString(e.Expected) + ", found " + types.TypeString(e.Actual)
}

// UnresolvedTypeError reports a type-variable which survived to execution.
type UnresolvedTypeError struct {
	VariableName string
}

func (e *UnresolvedTypeError) Kind() string { return "UnresolvedTypeError" }

func (e *UnresolvedTypeError) Error() string {
	return "Unknown type cannot exist at runtime (?" + e.VariableName + "?)"
}

// DuplicateError reports a name declared twice. What describes the name, e.g. "field".
type DuplicateError struct {
	What     string
	Name     string
	Location ast.Location
}

func (e *DuplicateError) Kind() string { return "DuplicateError" }

func (e *DuplicateError) Error() string {
	var sb strings.Builder
	sb.WriteString("Duplicate ")
	sb.WriteString(e.What)
	sb.WriteString(" ")
	sb.WriteString(e.Name)
	writeLocation(&sb, e.Location)
	return sb.String()
}

// UndefinedError reports a reference to a name without a visible definition.
type UndefinedError struct {
	Name     string
	Location ast.Location
	// Set when the name is declared, but only after the reference.
	Later bool
}

func (e *UndefinedError) Kind() string { return "UndefinedError" }

func (e *UndefinedError) Error() string {
	var sb strings.Builder
	if e.Later {
		sb.WriteString("Declared after use: ")
	} else {
		sb.WriteString("No such entry: ")
	}
	sb.WriteString(e.Name)
	writeLocation(&sb, e.Location)
	return sb.String()
}

// RecursionError reports a group of declarations which reference each other (or a declaration
// which references itself).
type RecursionError struct {
	Names    []string
	Location ast.Location
}

func (e *RecursionError) Kind() string { return "RecursionError" }

func (e *RecursionError) Error() string {
	var sb strings.Builder
	sb.WriteString("Recursive declarations: ")
	sb.WriteString(strings.Join(e.Names, ", "))
	writeLocation(&sb, e.Location)
	return sb.String()
}

// WrongKindError reports a type used as a value, or a value used as a type.
type WrongKindError struct {
	Name string
	// "type" or "value"
	Expected string
	Location ast.Location
}

func (e *WrongKindError) Kind() string { return "WrongKindError" }

func (e *WrongKindError) Error() string {
	var sb strings.Builder
	sb.WriteString("Expected ")
	sb.WriteString(e.Name)
	sb.WriteString(" to be a ")
	sb.WriteString(e.Expected)
	writeLocation(&sb, e.Location)
	return sb.String()
}

func writeLocation(sb *strings.Builder, loc ast.Location) {
	if loc.IsUnknown() {
		return
	}
	sb.WriteString(" (")
	sb.WriteString(loc.String())
	sb.WriteByte(')')
}
