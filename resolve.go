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

package qcheck

import (
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

// CheckResolved fails with a *diag.UnresolvedTypeError when t contains a type-variable. A function's
// return type is searched before its parameters.
func CheckResolved(t types.Type) error {
	if !t.IsGeneric() {
		return nil
	}
	if vars := types.FreeVars(t); len(vars) > 0 {
		return &diag.UnresolvedTypeError{VariableName: vars[0].Name}
	}
	return nil
}

// CheckValue fails with a *diag.TypeMismatch when v does not have the type t.
//
// Atoms must match exactly; a nil value is only accepted by a record field marked nullable, or
// where t is Null.
func CheckValue(t types.Type, v Value) error {
	return checkValue(t, v, false)
}

func checkValue(t types.Type, v Value, nullable bool) error {
	if v == nil {
		if nullable || types.IsNull(t) {
			return nil
		}
		return &diag.TypeMismatch{Expected: t, Actual: types.NewAtom(types.Null)}
	}

	switch t := t.(type) {
	case *types.Atom:
		actual, _ := typeOf(v)
		if a, ok := actual.(*types.Atom); ok && a.Kind == t.Kind {
			return nil
		}
		return mismatch(t, v)

	case *types.List:
		elems, ok := v.([]Value)
		if !ok {
			return mismatch(t, v)
		}
		for _, elem := range elems {
			if err := checkValue(t.Elem, elem, false); err != nil {
				return err
			}
		}
		return nil

	case *types.Record:
		m, ok := v.(map[string]Value)
		if !ok || len(m) > t.Len() {
			return mismatch(t, v)
		}
		var err error
		t.Range(func(f types.Field) bool {
			err = checkValue(f.Type, m[f.Name], f.Nullable)
			return err == nil
		})
		if err != nil {
			return err
		}
		for name := range m {
			if _, ok := t.Lookup(name); !ok {
				return mismatch(t, v)
			}
		}
		return nil

	case *types.Var:
		return &diag.UnresolvedTypeError{VariableName: t.Name}
	}
	return mismatch(t, v)
}

func mismatch(expected types.Type, v Value) *diag.TypeMismatch {
	actual, _ := typeOf(v)
	return &diag.TypeMismatch{Expected: expected, Actual: actual}
}
