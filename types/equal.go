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

// Equal reports whether a and b are structurally equal. Record field order is insignificant;
// each field's name, type and nullability must match. Type-variables are equal when they
// share an ID and kind.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Atom:
		b, ok := b.(*Atom)
		return ok && a.Kind == b.Kind
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case *Record:
		b, ok := b.(*Record)
		return ok && equalRecords(a, b)
	case *Function:
		b, ok := b.(*Function)
		return ok && equalRecords(a.Params, b.Params) && Equal(a.Return, b.Return)
	case *Var:
		b, ok := b.(*Var)
		return ok && a.ID == b.ID && a.Kind == b.Kind
	}
	return false
}

func equalRecords(a, b *Record) bool {
	if a == b {
		return true
	}
	if !a.SameNames(b) {
		return false
	}
	equal := true
	a.Range(func(fa Field) bool {
		fb, _ := b.Lookup(fa.Name)
		equal = fa.Nullable == fb.Nullable && Equal(fa.Type, fb.Type)
		return equal
	})
	return equal
}
