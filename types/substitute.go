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

// Substitute replaces type-variables in t. For each variable, f returns the replacement and
// whether one exists. A new type is returned; subtrees without replacements are shared with t.
func Substitute(t Type, f func(*Var) (Type, bool)) Type {
	if !t.IsGeneric() {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if next, ok := f(t); ok {
			return next
		}
		return t

	case *List:
		elem := Substitute(t.Elem, f)
		if elem == t.Elem {
			return t
		}
		return &List{Elem: elem}

	case *Record:
		return t.MapFields(func(field Field) Field {
			field.Type = Substitute(field.Type, f)
			return field
		})

	case *Function:
		params := Substitute(t.Params, f).(*Record)
		ret := Substitute(t.Return, f)
		if params == t.Params && ret == t.Return {
			return t
		}
		return &Function{Params: params, Return: ret}
	}
	return t
}
