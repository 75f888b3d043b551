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

// Scheme is a universally-quantified type: `∀ "R" λ {u R} -> R`
//
// Quantifiers are generic type-variables bound by the scheme; they are replaced with fresh
// type-variables each time the scheme is instantiated.
type Scheme struct {
	Quantifiers []*Var
	Body        Type
}

// Create a scheme which quantifies vars within body.
func NewScheme(vars []*Var, body Type) *Scheme {
	return &Scheme{Quantifiers: vars, Body: body}
}

// Create a scheme without quantifiers.
func Mono(body Type) *Scheme { return &Scheme{Body: body} }

// IsMono reports whether s has no quantifiers.
func (s *Scheme) IsMono() bool { return len(s.Quantifiers) == 0 }

// Binds reports whether s quantifies the type-variable with the given ID.
func (s *Scheme) Binds(id int) bool {
	for _, tv := range s.Quantifiers {
		if tv.ID == id {
			return true
		}
	}
	return false
}

func (s *Scheme) String() string { return SchemeString(s) }
