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

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type.
//
//	Int64
//	[{id Int32, name Utf8 not null}]
//	λ {u R} -> R
//	?async_slot?
func TypeString(t Type) string {
	p := newTypePrinter()
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme: `∀ "__Return", "R" λ {a R} -> __Return`
func SchemeString(s *Scheme) string {
	p := newTypePrinter()
	if len(s.Quantifiers) > 0 {
		p.sb.WriteString("∀ ")
		for i, tv := range s.Quantifiers {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(strconv.Quote(tv.Name))
		}
		p.sb.WriteByte(' ')
	}
	p.typeString(s.Body)
	str := p.sb.String()
	p.Release()
	return str
}

func (p *typePrinter) typeString(t Type) {
	switch t := t.(type) {
	case nil:
		p.sb.WriteString("<nil>")
	case *Atom:
		p.sb.WriteString(t.Kind.String())
	case *List:
		p.sb.WriteByte('[')
		p.typeString(t.Elem)
		p.sb.WriteByte(']')
	case *Record:
		p.fields(t.fields)
	case *Function:
		p.sb.WriteString("λ ")
		p.fields(t.Params.fields)
		p.sb.WriteString(" -> ")
		p.typeString(t.Return)
	case *Var:
		if t.Kind == Generic {
			p.sb.WriteString(t.Name)
		} else {
			p.sb.WriteString(t.Placeholder())
		}
	default:
		p.sb.WriteString(t.TypeName())
	}
}

func (p *typePrinter) fields(fields []Field) {
	p.sb.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(f.Name)
		p.sb.WriteByte(' ')
		p.typeString(f.Type)
		if !f.Nullable {
			p.sb.WriteString(" not null")
		}
	}
	p.sb.WriteByte('}')
}
