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
	"strings"
)

// ExprString renders e in source syntax: `f(u.id + 1, "x")`
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Literal:
		sb.WriteString(et.Syntax)

	case *Ref:
		sb.WriteString(et.Name)

	case *Call:
		exprString(sb, true, et.Func)
		sb.WriteByte('(')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, arg)
		}
		sb.WriteByte(')')

	case *Select:
		exprString(sb, true, et.Record)
		sb.WriteByte('.')
		sb.WriteString(et.Field)

	case *RecordLit:
		sb.WriteByte('{')
		for i, field := range et.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name)
			sb.WriteString(": ")
			exprString(sb, false, field.Value)
		}
		sb.WriteByte('}')

	case *ListLit:
		sb.WriteByte('[')
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, elem)
		}
		sb.WriteByte(']')

	case *Binary:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(string(et.Op))
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")

	default:
		sb.WriteString("<" + e.ExprName() + ">")
	}
}

// TypeExprString renders a type annotation: `{a int64, b [string] not null}`
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, t)
	return sb.String()
}

func typeExprString(sb *strings.Builder, t TypeExpr) {
	switch t := t.(type) {
	case *NamedType:
		sb.WriteString(t.Name)
	case *ListType:
		sb.WriteByte('[')
		typeExprString(sb, t.Elem)
		sb.WriteByte(']')
	case *RecordType:
		sb.WriteByte('{')
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteByte(' ')
			typeExprString(sb, f.Type)
			if !f.Nullable {
				sb.WriteString(" not null")
			}
		}
		sb.WriteByte('}')
	case nil:
		sb.WriteString("<nil>")
	}
}
