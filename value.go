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
	"github.com/qslang/qcheck/types"
)

// Value is a materialized query result: nil, int32, int64, float64, string, bool, []Value or
// map[string]Value.
type Value = interface{}

// TypedValue pairs a value with its static type. The type is free of type-variables.
type TypedValue struct {
	Type  types.Type
	Value Value
}

// typeOf returns the type observed for a value. Lists are typed by their first element and records
// by their keys; the second result is false for unsupported Go types.
func typeOf(v Value) (types.Type, bool) {
	switch v := v.(type) {
	case nil:
		return types.NewAtom(types.Null), true
	case int32:
		return types.NewAtom(types.Int32), true
	case int64:
		return types.NewAtom(types.Int64), true
	case float64:
		return types.NewAtom(types.Float64), true
	case string:
		return types.NewAtom(types.Utf8), true
	case bool:
		return types.NewAtom(types.Boolean), true
	case []Value:
		if len(v) == 0 {
			return types.NewList(types.NewAtom(types.Null)), true
		}
		elem, ok := typeOf(v[0])
		if !ok {
			return nil, false
		}
		return types.NewList(elem), true
	case map[string]Value:
		fields := make([]types.Field, 0, len(v))
		for name, fv := range v {
			t, ok := typeOf(fv)
			if !ok {
				return nil, false
			}
			fields = append(fields, types.Field{Name: name, Type: t, Nullable: fv == nil})
		}
		r, _ := types.NewRecord(fields...)
		return r.Canonical(), true
	}
	return nil, false
}
