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

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qslang/qcheck/types"
)

func TestAtomForSQLType(t *testing.T) {
	cases := []struct {
		decl string
		kind types.AtomKind
		ok   bool
	}{
		{"INT", types.Int32, true},
		{"integer", types.Int32, true},
		{"SERIAL", types.Int32, true},
		{"BIGINT", types.Int64, true},
		{"unsigned big int", types.Int64, true},
		{"REAL", types.Float64, true},
		{"double precision", types.Float64, true},
		{"NUMERIC(10, 2)", types.Float64, true},
		{"TEXT", types.Utf8, true},
		{"VARCHAR(20)", types.Utf8, true},
		{"character varying", types.Utf8, true},
		{"NVARCHAR", types.Utf8, true},
		{"BOOLEAN", types.Boolean, true},
		{"bool", types.Boolean, true},
		{"BLOB", 0, false},
		{"", 0, false},
	}
	for i, tc := range cases {
		kind, ok := AtomForSQLType(tc.decl)
		assert.Equal(t, tc.ok, ok, "[%v] %s", i, tc.decl)
		if tc.ok {
			assert.Equal(t, tc.kind, kind, "[%v] %s", i, tc.decl)
		}
	}
}
