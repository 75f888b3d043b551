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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

func TestEnvironmentDefine(t *testing.T) {
	env := NewEnvironment()
	row, _ := types.NewRecord(types.Field{Name: "id", Type: types.NewAtom(types.Int32), Nullable: true})
	require.NoError(t, env.Define("users", types.Mono(types.NewList(row))))
	require.NoError(t, env.Define("answer", types.Mono(types.NewAtom(types.Int64))))

	err := env.Define("users", types.Mono(types.NewAtom(types.Utf8)))
	var de *diag.DuplicateError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "users", de.Name)

	s, ok := env.Lookup("users")
	require.True(t, ok)
	assert.Equal(t, "[{id Int32}]", s.String())
	_, ok = env.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"answer", "users"}, env.Names())
	assert.Equal(t, 0, env.NextVarID)
}

func TestEnvironmentReservesVariables(t *testing.T) {
	env := NewEnvironment()
	r := types.NewVar("R", 4, types.Generic)
	params, _ := types.NewRecord(types.Field{Name: "u", Type: r, Nullable: true})
	require.NoError(t, env.Define("identity", types.NewScheme([]*types.Var{r}, types.NewFunction(params, r))))
	assert.Equal(t, 5, env.NextVarID)
	assert.Equal(t, 0, env.FreeVars().Size())

	// Unquantified variables stay free:
	free := types.NewVar("T", 9, types.Generic)
	require.NoError(t, env.Define("pending", types.Mono(types.NewList(free))))
	assert.Equal(t, 10, env.NextVarID)
	assert.True(t, env.FreeVars().Contains(9))

	env.reserve(3)
	assert.Equal(t, 10, env.NextVarID)
}

func TestFailedEntryHasNoScheme(t *testing.T) {
	env := NewEnvironment()
	cause := &diag.UndefinedError{Name: "later", Later: true}
	require.NoError(t, env.define(&Entry{Name: "early", Err: cause}, ast.Unknown))

	_, ok := env.Lookup("early")
	assert.False(t, ok)
	entry, ok := env.entry("early")
	require.True(t, ok)
	assert.Same(t, cause, entry.Err)
}

func TestEnvironmentTypes(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.DefineType("Count", types.NewAtom(types.Int64)))
	require.NoError(t, env.Define("count", types.Mono(types.NewAtom(types.Int64))))

	typ, ok := env.LookupType("Count")
	require.True(t, ok)
	assert.Equal(t, "Int64", types.TypeString(typ))
	// Types and values share a namespace but are looked up separately:
	_, ok = env.Lookup("Count")
	assert.False(t, ok)
	_, ok = env.LookupType("count")
	assert.False(t, ok)

	var de *diag.DuplicateError
	require.ErrorAs(t, env.DefineType("count", types.NewAtom(types.Utf8)), &de)
	assert.Equal(t, []string{"Count", "count"}, env.Names())
}
