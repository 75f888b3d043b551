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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/qslang/qcheck/construct"

	"github.com/qslang/qcheck/types"
)

func TestTypeString(t *testing.T) {
	cases := []struct {
		t        types.Type
		expected string
	}{
		{TInt32(), "Int32"},
		{TList(TFloat64()), "[Float64]"},
		{TRecord(TField("b", TUtf8()), TNotNull("a", TInt64())), "{b Utf8, a Int64 not null}"},
		{types.EmptyRecord, "{}"},
		{TFunc(TGeneric("R", 0), TField("u", TGeneric("R", 0))), "λ {u R} -> R"},
		{TProbe("foo", 1), "{foo ?field?}"},
		{TList(TAsync("async_slot", 2)), "[?async_slot?]"},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.expected, types.TypeString(tc.t), "[%v]", i)
	}

	r := TGeneric("R", 3)
	s := types.NewScheme([]*types.Var{r}, TFunc(r, TField("u", r)))
	assert.Equal(t, `∀ "R" λ {u R} -> R`, s.String())
	assert.True(t, s.Binds(3))
	assert.False(t, s.IsMono())
	assert.Equal(t, "Int64", types.Mono(TInt64()).String())
}

func TestEqual(t *testing.T) {
	a := TRecord(TField("id", TInt32()), TNotNull("name", TUtf8()))
	b := TRecord(TNotNull("name", TUtf8()), TField("id", TInt32()))
	assert.True(t, types.Equal(a, b))
	assert.True(t, types.Equal(TList(a), TList(b)))

	assert.False(t, types.Equal(a, TRecord(TField("id", TInt32()), TField("name", TUtf8()))))
	assert.False(t, types.Equal(a, TRecord(TField("id", TInt64()), TNotNull("name", TUtf8()))))
	assert.False(t, types.Equal(a, TRecord(TField("id", TInt32()))))
	assert.False(t, types.Equal(TInt32(), TInt64()))
	assert.False(t, types.Equal(TList(TInt32()), TInt32()))

	assert.True(t, types.Equal(TGeneric("R", 1), TGeneric("renamed", 1)))
	assert.False(t, types.Equal(TGeneric("R", 1), TGeneric("R", 2)))
	assert.False(t, types.Equal(TGeneric("R", 1), TRowField("R", 1)))

	// Parameters are positional in display, but compared by name:
	f := TFunc(TBool(), TField("a", TInt32()), TField("b", TUtf8()))
	g := TFunc(TBool(), TField("b", TUtf8()), TField("a", TInt32()))
	assert.True(t, types.Equal(f, g))
	assert.False(t, types.Equal(f, TFunc(TInt64(), TField("a", TInt32()), TField("b", TUtf8()))))
}

func TestRecordFields(t *testing.T) {
	_, err := types.NewRecord(TField("a", TInt32()), TField("a", TUtf8()))
	assert.Error(t, err)

	r := TRecord(TField("c", TInt32()), TField("a", TUtf8()), TNotNull("b", TBool()))
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "c", r.Field(0).Name)

	f, ok := r.Lookup("b")
	require.True(t, ok)
	assert.False(t, f.Nullable)
	_, ok = r.Lookup("d")
	assert.False(t, ok)

	var names []string
	r.Range(func(f types.Field) bool {
		names = append(names, f.Name)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, "{a Utf8, b Boolean not null, c Int32}", types.TypeString(r.Canonical()))
	assert.Equal(t, "{c Int32, a Utf8, b Boolean not null}", types.TypeString(r))

	assert.True(t, r.SameNames(TRecord(TField("a", TNull()), TField("b", TNull()), TField("c", TNull()))))
	assert.False(t, r.SameNames(TRecord(TField("a", TNull()), TField("b", TNull()), TField("d", TNull()))))
	assert.False(t, r.SameNames(TRecord(TField("a", TNull()))))

	fields := r.Fields()
	fields[0].Name = "changed"
	assert.Equal(t, "c", r.Field(0).Name)
}

func TestFreeVars(t *testing.T) {
	r, a, ret := TGeneric("R", 1), TGeneric("A", 2), TGeneric("__Return", 3)
	slot := TAsync("async_slot", 4)
	f := TFunc(ret, TField("u", r), TField("a", TList(a)), TField("s", slot), TField("r", r))

	var names []string
	for _, tv := range types.FreeVars(f) {
		names = append(names, tv.Name)
	}
	assert.Equal(t, []string{"__Return", "R", "A", "async_slot"}, names)

	slots := types.FreeVars(f, types.AsyncSlot)
	require.Len(t, slots, 1)
	assert.Same(t, slot, slots[0])
	assert.Empty(t, types.FreeVars(TRecord(TField("id", TInt32()))))
	assert.False(t, TRecord(TField("id", TInt32())).IsGeneric())
	assert.True(t, f.IsGeneric())
}

func TestSubstitute(t *testing.T) {
	r := TGeneric("R", 1)
	fixed := TRecord(TField("id", TInt32()))
	f := TFunc(TList(r), TField("u", r), TField("fixed", fixed))

	sub := types.Substitute(f, func(tv *types.Var) (types.Type, bool) {
		if tv.ID == 1 {
			return TUtf8(), true
		}
		return nil, false
	})
	assert.Equal(t, "λ {u Utf8, fixed {id Int32}} -> [Utf8]", types.TypeString(sub))
	assert.Equal(t, "λ {u R, fixed {id Int32}} -> [R]", types.TypeString(f))

	sf := sub.(*types.Function)
	field, _ := sf.Params.Lookup("fixed")
	assert.Same(t, fixed, field.Type)

	none := types.Substitute(f, func(*types.Var) (types.Type, bool) { return nil, false })
	assert.Same(t, f, none)
}
