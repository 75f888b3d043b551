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
	"errors"
	"strings"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/slices"
)

// Named member of a record: `name Int64` or `name Int64 not null`
type Field struct {
	Name     string
	Type     Type
	Nullable bool
}

var emptyIndex = immutable.NewSortedMap(nil)

// EmptyRecord is the record without fields: `{}`
var EmptyRecord = &Record{index: emptyIndex}

// Record type: `{id Int32, name Utf8}`
//
// Field names are unique. The declaration order of fields is kept for display and for
// positional binding of function parameters; equality and diagnostics do not depend on it.
type Record struct {
	fields  []Field
	index   *immutable.SortedMap // field name -> position in fields
	generic bool
}

// Create a record type. Field names must be unique.
func NewRecord(fields ...Field) (*Record, error) {
	if len(fields) == 0 {
		return EmptyRecord, nil
	}
	b := immutable.NewSortedMapBuilder(emptyIndex)
	r := &Record{fields: make([]Field, len(fields))}
	for i, f := range fields {
		if _, exists := b.Get(f.Name); exists {
			return nil, errors.New("Duplicate field " + f.Name)
		}
		b.Set(f.Name, i)
		r.fields[i] = f
		if f.Type.IsGeneric() {
			r.generic = true
		}
	}
	r.index = b.Map()
	return r, nil
}

func (r *Record) Len() int { return len(r.fields) }

// Field returns the i-th field in declaration order.
func (r *Record) Field(i int) Field { return r.fields[i] }

// Fields returns a copy of the fields in declaration order.
func (r *Record) Fields() []Field {
	fields := make([]Field, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Lookup a field by name.
func (r *Record) Lookup(name string) (Field, bool) {
	i, ok := r.index.Get(name)
	if !ok {
		return Field{}, false
	}
	return r.fields[i.(int)], true
}

// Range visits fields in name order.
func (r *Record) Range(f func(Field) bool) {
	iter := r.index.Iterator()
	for !iter.Done() {
		_, i := iter.Next()
		if !f(r.fields[i.(int)]) {
			return
		}
	}
}

// SameNames reports whether r and other declare the same set of field names.
func (r *Record) SameNames(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	a, b := r.index.Iterator(), other.index.Iterator()
	for !a.Done() && !b.Done() {
		ka, _ := a.Next()
		kb, _ := b.Next()
		if ka.(string) != kb.(string) {
			return false
		}
	}
	return a.Done() && b.Done()
}

// Canonical returns r with fields sorted by name. The canonical order is used for diagnostics
// and display only.
func (r *Record) Canonical() *Record {
	if r.Len() < 2 {
		return r
	}
	fields := r.Fields()
	slices.SortFunc(fields, func(a, b Field) int { return strings.Compare(a.Name, b.Name) })
	sorted, _ := NewRecord(fields...)
	return sorted
}

// MapFields returns a record with each field replaced by f. Names are kept, so the result
// cannot contain duplicates.
func (r *Record) MapFields(f func(Field) Field) *Record {
	if r.Len() == 0 {
		return r
	}
	fields := make([]Field, len(r.fields))
	changed := false
	for i, field := range r.fields {
		fields[i] = f(field)
		if fields[i] != field {
			changed = true
		}
	}
	if !changed {
		return r
	}
	next, _ := NewRecord(fields...)
	return next
}
