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
	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

// Entry is the environment's record of a declared name.
type Entry struct {
	Name   string
	Scheme *types.Scheme
	// Decl is nil for external sources.
	Decl *ast.Decl
	// Deferred declarations are checked again each time a query forces them.
	Deferred bool
	// Err is the declaration-site diagnostic when checking the declaration failed.
	Err error

	// Set for type declarations, which have a Type instead of a Scheme.
	IsType bool
	Type   types.Type
}

var emptyEntries = immutable.NewSortedMap(nil)

// Environment maps declared names to their type-schemes.
//
// An environment is append-only: names are defined once, and a defined entry never changes.
// Once every declaration of a unit is defined, the environment may be read concurrently.
type Environment struct {
	// Next unused type-variable id
	NextVarID int

	entries *immutable.SortedMap // name -> *Entry
}

func NewEnvironment() *Environment {
	return &Environment{entries: emptyEntries}
}

// Define a scheme for name. Defining a name twice fails with a *diag.DuplicateError.
func (e *Environment) Define(name string, s *types.Scheme) error {
	return e.define(&Entry{Name: name, Scheme: s}, ast.Unknown)
}

// DefineType declares a named type. Type names share the namespace of values.
func (e *Environment) DefineType(name string, t types.Type) error {
	return e.define(&Entry{Name: name, IsType: true, Type: t}, ast.Unknown)
}

func (e *Environment) define(entry *Entry, loc ast.Location) error {
	if _, exists := e.entries.Get(entry.Name); exists {
		return &diag.DuplicateError{What: "declaration", Name: entry.Name, Location: loc}
	}
	if entry.Scheme != nil {
		for _, tv := range types.FreeVars(entry.Scheme.Body) {
			e.reserve(tv.ID + 1)
		}
	}
	e.entries = e.entries.Set(entry.Name, entry)
	return nil
}

// reserve ensures type-variables allocated after this call have IDs of at least next.
func (e *Environment) reserve(next int) {
	if next > e.NextVarID {
		e.NextVarID = next
	}
}

// Lookup the scheme declared for name. Callers should instantiate the scheme for each use.
func (e *Environment) Lookup(name string) (*types.Scheme, bool) {
	entry, ok := e.entry(name)
	if !ok || entry.Scheme == nil {
		return nil, false
	}
	return entry.Scheme, true
}

// LookupType returns the type declared for name.
func (e *Environment) LookupType(name string) (types.Type, bool) {
	entry, ok := e.entry(name)
	if !ok || !entry.IsType || entry.Type == nil {
		return nil, false
	}
	return entry.Type, true
}

func (e *Environment) entry(name string) (*Entry, bool) {
	v, ok := e.entries.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Entry), true
}

func (e *Environment) Len() int { return e.entries.Len() }

// Names returns the defined names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, e.entries.Len())
	iter := e.entries.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}

// FreeVars returns the IDs of type-variables which occur in the environment's schemes without
// being quantified by them. Such variables must not be generalized.
func (e *Environment) FreeVars() *set.Set[int] {
	free := set.New[int](0)
	iter := e.entries.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		s := v.(*Entry).Scheme
		if s == nil {
			continue
		}
		for _, tv := range types.FreeVars(s.Body) {
			if !s.Binds(tv.ID) {
				free.Insert(tv.ID)
			}
		}
	}
	return free
}
