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
	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/types"
)

// resolveType resolves a type expression against the declared types of env. generic, when
// non-nil, supplies type-variables for names which are neither declared nor built in.
func resolveType(env *Environment, te ast.TypeExpr, generic func(string) (*types.Var, bool)) (types.Type, error) {
	switch te := te.(type) {
	case *ast.NamedType:
		if entry, ok := env.entry(te.Name); ok {
			if !entry.IsType {
				return nil, &diag.WrongKindError{Name: te.Name, Expected: "type", Location: te.Loc}
			}
			if entry.Err != nil {
				return nil, entry.Err
			}
			return entry.Type, nil
		}
		if kind, ok := annotations[te.Name]; ok {
			return types.NewAtom(kind), nil
		}
		if generic != nil {
			if tv, ok := generic(te.Name); ok {
				return tv, nil
			}
		}
		return nil, &diag.UndefinedError{Name: te.Name, Location: te.Loc}

	case *ast.ListType:
		elem, err := resolveType(env, te.Elem, generic)
		if err != nil {
			return nil, err
		}
		return types.NewList(elem), nil

	case *ast.RecordType:
		fields := make([]types.Field, len(te.Fields))
		for i, f := range te.Fields {
			t, err := resolveType(env, f.Type, generic)
			if err != nil {
				return nil, err
			}
			fields[i] = types.Field{Name: f.Name, Type: t, Nullable: f.Nullable}
		}
		r, err := types.NewRecord(fields...)
		if err != nil {
			return nil, &diag.DuplicateError{What: "field", Name: duplicateFieldType(te), Location: te.Loc}
		}
		return r, nil
	}
	return nil, &diag.UndefinedError{Name: "<nil>"}
}

// TypeResult is the outcome of checking a type declaration.
type TypeResult struct {
	Name string
	Type types.Type
	Err  error
}

// defineTypes declares the named types of unit in order. A type may only refer to types declared
// before it.
func (c *Checker) defineTypes(env *Environment, unit *ast.Unit, prog *Program) error {
	later := make(map[string]bool, len(unit.Types))
	for _, td := range unit.Types {
		later[td.Name] = true
	}
	for _, td := range unit.Types {
		if _, exists := env.entry(td.Name); exists {
			c.logger.Debug("duplicate type", "name", td.Name, "location", td.Loc.String())
			return &diag.DuplicateError{What: "type", Name: td.Name, Location: td.Loc}
		}
		delete(later, td.Name)
		t, err := resolveType(env, td.Type, nil)
		if ue, ok := err.(*diag.UndefinedError); ok {
			switch {
			case ue.Name == td.Name:
				err = &diag.RecursionError{Names: []string{td.Name}, Location: td.Loc}
			case later[ue.Name]:
				ue.Later = true
			}
		}
		if err != nil {
			c.logger.Debug("type failed", "name", td.Name, "err", err)
		} else {
			c.logger.Debug("type declared", "name", td.Name, "type", types.TypeString(t))
		}
		if err := env.define(&Entry{Name: td.Name, IsType: true, Type: t, Err: err}, td.Loc); err != nil {
			return err
		}
		prog.Types = append(prog.Types, TypeResult{Name: td.Name, Type: t, Err: err})
	}
	return nil
}

// defineExterns declares the externs of unit with monomorphic schemes.
func (c *Checker) defineExterns(env *Environment, unit *ast.Unit, prog *Program) error {
	for _, ex := range unit.Externs {
		if _, exists := env.entry(ex.Name); exists {
			c.logger.Debug("duplicate extern", "name", ex.Name, "location", ex.Loc.String())
			return &diag.DuplicateError{What: "extern", Name: ex.Name, Location: ex.Loc}
		}
		entry := &Entry{Name: ex.Name}
		if t, err := resolveType(env, ex.Type, nil); err != nil {
			entry.Err = err
		} else {
			entry.Scheme = types.Mono(t)
		}
		if err := env.define(entry, ex.Loc); err != nil {
			return err
		}
		prog.Externs = append(prog.Externs, DeclResult{Name: ex.Name, Scheme: entry.Scheme, Err: entry.Err})
	}
	return nil
}
