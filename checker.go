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
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/exp/slices"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/internal/astutil"
	"github.com/qslang/qcheck/types"
)

// Config for a Checker. The zero value is usable.
type Config struct {
	// Logger receives debug records for checked declarations and queries. By default, records
	// are discarded.
	Logger *slog.Logger
	// Parallelism bounds the number of queries checked or executed at once. By default, queries
	// are spread over GOMAXPROCS workers; 1 checks queries sequentially.
	Parallelism int
}

// Checker checks compilation units. A checker may be used concurrently.
type Checker struct {
	logger      *slog.Logger
	parallelism int
}

func NewChecker(cfg Config) *Checker {
	c := &Checker{logger: cfg.Logger, parallelism: cfg.Parallelism}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.parallelism <= 0 {
		c.parallelism = runtime.GOMAXPROCS(0)
	}
	return c
}

// DeclResult is the outcome of checking a declaration.
type DeclResult struct {
	Name     string
	Scheme   *types.Scheme
	Deferred bool
	Err      error
}

// QueryResult is the outcome of checking a query. Type is free of type-variables when Err is nil.
type QueryResult struct {
	Query *ast.Query
	Type  types.Type
	Err   error
}

// Program is a checked compilation unit.
type Program struct {
	Env     *Environment
	Types   []TypeResult
	Externs []DeclResult
	Decls   []DeclResult
	Queries []QueryResult

	checker *Checker
}

// Failed returns the results of queries which failed to check.
func (p *Program) Failed() []QueryResult {
	var failed []QueryResult
	for _, q := range p.Queries {
		if q.Err != nil {
			failed = append(failed, q)
		}
	}
	return failed
}

// CheckUnit checks the type declarations, externs and declarations of unit in order, then each of
// its queries independently. externs supplies the types of external sources (such as tables)
// referenced by the unit.
//
// Failures of individual declarations and queries are reported in the returned Program. The
// returned error is reserved for failures of the whole unit: a name declared twice fails with a
// *diag.DuplicateError.
func (c *Checker) CheckUnit(unit *ast.Unit, externs map[string]types.Type) (*Program, error) {
	if unit == nil {
		return nil, errors.New("Empty unit")
	}
	env := NewEnvironment()
	names := make([]string, 0, len(externs))
	for name := range externs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := env.Define(name, types.Mono(externs[name])); err != nil {
			return nil, err
		}
	}

	prog := &Program{Env: env, Decls: make([]DeclResult, 0, len(unit.Decls)), checker: c}
	if err := c.defineTypes(env, unit, prog); err != nil {
		return nil, err
	}
	if err := c.defineExterns(env, unit, prog); err != nil {
		return nil, err
	}

	analysis := astutil.Analyze(unit)
	for i, decl := range unit.Decls {
		if _, exists := env.entry(decl.Name); exists {
			err := &diag.DuplicateError{What: "declaration", Name: decl.Name, Location: decl.Loc}
			c.logger.Debug("duplicate declaration", "name", decl.Name, "location", decl.Loc.String())
			return nil, err
		}
		entry := &Entry{Name: decl.Name, Decl: decl}
		if err := analysis.Errs[i]; err != nil {
			entry.Err = err
		} else {
			entry.Scheme, entry.Deferred, entry.Err = c.checkDecl(env, decl)
		}
		switch {
		case entry.Err != nil:
			c.logger.Debug("declaration failed", "name", decl.Name, "err", entry.Err)
		case entry.Deferred:
			c.logger.Debug("declaration deferred", "name", decl.Name, "scheme", entry.Scheme.String())
		default:
			c.logger.Debug("declaration checked", "name", decl.Name, "scheme", entry.Scheme.String())
		}
		if err := env.define(entry, decl.Loc); err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, DeclResult{
			Name:     decl.Name,
			Scheme:   entry.Scheme,
			Deferred: entry.Deferred,
			Err:      entry.Err,
		})
	}

	// The environment is read-only from here on:
	prog.Queries = make([]QueryResult, len(unit.Queries))
	forEach(len(unit.Queries), c.parallelism, func(i int) {
		q := unit.Queries[i]
		t, err := c.checkQuery(env, q)
		prog.Queries[i] = QueryResult{Query: q, Type: t, Err: err}
	})
	return prog, nil
}

func (c *Checker) checkQuery(env *Environment, q *ast.Query) (types.Type, error) {
	cc := newCheckContext(env, c.logger)
	t, err := cc.infer(q.Expr)
	if err == nil {
		err = cc.forcePending()
	}
	if err != nil {
		// Failures found while forcing declarations are reported at the query:
		if rt, ok := err.(*diag.RuntimeError); ok {
			err = diag.Runtime(rt, q.Loc)
		}
		c.logger.Debug("query failed", "query", ast.ExprString(q.Expr), "err", err)
		return nil, err
	}
	t = cc.common.Resolve(t)
	if err := CheckResolved(t); err != nil {
		c.logger.Debug("query unresolved", "query", ast.ExprString(q.Expr), "type", types.TypeString(t))
		return nil, err
	}
	c.logger.Debug("query checked", "query", ast.ExprString(q.Expr), "type", types.TypeString(t))
	return t, nil
}
