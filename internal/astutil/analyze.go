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

package astutil

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/internal/util"
)

// Analysis of references between the declarations of a unit.
//
// Declarations may only reference earlier declarations. A reference to a later declaration is
// reported as a *diag.UndefinedError; declarations which reference themselves, directly or through
// other declarations, are reported as a *diag.RecursionError.
type Analysis struct {
	Graph *util.Graph // edges point from a declaration to the declarations it references
	Index map[string]int
	// Errs is indexed by declaration; nil for declarations without dependency errors.
	Errs []error
}

func Analyze(unit *ast.Unit) *Analysis {
	a := &Analysis{
		Graph: util.NewGraph(len(unit.Decls)),
		Index: make(map[string]int, len(unit.Decls)),
		Errs:  make([]error, len(unit.Decls)),
	}
	for i, decl := range unit.Decls {
		// Duplicates are reported by the checker:
		if _, exists := a.Index[decl.Name]; !exists {
			a.Index[decl.Name] = i
		}
	}
	for i, decl := range unit.Decls {
		a.analyzeDecl(i, decl)
	}
	for _, c := range a.Graph.SCC() {
		if !a.Graph.Cyclic(c) {
			continue
		}
		members := set.From(c)
		names := make([]string, 0, len(c))
		for i, decl := range unit.Decls {
			if members.Contains(i) {
				names = append(names, decl.Name)
			}
		}
		for _, i := range c {
			a.Errs[i] = &diag.RecursionError{Names: names, Location: unit.Decls[i].Loc}
		}
	}
	return a
}

func (a *Analysis) analyzeDecl(i int, decl *ast.Decl) {
	params := set.New[string](len(decl.Params))
	for _, p := range decl.Params {
		params.Insert(p.Name)
	}
	for _, ref := range ast.Refs(decl.Body) {
		if params.Contains(ref.Name) {
			continue
		}
		j, ok := a.Index[ref.Name]
		if !ok {
			continue
		}
		a.Graph.AddEdge(i, j)
		if j > i && a.Errs[i] == nil {
			a.Errs[i] = &diag.UndefinedError{Name: ref.Name, Location: ref.Loc, Later: true}
		}
	}
}
