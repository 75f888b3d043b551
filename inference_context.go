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
	"log/slog"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/internal/typeutil"
	"github.com/qslang/qcheck/types"
)

// checkContext holds the state for checking a single declaration or query.
//
// A context cannot be used concurrently. Forcing a deferred declaration forks the context: the
// fork shares bindings and type-variables with its parent, but has its own parameter scope.
type checkContext struct {
	common *typeutil.Context
	env    *Environment
	logger *slog.Logger

	scope    map[string]types.Type // parameters of the enclosing declaration
	generics map[string]*types.Var // generic annotations of the enclosing declaration
	// Set when a field was selected from a value whose type is not yet known.
	deferred bool
	// Deferred functions referenced other than by a direct call, forced once their parameters
	// are bound.
	pending []pendingForce
}

type pendingForce struct {
	entry *Entry
	fn    *types.Function
	loc   ast.Location
}

func newCheckContext(env *Environment, logger *slog.Logger) *checkContext {
	return &checkContext{
		common:   typeutil.NewContext(env.NextVarID),
		env:      env,
		logger:   logger,
		scope:    make(map[string]types.Type),
		generics: make(map[string]*types.Var),
	}
}

func (cc *checkContext) fork() *checkContext {
	return &checkContext{
		common:   cc.common,
		env:      cc.env,
		logger:   cc.logger,
		scope:    make(map[string]types.Type),
		generics: make(map[string]*types.Var),
	}
}

func (cc *checkContext) newVar(name string, kind types.VarKind) *types.Var {
	return cc.common.VarTracker.New(name, kind)
}
