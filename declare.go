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
	"unicode"
	"unicode/utf8"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/diag"
	"github.com/qslang/qcheck/internal/typeutil"
	"github.com/qslang/qcheck/types"
)

var annotations = map[string]types.AtomKind{
	"int32":   types.Int32,
	"int64":   types.Int64,
	"float64": types.Float64,
	"number":  types.Float64,
	"string":  types.Utf8,
	"utf8":    types.Utf8,
	"bool":    types.Boolean,
	"boolean": types.Boolean,
	"null":    types.Null,
}

// checkDecl checks a declaration and generalizes its type. The second result reports whether the
// declaration must be checked again where it is used.
func (c *Checker) checkDecl(env *Environment, decl *ast.Decl) (*types.Scheme, bool, error) {
	cc := newCheckContext(env, c.logger)
	t, err := cc.declType(decl)
	env.reserve(cc.common.VarTracker.NextID)
	if err != nil {
		return nil, false, err
	}
	// Functions passed as values are forced where the declaration is used:
	deferred := cc.deferred || len(cc.pending) > 0
	return typeutil.Generalize(t, env.FreeVars()), deferred, nil
}

func (cc *checkContext) declType(decl *ast.Decl) (types.Type, error) {
	if !decl.IsFunc {
		t, err := cc.infer(decl.Body)
		if err != nil {
			return nil, err
		}
		if decl.Return != nil {
			if t, err = cc.annotated(t, decl); err != nil {
				return nil, err
			}
		}
		return cc.genericSlots(cc.common.Resolve(t)), nil
	}

	params, err := cc.bindParams(decl)
	if err != nil {
		return nil, err
	}
	body, err := cc.infer(decl.Body)
	if err != nil {
		return nil, err
	}
	var ret types.Type
	if decl.Return != nil {
		if ret, err = cc.annotated(body, decl); err != nil {
			return nil, err
		}
	} else {
		ret = cc.returnType(body)
	}
	return cc.genericSlots(cc.common.Resolve(types.NewFunction(params, ret))), nil
}

func (cc *checkContext) bindParams(decl *ast.Decl) (*types.Record, error) {
	fields := make([]types.Field, len(decl.Params))
	for i, p := range decl.Params {
		if _, exists := cc.scope[p.Name]; exists {
			return nil, &diag.DuplicateError{What: "parameter", Name: p.Name, Location: p.Loc}
		}
		var t types.Type
		if p.Type != nil {
			var err error
			if t, err = cc.annotation(p.Type); err != nil {
				return nil, err
			}
		} else {
			t = cc.newVar(p.Name, types.Generic)
		}
		cc.scope[p.Name] = t
		fields[i] = types.Field{Name: p.Name, Type: t, Nullable: true}
	}
	return types.NewRecord(fields...)
}

// annotated assigns the body's type to the declared return type.
func (cc *checkContext) annotated(body types.Type, decl *ast.Decl) (types.Type, error) {
	ret, err := cc.annotation(decl.Return)
	if err != nil {
		return nil, err
	}
	if _, err := cc.common.Assign(body, ret, decl.Body.Location()); err != nil {
		return nil, err
	}
	return ret, nil
}

// returnType is the body's type, or the implicit `__Return` when the body's type is only known
// once the declaration is forced.
func (cc *checkContext) returnType(body types.Type) types.Type {
	tv, ok := cc.common.IsUnbound(body)
	if !ok || tv.Kind != types.AsyncSlot {
		return body
	}
	ret := cc.newVar("__Return", types.Generic)
	_ = cc.common.Bind(tv, ret)
	return ret
}

// genericSlots replaces the deferred placeholders remaining in a declaration's type with generic
// type-variables, so each use of the declaration receives fresh ones.
func (cc *checkContext) genericSlots(t types.Type) types.Type {
	slots := types.FreeVars(t, types.AsyncSlot)
	if len(slots) == 0 {
		return t
	}
	for _, tv := range slots {
		_ = cc.common.Bind(tv, cc.newVar("__Slot", types.Generic))
	}
	return cc.common.Resolve(t)
}

// annotation resolves a type annotation. Capitalised names which do not name a declared type are
// generic parameters, shared by every annotation of the enclosing declaration.
func (cc *checkContext) annotation(te ast.TypeExpr) (types.Type, error) {
	return resolveType(cc.env, te, cc.generic)
}

func (cc *checkContext) generic(name string) (*types.Var, bool) {
	if !isGenericName(name) {
		return nil, false
	}
	if tv, ok := cc.generics[name]; ok {
		return tv, true
	}
	tv := cc.newVar(name, types.Generic)
	cc.generics[name] = tv
	return tv, true
}

func isGenericName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func duplicateFieldType(te *ast.RecordType) string {
	seen := make(map[string]bool, len(te.Fields))
	for _, f := range te.Fields {
		if seen[f.Name] {
			return f.Name
		}
		seen[f.Name] = true
	}
	return ""
}
