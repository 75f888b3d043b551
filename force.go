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

// forceCall checks the body of a deferred function declaration again, with its parameters bound to
// the (instantiated, argument-bound) parameter types of the call. Failures are reported as
// *diag.RuntimeError at the call's range.
func (cc *checkContext) forceCall(entry *Entry, inst *types.Function, loc ast.Location) (types.Type, error) {
	fc := cc.fork()
	for i, p := range entry.Decl.Params {
		fc.scope[p.Name] = inst.Params.Field(i).Type
	}
	return cc.force(fc, entry, inst.Return, loc)
}

// forceValue checks the body of a deferred value declaration again.
func (cc *checkContext) forceValue(entry *Entry, inst types.Type, loc ast.Location) (types.Type, error) {
	return cc.force(cc.fork(), entry, inst, loc)
}

func (cc *checkContext) force(fc *checkContext, entry *Entry, result types.Type, loc ast.Location) (types.Type, error) {
	body := entry.Decl.Body
	t, err := fc.infer(body)
	if err == nil {
		_, err = cc.common.Coerce(t, result, body.Location())
	}
	if err != nil {
		cc.logger.Debug("forced declaration failed", "name", entry.Name, "location", loc.String(), "err", err)
		return nil, diag.Runtime(err, loc)
	}
	// Still deferred when the arguments are themselves only known later:
	if fc.deferred {
		cc.deferred = true
	}
	cc.pending = append(cc.pending, fc.pending...)
	cc.logger.Debug("forced declaration", "name", entry.Name, "type", types.TypeString(cc.common.Resolve(result)))
	return result, nil
}

// forcePending forces the deferred functions which were referenced without being called directly.
// Forcing one may reference others, which are forced in turn.
func (cc *checkContext) forcePending() error {
	for len(cc.pending) > 0 {
		p := cc.pending[0]
		cc.pending = cc.pending[1:]
		if _, err := cc.forceCall(p.entry, p.fn, p.loc); err != nil {
			return err
		}
	}
	return nil
}
