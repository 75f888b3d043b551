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
	"context"

	"github.com/qslang/qcheck/ast"
	"github.com/qslang/qcheck/types"
)

// Executor computes the value of a checked query. t is the query's static type, free of
// type-variables.
type Executor interface {
	Execute(ctx context.Context, q *ast.Query, t types.Type) (Value, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, q *ast.Query, t types.Type) (Value, error)

func (f ExecutorFunc) Execute(ctx context.Context, q *ast.Query, t types.Type) (Value, error) {
	return f(ctx, q, t)
}

// Outcome is the result of a query: either a typed value or an error.
type Outcome struct {
	Query *ast.Query
	Value *TypedValue
	Err   error
}

// Execute runs each query which passed checking, and checks each produced value against the
// query's type. Queries are independent: a failed query does not prevent the others from running.
// Outcomes are returned in query order.
func (p *Program) Execute(ctx context.Context, exec Executor) []Outcome {
	outcomes := make([]Outcome, len(p.Queries))
	logger := p.checker.logger
	forEach(len(p.Queries), p.checker.parallelism, func(i int) {
		qr := p.Queries[i]
		out := &outcomes[i]
		out.Query = qr.Query
		if qr.Err != nil {
			out.Err = qr.Err
			return
		}
		if err := ctx.Err(); err != nil {
			out.Err = err
			return
		}
		v, err := exec.Execute(ctx, qr.Query, qr.Type)
		if err == nil {
			err = CheckValue(qr.Type, v)
		}
		if err != nil {
			logger.Debug("query execution failed", "query", ast.ExprString(qr.Query.Expr), "err", err)
			out.Err = err
			return
		}
		logger.Debug("query executed", "query", ast.ExprString(qr.Query.Expr), "type", types.TypeString(qr.Type))
		out.Value = &TypedValue{Type: qr.Type, Value: v}
	})
	return outcomes
}
