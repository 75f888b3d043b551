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

// qcheck provides type inference, generalization and coercion for a statically-typed query language.
//
// A unit of declarations and queries is checked in two phases. Declarations are checked in order
// and generalized into type-schemes within an append-only Environment. Queries are then checked
// independently: each instantiates the schemes it references with fresh type-variables, forces
// declarations whose types could only be determined at a call site, and must end with a type
// free of type-variables before it may be executed.
//
// Types are coerced rather than unified strictly:
//
//   * Numeric atoms widen along Int32 -> Int64 -> Float64
//   * Null coerces to any atom, marking record fields nullable
//   * Records match by field name; a single-field probe matches any record containing the field
//   * Type-variables bind to the other operand
//
// Links:
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// * Let-polymorphism (Wikipedia): https://en.wikipedia.org/wiki/Let-polymorphism
package qcheck
