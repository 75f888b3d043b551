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

package ast

import (
	"strconv"
	"strings"
)

// Position within a source file. Lines and columns are 1-based.
type Position struct {
	Line   int
	Column int
}

// Location is the source range of a syntax node.
type Location struct {
	File  string
	Start Position
	End   Position
}

// Unknown is the location of nodes without a source range.
var Unknown = Location{}

func (l Location) IsUnknown() bool { return l == Unknown }

// String renders the range as `file:line:col-col` (or `file:line:col-line:col` when the range
// spans several lines).
func (l Location) String() string {
	if l.IsUnknown() {
		return "<unknown>"
	}
	var sb strings.Builder
	if l.File != "" {
		sb.WriteString(l.File)
		sb.WriteByte(':')
	}
	sb.WriteString(strconv.Itoa(l.Start.Line))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(l.Start.Column))
	if l.End != (Position{}) && l.End != l.Start {
		sb.WriteByte('-')
		if l.End.Line != l.Start.Line {
			sb.WriteString(strconv.Itoa(l.End.Line))
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(l.End.Column))
	}
	return sb.String()
}

// Range creates a location on a single line.
func Range(file string, line, startCol, endCol int) Location {
	return Location{File: file, Start: Position{line, startCol}, End: Position{line, endCol}}
}
