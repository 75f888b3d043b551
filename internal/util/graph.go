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

package util

import (
	set "github.com/hashicorp/go-set/v3"
)

// Graph is a directed graph over the vertices [0, n).
type Graph struct {
	edges [][]int
	sets  []*set.Set[int]
}

func NewGraph(numVerts int) *Graph {
	g := &Graph{edges: make([][]int, numVerts), sets: make([]*set.Set[int], numVerts)}
	for v := range g.sets {
		g.sets[v] = set.New[int](0)
	}
	return g
}

func (g *Graph) Len() int { return len(g.edges) }

// AddEdge adds an edge, ignoring duplicates. Successors keep their insertion order.
func (g *Graph) AddEdge(from, to int) {
	if g.sets[from].Insert(to) {
		g.edges[from] = append(g.edges[from], to)
	}
}

func (g *Graph) HasEdge(from, to int) bool { return g.sets[from].Contains(to) }

func (g *Graph) Successors(v int) []int { return g.edges[v] }

// Cyclic reports whether the component c contains a cycle: more than one vertex, or a vertex
// with an edge to itself.
func (g *Graph) Cyclic(c []int) bool {
	return len(c) > 1 || (len(c) == 1 && g.HasEdge(c[0], c[0]))
}

// SCC returns the strongly-connected components of g. A component is listed after every
// component reachable from it, so when edges point from users to their dependencies,
// dependencies come first.
func (g *Graph) SCC() [][]int {
	state := sccState{
		indexTable: make([]int, len(g.edges)),
		lowLink:    make([]int, len(g.edges)),
		onStack:    make([]bool, len(g.edges)),
	}
	for v := range g.edges {
		if state.indexTable[v] == 0 {
			g.tarjanSCC(&state, v)
		}
	}
	return state.sccs
}

type sccState struct {
	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack []int
	sccs  [][]int
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
func (g *Graph) tarjanSCC(state *sccState, v int) {
	state.index++
	state.indexTable[v] = state.index
	state.lowLink[v] = state.index
	state.stack = append(state.stack, v)
	state.onStack[v] = true

	for _, succ := range g.edges[v] {
		if state.indexTable[succ] == 0 {
			g.tarjanSCC(state, succ)
			state.lowLink[v] = min(state.lowLink[v], state.lowLink[succ])
		} else if state.onStack[succ] {
			state.lowLink[v] = min(state.lowLink[v], state.indexTable[succ])
		}
	}

	// v is the root of a component:
	if state.lowLink[v] == state.indexTable[v] {
		var (
			c    []int
			succ int
		)
		for {
			succ, state.stack = state.stack[len(state.stack)-1], state.stack[:len(state.stack)-1]
			state.onStack[succ] = false
			c = append(c, succ)
			if succ == v {
				break
			}
		}
		state.sccs = append(state.sccs, c)
	}
}
