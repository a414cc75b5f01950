// Package pathfind implements A* search over any grid that can report its
// opacity, its exits and the distance between two cells.
package pathfind

import (
	"slices"

	"github.com/zyedidia/generic/heap"
)

// MaxSteps bounds the number of nodes a single search may expand.
const MaxSteps = 65536

// Exit is one step available from a cell.
type Exit struct {
	Idx  int
	Cost float64
}

// BaseMap is the capability a map provides to the search.
type BaseMap interface {
	IsOpaque(idx int) bool
	Exits(idx int) []Exit
	PathingDistance(a, b int) float64
}

// Path is the result of a search. Steps runs from the start cell to the
// end cell inclusive when Success is true.
type Path struct {
	Steps   []int
	Success bool
}

type node struct {
	idx int
	f   float64
	g   float64
}

// AStar searches for the cheapest route from start to end.
// Opaque cells are never entered. A failed search returns a Path with
// Success false; that is a normal outcome, not an error.
func AStar(start, end int, m BaseMap) Path {
	if start == end {
		return Path{Steps: []int{start}, Success: true}
	}

	open := heap.New[node](func(a, b node) bool { return a.f < b.f })
	open.Push(node{idx: start, f: m.PathingDistance(start, end)})

	best := map[int]float64{start: 0}
	parent := make(map[int]int)
	closed := make(map[int]bool)

	for steps := 0; open.Size() > 0 && steps < MaxSteps; steps++ {
		q, _ := open.Pop()
		if q.idx == end {
			return Path{Steps: walkBack(parent, start, end), Success: true}
		}
		if closed[q.idx] {
			continue
		}
		closed[q.idx] = true

		for _, e := range m.Exits(q.idx) {
			if closed[e.Idx] || m.IsOpaque(e.Idx) {
				continue
			}
			g := q.g + e.Cost
			if prev, seen := best[e.Idx]; seen && prev <= g {
				continue
			}
			best[e.Idx] = g
			parent[e.Idx] = q.idx
			open.Push(node{idx: e.Idx, g: g, f: g + m.PathingDistance(e.Idx, end)})
		}
	}
	return Path{}
}

func walkBack(parent map[int]int, start, end int) []int {
	steps := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	slices.Reverse(steps)
	return steps
}
