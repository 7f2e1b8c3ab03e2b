// Package path finds routes across a map for creatures with
// differing ideas of what counts as walkable ground.
package path

import (
	"container/heap"

	"github.com/lixenwraith/yarrl/core"
	"github.com/lixenwraith/yarrl/world"
)

type node struct {
	loc    core.Loc
	parent core.Loc
	g      int
}

type queueItem struct {
	loc core.Loc
	f   int
}

type openQueue []queueItem

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x any)         { *q = append(*q, x.(queueItem)) }
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func unwind(nodes map[core.Loc]node, start, end core.Loc) []core.Loc {
	var rev []core.Loc
	curr := end
	for curr != start {
		rev = append(rev, curr)
		curr = nodes[curr].parent
	}
	rev = append(rev, start)

	path := make([]core.Loc, len(rev))
	for i, sq := range rev {
		path[len(rev)-1-i] = sq
	}
	return path
}

// FindPath runs A* from start to end over the squares whose kind is in
// passable. The returned path includes the starting square; an empty
// slice means no route exists (or the goal itself is impassable).
func FindPath(m world.Map, startR, startC, endR, endC int, passable world.KindSet) []core.Loc {
	if !passable[m.At(endR, endC).Kind] {
		return nil
	}

	start := core.Loc{Row: startR, Col: startC}
	end := core.Loc{Row: endR, Col: endC}

	nodes := map[core.Loc]node{
		start: {loc: start, parent: start},
	}
	open := &openQueue{{loc: start}}
	heap.Init(open)
	visited := map[core.Loc]bool{}

	for open.Len() > 0 {
		curr := heap.Pop(open).(queueItem)
		if curr.loc == end {
			return unwind(nodes, start, end)
		}
		if visited[curr.loc] {
			continue
		}
		visited[curr.loc] = true

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				nr, nc := curr.loc.Row+dr, curr.loc.Col+dc
				if !m.InBounds(nr, nc) {
					continue
				}
				if !passable[m.At(nr, nc).Kind] {
					continue
				}

				next := core.Loc{Row: nr, Col: nc}
				if visited[next] {
					continue
				}

				g := nodes[curr.loc].g + 1
				f := g + core.Manhattan(nr, nc, endR, endC)

				if prev, ok := nodes[next]; !ok || g < prev.g {
					nodes[next] = node{loc: next, parent: curr.loc, g: g}
					heap.Push(open, queueItem{loc: next, f: f})
				}
			}
		}
	}

	return nil
}
