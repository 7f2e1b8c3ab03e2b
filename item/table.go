package item

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/yarrl/core"
)

// Table tracks the piles of items lying on the ground. The newest item
// at a square sits on top of its pile.
type Table struct {
	Piles map[core.Loc][]Item `json:"piles"`
}

func NewTable() *Table {
	return &Table{Piles: map[core.Loc][]Item{}}
}

func (t *Table) Add(r, c int, i Item) {
	loc := core.Loc{Row: r, Col: c}
	t.Piles[loc] = append([]Item{i}, t.Piles[loc]...)
}

func (t *Table) RevealHidden(loc core.Loc) {
	pile := t.Piles[loc]
	for j := range pile {
		pile[j].Hidden = false
	}
}

func (t *Table) MacguffinAt(loc core.Loc) bool {
	for _, i := range t.Piles[loc] {
		if i.Type == MacGuffin {
			return true
		}
	}
	return false
}

func (t *Table) AnyHidden(loc core.Loc) bool {
	for _, i := range t.Piles[loc] {
		if i.Hidden {
			return true
		}
	}
	return false
}

// CountAt counts only the items a searcher could see.
func (t *Table) CountAt(r, c int) int {
	count := 0
	for _, i := range t.Piles[core.Loc{Row: r, Col: c}] {
		if !i.Hidden {
			count++
		}
	}
	return count
}

func (t *Table) PeekTop(r, c int) Item {
	return t.Piles[core.Loc{Row: r, Col: c}][0]
}

func (t *Table) TakeTop(r, c int) Item {
	loc := core.Loc{Row: r, Col: c}
	pile := t.Piles[loc]
	top := pile[0]
	if len(pile) == 1 {
		delete(t.Piles, loc)
	} else {
		t.Piles[loc] = pile[1:]
	}
	return top
}

// TakeMany pulls the items at the given pile indices.
func (t *Table) TakeMany(r, c int, picks map[int]bool) []Item {
	indices := make([]int, 0, len(picks))
	for j := range picks {
		indices = append(indices, j)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	loc := core.Loc{Row: r, Col: c}
	pile := t.Piles[loc]
	var items []Item
	for _, j := range indices {
		if j < 0 || j >= len(pile) {
			continue
		}
		items = append(items, pile[j])
		pile = append(pile[:j], pile[j+1:]...)
	}

	if len(pile) == 0 {
		delete(t.Piles, loc)
	} else {
		t.Piles[loc] = pile
	}
	return items
}

func (t *Table) Menu(r, c int) []string {
	pile := t.Piles[core.Loc{Row: r, Col: c}]
	menu := make([]string, 0, len(pile))
	for j, i := range pile {
		menu = append(menu, fmt.Sprintf("%c) %s", 'a'+byte(j), i.Name))
	}
	return menu
}
