package ordering

import (
	"sort"
)

// Orderable is implemented by every entity that carries a manual sibling
// sort key: projects within a parent, groups within a project and items
// within a project.
type Orderable interface {
	GetOrderIndex() int
	SetOrderIndex(int)
}

// Sort orders a sibling set by its current order indexes. The sort is
// stable so entities with duplicate indexes (which should not happen after a
// Renumber) keep their relative order.
func Sort[T Orderable](siblings []T) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return siblings[i].GetOrderIndex() < siblings[j].GetOrderIndex()
	})
}

// Renumber assigns dense, zero-based order indexes following the current
// slice order and returns the entities whose index actually changed.
func Renumber[T Orderable](siblings []T) []T {
	var changed []T
	for i, s := range siblings {
		if s.GetOrderIndex() != i {
			s.SetOrderIndex(i)
			changed = append(changed, s)
		}
	}
	return changed
}

// Move swaps the entity at index with its neighbour at index+delta and
// reports whether anything moved. Out-of-range positions and moves past
// either end are no-ops.
func Move[T Orderable](siblings []T, index, delta int) bool {
	other := index + delta
	if index < 0 || index >= len(siblings) || other < 0 || other >= len(siblings) {
		return false
	}
	a, b := siblings[index], siblings[other]
	ai, bi := a.GetOrderIndex(), b.GetOrderIndex()
	a.SetOrderIndex(bi)
	b.SetOrderIndex(ai)
	siblings[index], siblings[other] = siblings[other], siblings[index]
	return true
}

// Reposition removes the entity at from, reinserts it at to (clamped to the
// list bounds) and renumbers the whole sibling set densely. It returns the
// entities whose index changed. Drag-and-drop targets use these semantics.
func Reposition[T Orderable](siblings []T, from, to int) []T {
	if from < 0 || from >= len(siblings) {
		return nil
	}
	if to < 0 {
		to = 0
	}
	if to >= len(siblings) {
		to = len(siblings) - 1
	}
	moved := siblings[from]
	rest := append(append([]T{}, siblings[:from]...), siblings[from+1:]...)
	reordered := append(append(append([]T{}, rest[:to]...), moved), rest[to:]...)
	copy(siblings, reordered)
	return Renumber(siblings)
}
