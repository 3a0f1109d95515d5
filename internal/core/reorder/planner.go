// Package reorder contains the pure logic for moving a job between order
// slots. Planning is side-effect free; the caller applies the resulting
// changes atomically.
package reorder

import (
	"errors"
	"fmt"
)

// ErrRankNotFound is returned when no slot occupies the requested fromOrder.
var ErrRankNotFound = errors.New("rank not found")

// Slot pairs a record id with its current order value.
type Slot struct {
	ID    string
	Order int
}

// Change assigns a new order value to one record.
type Change struct {
	ID    string
	Order int
}

// PlanMove computes the order changes that move the slot at fromOrder to
// toOrder while keeping every other slot's relative position.
//
// Moving down shifts the slots in (fromOrder, toOrder] up by one; moving up
// shifts the slots in [toOrder, fromOrder) down by one; the moved slot then
// takes toOrder. For a dense rank sequence the returned changes permute the
// existing order values: no value is created or lost, no duplicates appear.
// fromOrder == toOrder is a no-op.
func PlanMove(slots []Slot, fromOrder, toOrder int) ([]Change, error) {
	var moved *Slot
	for i := range slots {
		if slots[i].Order == fromOrder {
			moved = &slots[i]
			break
		}
	}
	if moved == nil {
		return nil, fmt.Errorf("no slot at order %d: %w", fromOrder, ErrRankNotFound)
	}

	if fromOrder == toOrder {
		return nil, nil
	}

	var changes []Change
	for _, s := range slots {
		if s.ID == moved.ID {
			continue
		}
		switch {
		case fromOrder < toOrder && s.Order > fromOrder && s.Order <= toOrder:
			changes = append(changes, Change{ID: s.ID, Order: s.Order - 1})
		case fromOrder > toOrder && s.Order >= toOrder && s.Order < fromOrder:
			changes = append(changes, Change{ID: s.ID, Order: s.Order + 1})
		}
	}

	changes = append(changes, Change{ID: moved.ID, Order: toOrder})
	return changes, nil
}
