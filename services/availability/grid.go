package availability

// Grid resolution and bookable-unit size. Slots are only offered where
// SlotQuanta consecutive quanta are free, aligned to SlotMinutes boundaries;
// free windows starting on an odd quantum are intentionally not offered.
const (
	QuantumMinutes = 15
	QuantaPerDay   = 24 * 60 / QuantumMinutes
	SlotQuanta     = 2
	SlotMinutes    = SlotQuanta * QuantumMinutes
)

// Grid is the per-day boolean availability grid. A true quantum is free.
type Grid struct {
	free [QuantaPerDay]bool
}

// NewGrid returns a grid with every quantum marked not free.
func NewGrid() *Grid {
	return &Grid{}
}

// MarkFree marks every quantum touched by iv as free.
func (g *Grid) MarkFree(iv Interval) {
	g.set(iv, true)
}

// MarkBusy clears every quantum touched by iv. Subtraction is idempotent
// and commutative, so busy sources may apply in any order.
func (g *Grid) MarkBusy(iv Interval) {
	g.set(iv, false)
}

func (g *Grid) set(iv Interval, free bool) {
	for m := int(iv.Start); m < int(iv.End); m += QuantumMinutes {
		q := m / QuantumMinutes
		if q >= 0 && q < QuantaPerDay {
			g.free[q] = free
		}
	}
}

// BookableSlots returns the start times of fully free bookable units,
// scanning non-overlapping groups of SlotQuanta quanta from midnight.
// The result is strictly increasing.
func (g *Grid) BookableSlots() []TimeOfDay {
	var slots []TimeOfDay
	for q := 0; q+SlotQuanta <= QuantaPerDay; q += SlotQuanta {
		open := true
		for i := 0; i < SlotQuanta; i++ {
			if !g.free[q+i] {
				open = false
				break
			}
		}
		if open {
			slots = append(slots, TimeOfDay(q*QuantumMinutes))
		}
	}
	return slots
}
