package availability

import (
	"reflect"
	"testing"
)

func slotStrings(g *Grid) []string {
	var out []string
	for _, s := range g.BookableSlots() {
		out = append(out, s.String())
	}
	return out
}

func TestGridMarkFreePairing(t *testing.T) {
	g := NewGrid()
	g.MarkFree(Interval{ParseTimeOfDay("09:00"), ParseTimeOfDay("10:00")})

	want := []string{"09:00", "09:30"}
	if got := slotStrings(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("BookableSlots() = %v, want %v", got, want)
	}
}

func TestGridDegenerateIntervalsAreNoOps(t *testing.T) {
	g := NewGrid()
	g.MarkFree(Interval{600, 600})
	g.MarkFree(Interval{600, 540})
	if got := g.BookableSlots(); len(got) != 0 {
		t.Fatalf("degenerate MarkFree changed the grid: %v", got)
	}

	g.MarkFree(Interval{540, 600})
	before := g.BookableSlots()
	g.MarkBusy(Interval{570, 540})
	if got := g.BookableSlots(); !reflect.DeepEqual(got, before) {
		t.Fatalf("degenerate MarkBusy changed the grid: %v != %v", got, before)
	}
}

func TestGridOddAlignedWindowNotOffered(t *testing.T) {
	// Free 09:15-09:45 is a full 30 minutes, but it straddles the pair
	// boundary, so no slot is offered.
	g := NewGrid()
	g.MarkFree(Interval{ParseTimeOfDay("09:15"), ParseTimeOfDay("09:45")})
	if got := g.BookableSlots(); len(got) != 0 {
		t.Fatalf("odd-aligned window produced slots: %v", got)
	}
}

func TestGridPartialPairCleared(t *testing.T) {
	g := NewGrid()
	g.MarkFree(Interval{ParseTimeOfDay("09:00"), ParseTimeOfDay("10:00")})
	g.MarkBusy(Interval{ParseTimeOfDay("09:15"), ParseTimeOfDay("09:45")})
	// 09:15 kills the first pair, 09:30 kills the second.
	if got := g.BookableSlots(); len(got) != 0 {
		t.Fatalf("expected no slots after mid-window busy, got %v", got)
	}
}

func TestGridSlotsAlignedAndBounded(t *testing.T) {
	g := NewGrid()
	g.MarkFree(Interval{0, 24 * 60})

	slots := g.BookableSlots()
	if len(slots) > 48 {
		t.Fatalf("got %d slots, want at most 48", len(slots))
	}
	prev := TimeOfDay(-1)
	for _, s := range slots {
		if int(s)%SlotMinutes != 0 {
			t.Errorf("slot %v not aligned to %d minutes", s, SlotMinutes)
		}
		if s <= prev {
			t.Errorf("slots not strictly increasing: %v after %v", s, prev)
		}
		prev = s
	}
}

func TestGridBusySourceOrderIndependent(t *testing.T) {
	window := Interval{ParseTimeOfDay("08:00"), ParseTimeOfDay("12:00")}
	legacy := Interval{ParseTimeOfDay("08:30"), ParseTimeOfDay("09:00")}
	appt := Interval{ParseTimeOfDay("10:00"), ParseTimeOfDay("10:30")}

	a := NewGrid()
	a.MarkFree(window)
	a.MarkBusy(legacy)
	a.MarkBusy(appt)

	b := NewGrid()
	b.MarkFree(window)
	b.MarkBusy(appt)
	b.MarkBusy(legacy)

	if !reflect.DeepEqual(a.BookableSlots(), b.BookableSlots()) {
		t.Fatalf("busy subtraction is order-dependent: %v != %v", a.BookableSlots(), b.BookableSlots())
	}
}

func TestGridClipsOutOfRangeIntervals(t *testing.T) {
	g := NewGrid()
	g.MarkFree(Interval{ParseTimeOfDay("23:30"), TimeOfDay(25 * 60)})
	want := []string{"23:30"}
	if got := slotStrings(g); !reflect.DeepEqual(got, want) {
		t.Fatalf("BookableSlots() = %v, want %v", got, want)
	}
}
