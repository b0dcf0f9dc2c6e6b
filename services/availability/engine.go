package availability

import (
	"context"
	"sort"
	"time"

	appointmentRepo "clinic/database/repository/appointment"
	receptionRepo "clinic/database/repository/reception"
	scheduleRepo "clinic/database/repository/schedule"
	"clinic/models"
	"clinic/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultAvailabilityEngine reconciles the published doctor schedule with
// both busy sources (legacy receptions and first-party appointments) into
// per-day bookable slots.
type DefaultAvailabilityEngine struct {
	Schedule     scheduleRepo.ScheduleRepository
	Receptions   receptionRepo.ReceptionRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (e *DefaultAvailabilityEngine) ComputeAvailability(ctx context.Context, doctorID, dateFrom, dateTo string) (map[string][]string, error) {
	logger := utils.GetLogger()

	if doctorID == "" {
		return nil, NewInputError("doctor_id required")
	}
	for _, d := range []string{dateFrom, dateTo} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, NewInputError("invalid period, expected YYYY-MM-DD dates")
		}
	}

	identities, err := e.Schedule.ResolveIdentities(ctx, doctorID)
	if err != nil {
		return nil, &SourceError{Source: "schedule", Err: err}
	}
	if len(identities) == 0 {
		// A doctor with no published schedule simply has no open days.
		return map[string][]string{}, nil
	}

	// The three source fetches are independent and read-only; issue them
	// concurrently and combine only after all have completed.
	var (
		windows      []models.ScheduleWindow
		receptions   []models.Reception
		appointments []models.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := e.Schedule.GetOpenWindows(gctx, identities, dateFrom, dateTo)
		if err != nil {
			return &SourceError{Source: "schedule", Err: err}
		}
		windows = w
		return nil
	})
	g.Go(func() error {
		r, err := e.Receptions.GetBusyIntervals(gctx, identities, dateFrom, dateTo)
		if err != nil {
			return &SourceError{Source: "legacy reception", Err: err}
		}
		receptions = r
		return nil
	})
	g.Go(func() error {
		a, err := e.Appointments.GetActiveByPeriod(gctx, doctorID, dateFrom, dateTo)
		if err != nil {
			return &SourceError{Source: "appointment", Err: err}
		}
		appointments = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Union of open windows first. A day's grid exists only once a window
	// touches it; busy intervals on other days have nothing to subtract from.
	grids := make(map[string]*Grid)
	for _, w := range windows {
		iv := ParseIntervalRange(w.Time)
		if iv.End <= iv.Start {
			continue
		}
		grid, ok := grids[w.Date]
		if !ok {
			grid = NewGrid()
			grids[w.Date] = grid
		}
		grid.MarkFree(iv)
	}

	// Subtract both busy sources; order between them does not matter.
	for _, r := range receptions {
		grid, ok := grids[r.PlanStart.Format(dateLayout)]
		if !ok {
			continue
		}
		grid.MarkBusy(receptionInterval(r))
	}
	for _, a := range appointments {
		grid, ok := grids[a.Date]
		if !ok {
			continue
		}
		start := ParseTimeOfDay(a.Time)
		grid.MarkBusy(Interval{Start: start, End: start + SlotMinutes})
	}

	// Deterministic output order via sorted day keys.
	days := make([]string, 0, len(grids))
	for day := range grids {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make(map[string][]string)
	for _, day := range days {
		slots := grids[day].BookableSlots()
		if len(slots) == 0 {
			continue
		}
		formatted := make([]string, 0, len(slots))
		for _, s := range slots {
			formatted = append(formatted, s.String())
		}
		out[day] = formatted
	}

	logger.Debug("availability computed",
		zap.String("doctorID", doctorID),
		zap.Int("identities", len(identities)),
		zap.Int("days", len(out)))
	return out, nil
}

// receptionInterval reduces a legacy reception to a same-day interval.
// The day key comes from the start timestamp; a reception crossing midnight
// is truncated at end of day rather than carried over.
func receptionInterval(r models.Reception) Interval {
	start := TimeOfDay(r.PlanStart.Hour()*60 + r.PlanStart.Minute())
	end := TimeOfDay(r.PlanEnd.Hour()*60 + r.PlanEnd.Minute())
	if r.PlanEnd.Format(dateLayout) != r.PlanStart.Format(dateLayout) {
		end = TimeOfDay(24 * 60)
	}
	return Interval{Start: start, End: end}
}
