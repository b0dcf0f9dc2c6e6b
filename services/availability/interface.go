// File: services/availability/interface.go
package availability

import "context"

// AvailabilityEngine computes bookable slots per calendar day.
type AvailabilityEngine interface {
	// ComputeAvailability returns a map from ISO date to the ordered list of
	// "HH:MM" slot start times for [dateFrom, dateTo). Days without bookable
	// slots are omitted from the map.
	ComputeAvailability(ctx context.Context, doctorID, dateFrom, dateTo string) (map[string][]string, error)
}
