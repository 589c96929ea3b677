package domain

import "time"

// AvailableSlot is a candidate start time on the schedule grid
type AvailableSlot struct {
	Start time.Time
	End   time.Time // Start + duration of the requested service, or + block interval without service
	// Available is false when the interval leaves the schedule or overlaps an active booking
	Available bool
}

// BookingsSummary aggregated counts for a date range
type BookingsSummary struct {
	From       time.Time
	To         time.Time
	Total      int
	PerDay     []DayCount
	PerService []ServiceCount
}

// DayCount bookings on a single date
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// ServiceCount bookings of a single service
type ServiceCount struct {
	ServiceID    *int64
	Name         string
	Count        int
	TotalMinutes int
}
