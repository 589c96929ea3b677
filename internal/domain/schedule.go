package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

// Weekday day of week with Monday=0 ... Sunday=6.
// This is the only convention used across the service; time.Weekday values never leak out.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays in display order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf returns the weekday of t in t's location
func WeekdayOf(t time.Time) Weekday {
	// time.Sunday == 0, shift so that Monday becomes 0
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// IsValid returns true for 0..6
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	names := [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	if !w.IsValid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return names[w]
}

// ScheduleBlock is one recurring availability window on one weekday
type ScheduleBlock struct {
	ID                  int64
	BusinessID          int64
	Weekday             Weekday
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotIntervalMinutes int
}

// IsValid checks weekday range, time format, start < end and a positive interval
func (b *ScheduleBlock) IsValid() bool {
	if !b.Weekday.IsValid() || b.SlotIntervalMinutes <= 0 {
		return false
	}
	if b.StartTime.Validate() != nil || b.EndTime.Validate() != nil {
		return false
	}
	return b.StartTime.IsBefore(b.EndTime)
}

// BlocksForWeekday filters blocks by weekday
func BlocksForWeekday(blocks []ScheduleBlock, day Weekday) []ScheduleBlock {
	result := make([]ScheduleBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Weekday == day {
			result = append(result, b)
		}
	}
	return result
}
