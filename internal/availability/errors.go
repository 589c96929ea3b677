package availability

import "errors"

var (
	// ErrInvalidInterval end не позже start
	ErrInvalidInterval = errors.New("availability: interval end must be after start")

	// ErrCrossDayInterval интервал переходит через полночь
	ErrCrossDayInterval = errors.New("availability: interval spans more than one calendar day")

	// ErrOutOfSchedule интервал не помещается ни в один блок расписания
	ErrOutOfSchedule = errors.New("availability: interval is outside the weekly schedule")

	// ErrSlotConflict интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("availability: interval overlaps an active booking")
)
