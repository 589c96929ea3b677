package replace_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

// normalize приводит оба вида запроса к плоскому списку блоков.
// Выключенные дни и блоки с start >= end пропускаются.
func normalize(req *Request) ([]domain.ScheduleBlock, error) {
	if req.OwnerUserID <= 0 {
		return nil, fmt.Errorf("%w: owner user id must be positive", ErrInvalidInput)
	}
	if len(req.Blocks) > 0 && len(req.Days) > 0 {
		return nil, fmt.Errorf("%w: either blocks or days must be given, not both", ErrInvalidInput)
	}

	result := make([]domain.ScheduleBlock, 0, len(req.Blocks))

	for _, in := range req.Blocks {
		block, ok, err := buildBlock(in.Weekday, in.Start, in.End, in.IntervalMinutes)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, block)
		}
	}

	for _, day := range req.Days {
		if day.Active != nil && !*day.Active {
			continue
		}
		for _, r := range day.Blocks {
			block, ok, err := buildBlock(day.Weekday, r.From, r.To, day.IntervalMinutes)
			if err != nil {
				return nil, err
			}
			if ok {
				result = append(result, block)
			}
		}
	}

	return result, nil
}

// buildBlock false без ошибки означает пустой интервал, который нужно пропустить
func buildBlock(weekday int, start, end string, interval int) (domain.ScheduleBlock, bool, error) {
	day := domain.Weekday(weekday)
	if !day.IsValid() {
		return domain.ScheduleBlock{}, false, fmt.Errorf("%w: got %d", ErrInvalidWeekday, weekday)
	}

	from, err := types.NewTimeStringFromString(start)
	if err != nil {
		return domain.ScheduleBlock{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	to, err := types.NewTimeStringFromString(end)
	if err != nil {
		return domain.ScheduleBlock{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if interval == 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}
	if interval < domain.MinSlotIntervalMinutes || interval > domain.MaxSlotIntervalMinutes {
		return domain.ScheduleBlock{}, false, fmt.Errorf("%w: interval must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	if !from.IsBefore(to) {
		return domain.ScheduleBlock{}, false, nil
	}

	return domain.ScheduleBlock{
		Weekday:             day,
		StartTime:           from,
		EndTime:             to,
		SlotIntervalMinutes: interval,
	}, true, nil
}
