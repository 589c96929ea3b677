package get_available_slots

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BusinessCode) == "" {
		return fmt.Errorf("%w: business code is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() {
		return fmt.Errorf("%w: from is required", ErrInvalidInput)
	}

	if !req.To.IsZero() && req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	return nil
}

// dayRange переводит даты запроса в полуоткрытый интервал [начало From, начало дня после To)
// в часовом поясе бизнеса
func dayRange(from, to time.Time, loc *time.Location, defaultDays, maxDays int) (time.Time, time.Time, error) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	var end time.Time
	if to.IsZero() {
		end = start.AddDate(0, 0, defaultDays)
	} else {
		end = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	}

	if maxDays > 0 && end.After(start.AddDate(0, 0, maxDays)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, maxDays)
	}

	return start, end, nil
}
