package availability

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// WithinSchedule проверяет, что [start, end) целиком лежит внутри хотя бы одного блока
// дня недели start. Сравнивается только время суток.
//
// Блоки других дней недели игнорируются, поэтому можно передавать полное расписание.
// end ровно в полночь следующего дня трактуется как 24:00 того же дня.
func WithinSchedule(blocks []domain.ScheduleBlock, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidInterval
	}

	startSec, _ := clockSeconds(start)
	endSec, err := endClockSeconds(start, end)
	if err != nil {
		return false, err
	}

	for _, block := range domain.BlocksForWeekday(blocks, domain.WeekdayOf(start)) {
		if !block.IsValid() {
			continue
		}
		from, to := blockSeconds(block)
		if from <= startSec && endSec <= to {
			return true, nil
		}
	}

	return false, nil
}

// clockSeconds секунды от полуночи в часовом поясе t
func clockSeconds(t time.Time) (int, time.Time) {
	day := startOfDay(t)
	h, m, s := t.Clock()
	return h*3600 + m*60 + s, day
}

// endClockSeconds время суток end относительно дня start
func endClockSeconds(start, end time.Time) (int, error) {
	end = end.In(start.Location())
	startDay := startOfDay(start)
	endSec, endDay := clockSeconds(end)

	if endDay.Equal(startDay) {
		return endSec, nil
	}
	if endSec == 0 && endDay.Equal(startDay.AddDate(0, 0, 1)) {
		return secondsPerDay, nil
	}
	return 0, ErrCrossDayInterval
}

// blockSeconds границы блока в секундах от полуночи. Блок должен быть валиден.
func blockSeconds(block domain.ScheduleBlock) (int, int) {
	from, _ := block.StartTime.Minutes()
	to, _ := block.EndTime.Minutes()
	return from * 60, to * 60
}
