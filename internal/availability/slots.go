// Package availability содержит чистые функции расчёта доступности:
// сетка слотов по недельному расписанию, проверка попадания в расписание
// и проверка пересечения с бронированиями.
package availability

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// GenerateSlots перечисляет стартовые времена слотов в диапазоне [from, to] (включительно).
//
// Для каждого календарного дня выбираются блоки его дня недели, внутри блока слоты
// идут с шагом SlotIntervalMinutes, пока слот целиком помещается в блок
// (слот, заканчивающийся ровно в EndTime, допустим).
// Результат отсортирован по возрастанию, одинаковые старты из пересекающихся блоков схлопываются.
// Бронирования и длительность услуги не учитываются.
func GenerateSlots(blocks []domain.ScheduleBlock, from, to time.Time) []time.Time {
	if to.Before(from) || len(blocks) == 0 {
		return []time.Time{}
	}

	loc := from.Location()
	firstDay := startOfDay(from)
	lastDay := startOfDay(to.In(loc))

	slots := make([]time.Time, 0)
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		for _, block := range domain.BlocksForWeekday(blocks, domain.WeekdayOf(day)) {
			slots = append(slots, blockSlots(block, day, from, to)...)
		}
	}

	slices.SortFunc(slots, func(a, b time.Time) int { return a.Compare(b) })
	return slices.CompactFunc(slots, func(a, b time.Time) bool { return a.Equal(b) })
}

// blockSlots слоты одного блока на дату day, отфильтрованные по [from, to]
func blockSlots(block domain.ScheduleBlock, day, from, to time.Time) []time.Time {
	if !block.IsValid() {
		return nil
	}

	blockStart, err := block.StartTime.On(day)
	if err != nil {
		return nil
	}
	blockEnd, err := block.EndTime.On(day)
	if err != nil {
		return nil
	}

	step := time.Duration(block.SlotIntervalMinutes) * time.Minute

	var result []time.Time
	for cursor := blockStart; !cursor.Add(step).After(blockEnd); cursor = cursor.Add(step) {
		if cursor.Before(from) || cursor.After(to) {
			continue
		}
		result = append(result, cursor)
	}
	return result
}

// MarkAvailability для каждого старта проверяет, что интервал [start, start+duration)
// помещается в расписание и не пересекается с активными бронированиями.
// При duration <= 0 слот считается длиной в интервал своего блока и проверяется только на конфликт.
func MarkAvailability(
	slots []time.Time,
	blocks []domain.ScheduleBlock,
	bookings []*domain.Booking,
	duration time.Duration,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0, len(slots))

	for _, start := range slots {
		slot := domain.AvailableSlot{Start: start}

		if duration > 0 {
			slot.End = start.Add(duration)
			within, err := WithinSchedule(blocks, slot.Start, slot.End)
			slot.Available = err == nil && within && !HasConflict(bookings, slot.Start, slot.End, nil)
		} else {
			slot.End = start.Add(shortestInterval(blocks, start))
			slot.Available = !HasConflict(bookings, slot.Start, slot.End, nil)
		}

		result = append(result, slot)
	}

	return result
}

// shortestInterval минимальный шаг среди блоков, в которых лежит start
func shortestInterval(blocks []domain.ScheduleBlock, start time.Time) time.Duration {
	minutes := 0
	for _, block := range domain.BlocksForWeekday(blocks, domain.WeekdayOf(start)) {
		if !block.IsValid() {
			continue
		}
		startSec, _ := clockSeconds(start)
		from, to := blockSeconds(block)
		if startSec < from || startSec >= to {
			continue
		}
		if minutes == 0 || block.SlotIntervalMinutes < minutes {
			minutes = block.SlotIntervalMinutes
		}
	}
	if minutes == 0 {
		minutes = domain.DefaultSlotIntervalMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
