package models

import (
	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// WeekResponse недельное расписание, сгруппированное по дням
type WeekResponse struct {
	BusinessID int64         `json:"business_id"`
	Days       []DayResponse `json:"items"`
}

// DayResponse один день недели (weekday: 0=понедельник ... 6=воскресенье)
type DayResponse struct {
	Weekday         int             `json:"weekday"`
	Name            string          `json:"name"`
	Active          bool            `json:"active"`
	IntervalMinutes int             `json:"interval_minutes"`
	Blocks          []RangeResponse `json:"blocks"`
}

// RangeResponse блок времени внутри дня
type RangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Group раскладывает блоки по всем семи дням в порядке понедельник..воскресенье.
// Интервал дня берётся из первого блока, для пустого дня используется значение по умолчанию.
// Блоки внутри дня ожидаются отсортированными по началу.
func Group(businessID int64, blocks []domain.ScheduleBlock) *WeekResponse {
	resp := &WeekResponse{
		BusinessID: businessID,
		Days:       make([]DayResponse, 0, len(domain.AllWeekdays)),
	}

	for _, day := range domain.AllWeekdays {
		item := DayResponse{
			Weekday:         int(day),
			Name:            day.String(),
			IntervalMinutes: domain.DefaultSlotIntervalMinutes,
			Blocks:          []RangeResponse{},
		}

		for _, b := range domain.BlocksForWeekday(blocks, day) {
			if len(item.Blocks) == 0 && b.SlotIntervalMinutes > 0 {
				item.IntervalMinutes = b.SlotIntervalMinutes
			}
			item.Blocks = append(item.Blocks, RangeResponse{From: b.StartTime.String(), To: b.EndTime.String()})
		}
		item.Active = len(item.Blocks) > 0

		resp.Days = append(resp.Days, item)
	}

	return resp
}
