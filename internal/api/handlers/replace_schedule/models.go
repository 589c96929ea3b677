package replace_schedule

import (
	"github.com/m04kA/SMC-TurnosService/internal/service/schedule/models"
	replaceSchedule "github.com/m04kA/SMC-TurnosService/internal/usecase/replace_schedule"
)

// ReplaceScheduleRequest HTTP request model: либо blocks (плоский вид), либо days (по дням)
type ReplaceScheduleRequest struct {
	Blocks []BlockRequest `json:"blocks,omitempty" validate:"omitempty,dive"`
	Days   []DayRequest   `json:"days,omitempty" validate:"omitempty,dive"`
}

// BlockRequest блок рабочего времени
type BlockRequest struct {
	Weekday         int    `json:"weekday"`
	Start           string `json:"start" validate:"hhmm"`
	End             string `json:"end" validate:"hhmm"`
	IntervalMinutes int    `json:"interval_minutes" validate:"omitempty,min=5,max=480"`
}

// DayRequest день недели с блоками
type DayRequest struct {
	Weekday         int            `json:"weekday"`
	Active          *bool          `json:"active,omitempty"`
	IntervalMinutes int            `json:"interval_minutes" validate:"omitempty,min=5,max=480"`
	Blocks          []RangeRequest `json:"blocks" validate:"dive"`
}

// RangeRequest интервал внутри дня
type RangeRequest struct {
	From string `json:"from" validate:"hhmm"`
	To   string `json:"to" validate:"hhmm"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceScheduleRequest) ToUseCaseRequest(ownerUserID int64) *replaceSchedule.Request {
	req := &replaceSchedule.Request{OwnerUserID: ownerUserID}
	for _, b := range r.Blocks {
		req.Blocks = append(req.Blocks, replaceSchedule.BlockInput{
			Weekday:         b.Weekday,
			Start:           b.Start,
			End:             b.End,
			IntervalMinutes: b.IntervalMinutes,
		})
	}
	for _, d := range r.Days {
		day := replaceSchedule.DayInput{
			Weekday:         d.Weekday,
			Active:          d.Active,
			IntervalMinutes: d.IntervalMinutes,
		}
		for _, rng := range d.Blocks {
			day.Blocks = append(day.Blocks, replaceSchedule.RangeInput{From: rng.From, To: rng.To})
		}
		req.Days = append(req.Days, day)
	}
	return req
}

// FromUseCaseResponse сохранённое расписание в сгруппированном виде
func FromUseCaseResponse(resp *replaceSchedule.Response) *models.WeekResponse {
	return models.Group(resp.BusinessID, resp.Blocks)
}
