package replace_schedule

import "github.com/m04kA/SMC-TurnosService/internal/domain"

// Request модель запроса на полную замену расписания.
// Заполняется ровно одно из полей: Blocks (плоский вид) или Days (сгруппированный по дням).
type Request struct {
	OwnerUserID int64
	Blocks      []BlockInput
	Days        []DayInput
}

// BlockInput один блок в плоском виде
type BlockInput struct {
	Weekday         int
	Start           string
	End             string
	IntervalMinutes int // 0 означает значение по умолчанию
}

// DayInput день в сгруппированном виде
type DayInput struct {
	Weekday         int
	Active          *bool // nil считается активным
	IntervalMinutes int
	Blocks          []RangeInput
}

// RangeInput интервал времени внутри дня
type RangeInput struct {
	From string
	To   string
}

// Response модель ответа с сохранённым расписанием
type Response struct {
	BusinessID int64
	Blocks     []domain.ScheduleBlock
}
