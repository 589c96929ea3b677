package get_my_schedule

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetMine(ctx context.Context, ownerUserID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
