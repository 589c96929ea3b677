package get_public_schedule

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetPublic(ctx context.Context, code string) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
