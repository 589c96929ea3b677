package get_my_business

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

type BusinessService interface {
	GetMine(ctx context.Context, ownerUserID int64) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
