package activate_business

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

type BusinessService interface {
	Activate(ctx context.Context, req *models.ActivateRequest) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
