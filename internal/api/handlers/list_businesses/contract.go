package list_businesses

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

type BusinessService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.BusinessListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
