package list_my_services

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/catalog/models"
)

type CatalogService interface {
	ListMine(ctx context.Context, ownerUserID int64) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
