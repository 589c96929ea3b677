package list_public_services

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/catalog/models"
)

type CatalogService interface {
	ListPublic(ctx context.Context, code string) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
