package list_categories

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

type BusinessService interface {
	Categories(ctx context.Context) ([]models.CategoryResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
