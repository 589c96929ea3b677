package businesses

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error)
	GetByCode(ctx context.Context, code string) (*domain.Business, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
}

// CodeGenerator генератор публичных кодов
type CodeGenerator interface {
	Generate(length int) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
