package business

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/cache"
)

// Cache хранилище значений по ключу
type Cache interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, val any) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type codeSource interface {
	GetByCode(ctx context.Context, code string) (*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
}

// CachedRepository кэширует поиск бизнеса по публичному коду.
// Ошибки кэша не прерывают запрос, при сбое redis чтение идёт напрямую в БД.
type CachedRepository struct {
	*Repository
	source codeSource
	cache  Cache
	logger Logger
}

// NewCachedRepository оборачивает репозиторий кэшем
func NewCachedRepository(repo *Repository, c Cache, logger Logger) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		source:     repo,
		cache:      c,
		logger:     logger,
	}
}

func codeKey(code string) string {
	return "business:code:" + code
}

// GetByCode получает бизнес по коду, сначала из кэша
func (r *CachedRepository) GetByCode(ctx context.Context, code string) (*domain.Business, error) {
	var cached domain.Business
	err := r.cache.Get(ctx, codeKey(code), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		r.logger.Warn("business.cache: GetByCode - read %s: %v", code, err)
	}

	b, err := r.source.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, codeKey(code), b); err != nil {
		r.logger.Warn("business.cache: GetByCode - write %s: %v", code, err)
	}
	return b, nil
}

// Update обновляет бизнес и сбрасывает кэш по его коду
func (r *CachedRepository) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	updated, err := r.source.Update(ctx, b)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, codeKey(updated.Code)); err != nil {
		r.logger.Warn("business.cache: Update - invalidate %s: %v", updated.Code, err)
	}
	return updated, nil
}
