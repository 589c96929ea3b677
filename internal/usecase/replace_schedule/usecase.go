package replace_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
)

// UseCase use case полной замены недельного расписания владельцем
type UseCase struct {
	businessRepo BusinessRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute заменяет расписание. Пустой набор блоков очищает расписание.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceSchedule: owner=%d, flat=%d, days=%d", req.OwnerUserID, len(req.Blocks), len(req.Days))

	// 1. Нормализация и валидация
	blocks, err := normalize(req)
	if err != nil {
		uc.logger.Warn("ReplaceSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес владельца
	business, err := uc.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("ReplaceSchedule: owner=%d has no business", req.OwnerUserID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("ReplaceSchedule: failed to get business for owner=%d: %v", req.OwnerUserID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrStorage, err)
	}

	// 3. Полная замена в транзакции
	var saved []domain.ScheduleBlock
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = uc.scheduleRepo.ReplaceForBusiness(txCtx, business.ID, blocks)
		return err
	})
	if err != nil {
		uc.logger.Error("ReplaceSchedule: failed to replace schedule for business id=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to replace schedule: %v", ErrStorage, err)
	}

	uc.logger.Info("ReplaceSchedule: business id=%d now has %d blocks", business.ID, len(saved))

	return &Response{BusinessID: business.ID, Blocks: saved}, nil
}
