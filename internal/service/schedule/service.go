package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/service/schedule/models"
)

// Service сервис чтения недельного расписания
type Service struct {
	businessRepo BusinessRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(businessRepo BusinessRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetMine возвращает расписание бизнеса владельца
func (s *Service) GetMine(ctx context.Context, ownerUserID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetMine: fetching schedule for owner=%d", ownerUserID)

	business, err := s.businessRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, s.mapBusinessError("GetMine", err)
	}

	return s.week(ctx, "GetMine", business)
}

// GetPublic возвращает расписание бизнеса по публичному коду
func (s *Service) GetPublic(ctx context.Context, code string) (*models.WeekResponse, error) {
	s.logger.Info("GetPublic: fetching schedule for code=%q", code)

	business, err := s.businessRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, s.mapBusinessError("GetPublic", err)
	}

	return s.week(ctx, "GetPublic", business)
}

func (s *Service) week(ctx context.Context, method string, business *domain.Business) (*models.WeekResponse, error) {
	blocks, err := s.scheduleRepo.GetByBusiness(ctx, business.ID)
	if err != nil {
		s.logger.Error("%s: failed to get schedule for business=%d: %v", method, business.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return models.Group(business.ID, blocks), nil
}

func (s *Service) mapBusinessError(method string, err error) error {
	if errors.Is(err, businessRepo.ErrBusinessNotFound) {
		s.logger.Warn("%s: business not found", method)
		return ErrBusinessNotFound
	}
	s.logger.Error("%s: failed to get business: %v", method, err)
	return fmt.Errorf("%w: %s - failed to get business: %v", ErrInternal, method, err)
}
