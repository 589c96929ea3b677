package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	serviceRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/servicecatalog"
	"github.com/m04kA/SMC-TurnosService/internal/service/catalog/models"
)

// Service сервис каталога услуг бизнеса
type Service struct {
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(businessRepo BusinessRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// ListMine все услуги бизнеса владельца, включая выключенные
func (s *Service) ListMine(ctx context.Context, ownerUserID int64) ([]models.ServiceResponse, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, s.mapBusinessError("ListMine", err)
	}

	items, err := s.serviceRepo.ListByBusiness(ctx, business.ID, false)
	if err != nil {
		s.logger.Error("ListMine: repository error for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(items), nil
}

// ListPublic активные услуги бизнеса по коду
func (s *Service) ListPublic(ctx context.Context, code string) ([]models.ServiceResponse, error) {
	business, err := s.businessRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, s.mapBusinessError("ListPublic", err)
	}

	items, err := s.serviceRepo.ListByBusiness(ctx, business.ID, true)
	if err != nil {
		s.logger.Error("ListPublic: repository error for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(items), nil
}

// Create создает услугу в бизнесе владельца
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q for owner=%d", req.Name, req.OwnerUserID)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	business, err := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err != nil {
		return nil, s.mapBusinessError("Create", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		BusinessID:      business.ID,
		Name:            name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Color:           req.Color,
		Active:          active,
	})
	if err != nil {
		s.logger.Error("Create: repository error for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%d for business=%d", created.ID, business.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу бизнеса владельца
func (s *Service) Update(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d for owner=%d", req.ServiceID, req.OwnerUserID)

	business, err := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err != nil {
		return nil, s.mapBusinessError("Update", err)
	}

	current, err := s.serviceRepo.GetByID(ctx, business.ID, req.ServiceID)
	if err != nil {
		return nil, s.mapServiceError("Update", req.ServiceID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		current.Name = name
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return nil, err
		}
		current.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		current.Price = *req.Price
	}
	if req.Color != nil {
		current.Color = req.Color
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	updated, err := s.serviceRepo.Update(ctx, current)
	if err != nil {
		return nil, s.mapServiceError("Update", req.ServiceID, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу бизнеса владельца
func (s *Service) Delete(ctx context.Context, ownerUserID, serviceID int64) error {
	s.logger.Info("Delete: deleting service id=%d for owner=%d", serviceID, ownerUserID)

	business, err := s.businessRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return s.mapBusinessError("Delete", err)
	}

	if err := s.serviceRepo.Delete(ctx, business.ID, serviceID); err != nil {
		return s.mapServiceError("Delete", serviceID, err)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinServiceDurationMinutes || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

func (s *Service) mapBusinessError(method string, err error) error {
	if errors.Is(err, businessRepo.ErrBusinessNotFound) {
		s.logger.Warn("%s: business not found", method)
		return ErrBusinessNotFound
	}
	s.logger.Error("%s: failed to get business: %v", method, err)
	return fmt.Errorf("%w: %s - failed to get business: %v", ErrInternal, method, err)
}

func (s *Service) mapServiceError(method string, id int64, err error) error {
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", method, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", method, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}
