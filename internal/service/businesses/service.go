package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

// Service сервис бизнесов: активация, профиль, публичный каталог
type Service struct {
	businessRepo BusinessRepository
	codes        CodeGenerator
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(businessRepo BusinessRepository, codes CodeGenerator, logger Logger) *Service {
	return &Service{
		businessRepo: businessRepo,
		codes:        codes,
		logger:       logger,
	}
}

// createAttempts число попыток вставки при коллизии кода
const createAttempts = 2

// Activate создает бизнес пользователя с уникальным кодом.
// Повторный вызов возвращает уже существующий бизнес.
func (s *Service) Activate(ctx context.Context, req *models.ActivateRequest) (*models.BusinessResponse, error) {
	s.logger.Info("Activate: owner=%d", req.OwnerUserID)

	if req.OwnerUserID <= 0 {
		return nil, fmt.Errorf("%w: owner user id must be positive", ErrInvalidInput)
	}

	existing, err := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err == nil {
		s.logger.Info("Activate: owner=%d already has business id=%d", req.OwnerUserID, existing.ID)
		return models.FromDomainBusiness(existing), nil
	}
	if !errors.Is(err, businessRepo.ErrBusinessNotFound) {
		s.logger.Error("Activate: failed to get business for owner=%d: %v", req.OwnerUserID, err)
		return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
	}

	name := domain.DefaultBusinessName
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name = strings.TrimSpace(*req.Name)
	}

	var created *domain.Business
	for attempt := 1; ; attempt++ {
		code, err := s.uniqueCode(ctx)
		if err != nil {
			s.logger.Error("Activate: %v", err)
			return nil, err
		}

		created, err = s.businessRepo.Create(ctx, &domain.Business{
			OwnerUserID: req.OwnerUserID,
			Name:        name,
			Description: trimmed(req.Description),
			Code:        code,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, businessRepo.ErrDuplicate) {
			s.logger.Error("Activate: failed to create business for owner=%d: %v", req.OwnerUserID, err)
			return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, err)
		}

		// Дубликат владельца: бизнес создан конкурентной активацией
		existing, getErr := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
		if getErr == nil {
			return models.FromDomainBusiness(existing), nil
		}
		if !errors.Is(getErr, businessRepo.ErrBusinessNotFound) {
			s.logger.Error("Activate: failed to get business for owner=%d after duplicate: %v", req.OwnerUserID, getErr)
			return nil, fmt.Errorf("%w: Activate - repository error: %v", ErrInternal, getErr)
		}

		// Дубликат кода: код занят конкурентным созданием, пробуем новый
		if attempt >= createAttempts {
			s.logger.Error("Activate: code collision persisted for owner=%d: %v", req.OwnerUserID, err)
			return nil, fmt.Errorf("%w: Activate - duplicate code: %v", ErrCodeGeneration, err)
		}
		s.logger.Warn("Activate: code %s taken concurrently, retrying for owner=%d", code, req.OwnerUserID)
	}

	s.logger.Info("Activate: created business id=%d code=%s for owner=%d", created.ID, created.Code, req.OwnerUserID)
	return models.FromDomainBusiness(created), nil
}

// GetMine возвращает бизнес пользователя
func (s *Service) GetMine(ctx context.Context, ownerUserID int64) (*models.BusinessResponse, error) {
	b, err := s.businessRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, s.mapError("GetMine", err)
	}
	return models.FromDomainBusiness(b), nil
}

// GetByCode возвращает публичный профиль по коду (регистр не важен)
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BusinessResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	b, err := s.businessRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, s.mapError("GetByCode", err)
	}
	return models.FromDomainBusiness(b), nil
}

// List публичный каталог. Limit по умолчанию DefaultListLimit, не больше MaxListLimit.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BusinessListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	offset := max(req.Offset, 0)

	items, err := s.businessRepo.List(ctx, domain.BusinessFilter{
		Query:    strings.TrimSpace(req.Query),
		Category: strings.TrimSpace(req.Category),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, s.mapError("List", err)
	}

	resp := &models.BusinessListResponse{
		Items:  make([]models.BusinessResponse, 0, len(items)),
		Limit:  limit,
		Offset: offset,
	}
	for _, b := range items {
		resp.Items = append(resp.Items, *models.FromDomainBusiness(b))
	}
	return resp, nil
}

// Categories категории с количеством бизнесов
func (s *Service) Categories(ctx context.Context) ([]models.CategoryResponse, error) {
	items, err := s.businessRepo.Categories(ctx)
	if err != nil {
		return nil, s.mapError("Categories", err)
	}
	return models.FromDomainCategories(items), nil
}

// UpdateMine обновляет профиль бизнеса пользователя. Пустая строка очищает необязательное поле.
func (s *Service) UpdateMine(ctx context.Context, req *models.UpdateRequest) (*models.BusinessResponse, error) {
	s.logger.Info("UpdateMine: owner=%d", req.OwnerUserID)

	b, err := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err != nil {
		return nil, s.mapError("UpdateMine", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		b.Name = name
	}
	applyOptional(&b.Description, req.Description)
	applyOptional(&b.TaxID, req.TaxID)
	applyOptional(&b.Phone, req.Phone)
	applyOptional(&b.Address, req.Address)
	applyOptional(&b.Category, req.Category)
	applyOptional(&b.Social, req.Social)
	applyOptional(&b.Website, req.Website)
	applyOptional(&b.ContactEmail, req.ContactEmail)
	applyOptional(&b.LogoURL, req.LogoURL)

	updated, err := s.businessRepo.Update(ctx, b)
	if err != nil {
		return nil, s.mapError("UpdateMine", err)
	}

	s.logger.Info("UpdateMine: updated business id=%d", updated.ID)
	return models.FromDomainBusiness(updated), nil
}

// uniqueCode CodeAttempts попыток кода длины CodeLength, затем одна попытка длины CodeFallbackLength
func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt <= domain.CodeAttempts; attempt++ {
		length := domain.CodeLength
		if attempt == domain.CodeAttempts {
			length = domain.CodeFallbackLength
		}

		code, err := s.codes.Generate(length)
		if err != nil {
			return "", err
		}

		exists, err := s.businessRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: uniqueCode - repository error: %v", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
		s.logger.Warn("uniqueCode: code %s is taken, attempt %d", code, attempt+1)
	}

	return "", ErrCodeGeneration
}

func (s *Service) mapError(method string, err error) error {
	if errors.Is(err, businessRepo.ErrBusinessNotFound) {
		s.logger.Warn("%s: business not found", method)
		return ErrBusinessNotFound
	}
	s.logger.Error("%s: repository error: %v", method, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

// applyOptional nil не меняет значение, пустая строка очищает
func applyOptional(dst **string, v *string) {
	if v == nil {
		return
	}
	*dst = trimmed(v)
}
