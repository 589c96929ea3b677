package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/availability"
	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	serviceRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/servicecatalog"
)

// UseCase use case для получения сетки слотов бизнеса
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	scheduleRepo ScheduleRepository
	location     *time.Location
	maxRangeDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	location *time.Location,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		scheduleRepo: scheduleRepo,
		location:     location,
		maxRangeDays: maxRangeDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Слоты, начинающиеся в прошлом, возвращаются как недоступные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: code=%q, from=%s, to=%s",
		req.BusinessCode, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	from, to, err := dayRange(req.From, req.To, uc.location, domain.DefaultSlotsRangeDays, uc.maxRangeDays)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес
	business, err := uc.businessRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(req.BusinessCode)))
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business code=%q not found", req.BusinessCode)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business code=%q: %v", req.BusinessCode, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrStorage, err)
	}

	// 3. Получаем услугу, если указана
	var duration time.Duration
	if req.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, business.ID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found in business id=%d", *req.ServiceID, business.ID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrStorage, err)
		}
		if !service.Active {
			uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", service.ID)
			return nil, ErrServiceNotFound
		}
		duration = service.Duration()
	}

	// 4. Получаем расписание
	blocks, err := uc.scheduleRepo.GetByBusiness(ctx, business.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for business id=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrStorage, err)
	}

	// 5. Получаем активные бронирования в диапазоне
	bookings, err := uc.bookingRepo.GetActiveOverlapping(ctx, business.ID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for business id=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStorage, err)
	}

	// 6. Генерируем сетку и отмечаем доступность; to исключительно
	starts := availability.GenerateSlots(blocks, from, to.Add(-time.Nanosecond))
	slots := availability.MarkAvailability(starts, blocks, bookings, duration)

	now := uc.timeProvider.Now()
	for i := range slots {
		if slots[i].Start.Before(now) {
			slots[i].Available = false
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business id=%d", len(slots), business.ID)

	return &Response{
		BusinessID: business.ID,
		ServiceID:  req.ServiceID,
		From:       from,
		To:         to,
		Slots:      slots,
	}, nil
}
