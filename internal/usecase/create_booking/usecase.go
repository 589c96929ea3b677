package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/availability"
	"github.com/m04kA/SMC-TurnosService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	serviceRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/servicecatalog"
	"github.com/m04kA/SMC-TurnosService/internal/integrations/bookingevents"
	"github.com/m04kA/SMC-TurnosService/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс, в котором интерпретируется недельное расписание.
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка расписания, конфликтов и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: code=%q, business=%d, service=%d, start=%s",
		req.BusinessCode, req.BusinessID, req.ServiceID, req.Start.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	start := req.Start.In(uc.location)
	if err := validateStart(start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: start %s is in the past", start.Format(time.RFC3339))
		return nil, err
	}

	// 2. Получаем бизнес
	business, err := uc.resolveBusiness(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, business.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found in business id=%d", req.ServiceID, business.ID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrStorage, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", service.ID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Booking

	// 4. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blocks, err := uc.scheduleRepo.GetByBusinessAndWeekday(txCtx, business.ID, domain.WeekdayOf(start))
		if err != nil {
			return storageError("failed to get schedule", err)
		}

		// Блокируем активные бронирования этого дня
		dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		active, err := uc.bookingRepo.GetActiveOverlapping(txCtx, business.ID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			return storageError("failed to get bookings", err)
		}

		booking, err := availability.PlaceBooking(business, service, start, blocks, active)
		if err != nil {
			return err
		}

		normalizeClient(booking, req)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapError(err, business.ID, start)
	}

	uc.metrics.IncBooking(metrics.OutcomeCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	event := bookingevents.NewEvent(bookingevents.TypeBookingCreated, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	return toResponse(result, service), nil
}

// resolveBusiness определяет бизнес по владельцу, коду или ID
func (uc *UseCase) resolveBusiness(ctx context.Context, req *Request) (*domain.Business, error) {
	var (
		business *domain.Business
		err      error
	)

	switch {
	case req.OwnerUserID != nil:
		business, err = uc.businessRepo.GetByOwner(ctx, *req.OwnerUserID)
	case strings.TrimSpace(req.BusinessCode) != "":
		business, err = uc.businessRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(req.BusinessCode)))
	default:
		business, err = uc.businessRepo.GetByID(ctx, req.BusinessID)
	}

	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business not found (code=%q, id=%d)", req.BusinessCode, req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business: %v", err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrStorage, err)
	}

	return business, nil
}

// storageError оборачивает ошибку чтения внутри транзакции в ErrStorage,
// кроме отказа из-за конкурентной транзакции: он остаётся распознаваемым для mapError.
func storageError(step string, err error) error {
	if bookingRepo.IsSlotTaken(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrStorage, step, err)
}

// mapError переводит ошибки движка и хранилища в ошибки use case.
// Отказ БД из-за конкурентной вставки (exclusion, serialization) считается конфликтом слота.
func (uc *UseCase) mapError(err error, businessID int64, start time.Time) error {
	switch {
	case errors.Is(err, availability.ErrOutOfSchedule):
		uc.metrics.IncBooking(metrics.OutcomeOutOfSchedule)
		uc.logger.Warn("CreateBooking: business id=%d, start %s is outside the schedule", businessID, start.Format(time.RFC3339))
		return ErrOutOfSchedule
	case errors.Is(err, availability.ErrSlotConflict):
		uc.metrics.IncBooking(metrics.OutcomeConflict)
		uc.logger.Warn("CreateBooking: business id=%d, start %s conflicts with an active booking", businessID, start.Format(time.RFC3339))
		return ErrSlotConflict
	case bookingRepo.IsSlotTaken(err):
		uc.metrics.IncBooking(metrics.OutcomeConflict)
		uc.logger.Warn("CreateBooking: business id=%d, start %s taken by a concurrent booking: %v", businessID, start.Format(time.RFC3339), err)
		return ErrSlotConflict
	case errors.Is(err, availability.ErrInvalidInterval), errors.Is(err, availability.ErrCrossDayInterval):
		uc.logger.Warn("CreateBooking: invalid interval: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	case errors.Is(err, ErrStorage):
		uc.metrics.IncBooking(metrics.OutcomeError)
		uc.logger.Error("CreateBooking: %v", err)
		return err
	default:
		uc.metrics.IncBooking(metrics.OutcomeError)
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
