package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/integrations/bookingevents"
	"github.com/m04kA/SMC-TurnosService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями владельца бизнеса
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	publisher    EventPublisher
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		publisher:    publisher,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает бронирования бизнеса владельца, начинающиеся в [From, To]
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for owner=%d", req.OwnerUserID)

	business, err := s.ownerBusiness(ctx, "List", req.OwnerUserID)
	if err != nil {
		return nil, err
	}

	from, to := s.listRange(req.From, req.To)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	filter := domain.BusinessBookingsFilter{
		BusinessID:      business.ID,
		From:            &from,
		To:              &to,
		IncludeInactive: req.IncludeCancelled,
	}
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status, err := models.ToDomainBookingStatus(strings.TrimSpace(*req.Status))
		if err != nil {
			s.logger.Warn("List: invalid status=%q for owner=%d", *req.Status, req.OwnerUserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	names := s.serviceNames(ctx, business.ID)

	s.logger.Info("List: successfully fetched %d bookings for business=%d", len(bookings), business.ID)
	return models.FromDomainBookingList(bookings, names, from, to), nil
}

// GetByID получает бронирование бизнеса владельца
func (s *Service) GetByID(ctx context.Context, ownerUserID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for owner=%d", id, ownerUserID)

	business, err := s.ownerBusiness(ctx, "GetByID", ownerUserID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, business.ID, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	return models.FromDomainBooking(booking, s.serviceNames(ctx, business.ID)), nil
}

// Confirm подтверждает бронирование в статусе reserved
func (s *Service) Confirm(ctx context.Context, ownerUserID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by owner=%d", id, ownerUserID)

	business, err := s.ownerBusiness(ctx, "Confirm", ownerUserID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, business.ID, id)
		if err != nil {
			return err
		}
		if !booking.CanBeConfirmed() {
			s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", id, booking.Status)
			return ErrCannotConfirm
		}
		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusConfirmed); err != nil {
			return err
		}
		updated, err = s.bookingRepo.GetByID(txCtx, business.ID, id)
		return err
	})
	if err != nil {
		return nil, s.mapRepoError("Confirm", id, err)
	}

	s.publish(ctx, bookingevents.TypeBookingConfirmed, updated)
	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(updated, s.serviceNames(ctx, business.ID)), nil
}

// Cancel отменяет бронирование. Отменённое бронирование больше не занимает время.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by owner=%d", id, req.OwnerUserID)

	var reason *string
	if req.Reason != nil {
		if r := strings.TrimSpace(*req.Reason); r != "" {
			if len(r) > domain.MaxCancelReasonLength {
				return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
			}
			reason = &r
		}
	}

	business, err := s.ownerBusiness(ctx, "Cancel", req.OwnerUserID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, business.ID, id)
		if err != nil {
			return err
		}
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
			return ErrCannotCancel
		}
		if err := s.bookingRepo.Cancel(txCtx, id, reason); err != nil {
			return err
		}
		updated, err = s.bookingRepo.GetByID(txCtx, business.ID, id)
		return err
	})
	if err != nil {
		return nil, s.mapRepoError("Cancel", id, err)
	}

	s.publish(ctx, bookingevents.TypeBookingCancelled, updated)
	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(updated, s.serviceNames(ctx, business.ID)), nil
}

// Delete физически удаляет бронирование бизнеса владельца
func (s *Service) Delete(ctx context.Context, ownerUserID, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d by owner=%d", id, ownerUserID)

	business, err := s.ownerBusiness(ctx, "Delete", ownerUserID)
	if err != nil {
		return err
	}

	var deleted *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, business.ID, id)
		if err != nil {
			return err
		}
		deleted = booking
		return s.bookingRepo.Delete(txCtx, business.ID, id)
	})
	if err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.publish(ctx, bookingevents.TypeBookingDeleted, deleted)
	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// Вспомогательные методы

// ownerBusiness получает бизнес, принадлежащий пользователю
func (s *Service) ownerBusiness(ctx context.Context, method string, ownerUserID int64) (*domain.Business, error) {
	if ownerUserID <= 0 {
		return nil, fmt.Errorf("%w: owner user id must be positive", ErrInvalidInput)
	}

	business, err := s.businessRepo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("%s: owner=%d has no business", method, ownerUserID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("%s: failed to get business for owner=%d: %v", method, ownerUserID, err)
		return nil, fmt.Errorf("%w: %s - failed to get business: %v", ErrInternal, method, err)
	}
	return business, nil
}

// listRange диапазон по умолчанию: от начала сегодняшнего дня на DefaultBookingsRangeDays вперёд
func (s *Service) listRange(from, to *time.Time) (time.Time, time.Time) {
	var start time.Time
	if from != nil {
		start = from.In(s.location)
	} else {
		now := s.timeProvider.Now().In(s.location)
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	}

	if to != nil {
		return start, to.In(s.location)
	}
	return start, start.AddDate(0, 0, domain.DefaultBookingsRangeDays)
}

// serviceNames соответствие ID услуги и названия; при ошибке названия просто не заполняются
func (s *Service) serviceNames(ctx context.Context, businessID int64) map[int64]string {
	services, err := s.serviceRepo.ListByBusiness(ctx, businessID, false)
	if err != nil {
		s.logger.Warn("serviceNames: failed to list services for business=%d: %v", businessID, err)
		return nil
	}

	names := make(map[int64]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}
	return names
}

func (s *Service) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if booking == nil {
		return
	}
	event := bookingevents.NewEvent(eventType, booking, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish: failed to publish %s for booking id=%d: %v", eventType, booking.ID, err)
	}
}

func (s *Service) mapRepoError(method string, id int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found", method, id)
		return ErrBookingNotFound
	case errors.Is(err, ErrCannotCancel), errors.Is(err, ErrCannotConfirm):
		return err
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
}
