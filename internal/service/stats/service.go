package stats

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/service/stats/models"
)

const unknownServiceName = "Sin servicio"

// Service сервис статистики бронирований
type Service struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	serviceRepo  ServiceRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Summary считает активные бронирования бизнеса владельца за [From, To]
func (s *Service) Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("Summary: building stats for owner=%d", req.OwnerUserID)

	from, to := s.summaryRange(req.From, req.To)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	business, err := s.businessRepo.GetByOwner(ctx, req.OwnerUserID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Summary: owner=%d has no business", req.OwnerUserID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Summary: failed to get business for owner=%d: %v", req.OwnerUserID, err)
		return nil, fmt.Errorf("%w: Summary - failed to get business: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, domain.BusinessBookingsFilter{
		BusinessID: business.ID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		s.logger.Error("Summary: repository error for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListByBusiness(ctx, business.ID, false)
	if err != nil {
		s.logger.Error("Summary: failed to list services for business=%d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: Summary - failed to list services: %v", ErrInternal, err)
	}
	names := make(map[int64]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}

	summary := aggregate(bookings, names, s.location)
	summary.From = from
	summary.To = to

	s.logger.Info("Summary: business=%d total=%d", business.ID, summary.Total)
	return models.FromDomainSummary(summary, s.location), nil
}

// summaryRange по умолчанию текущий месяц; To включает последнюю наносекунду месяца
func (s *Service) summaryRange(from, to *time.Time) (time.Time, time.Time) {
	now := s.timeProvider.Now().In(s.location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)

	start := monthStart
	if from != nil {
		start = from.In(s.location)
	}
	end := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	if to != nil {
		end = to.In(s.location)
	}
	return start, end
}

func aggregate(bookings []*domain.Booking, names map[int64]string, loc *time.Location) *domain.BookingsSummary {
	perDay := make(map[string]int)
	perService := make(map[int64]*domain.ServiceCount)
	var noService *domain.ServiceCount
	total := 0

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		total++
		perDay[b.Start.In(loc).Format(domain.DateFormat)]++

		var entry *domain.ServiceCount
		if b.ServiceID == nil {
			if noService == nil {
				noService = &domain.ServiceCount{Name: unknownServiceName}
			}
			entry = noService
		} else {
			entry = perService[*b.ServiceID]
			if entry == nil {
				id := *b.ServiceID
				name, ok := names[id]
				if !ok {
					name = unknownServiceName
				}
				entry = &domain.ServiceCount{ServiceID: &id, Name: name}
				perService[id] = entry
			}
		}
		entry.Count++
		entry.TotalMinutes += b.DurationMinutes()
	}

	resp := &domain.BookingsSummary{
		Total:      total,
		PerDay:     make([]domain.DayCount, 0, len(perDay)),
		PerService: make([]domain.ServiceCount, 0, len(perService)+1),
	}
	for date, count := range perDay {
		resp.PerDay = append(resp.PerDay, domain.DayCount{Date: date, Count: count})
	}
	slices.SortFunc(resp.PerDay, func(a, b domain.DayCount) int { return cmp.Compare(a.Date, b.Date) })

	for _, entry := range perService {
		resp.PerService = append(resp.PerService, *entry)
	}
	if noService != nil {
		resp.PerService = append(resp.PerService, *noService)
	}
	// без услуги идут после всех услуг с тем же количеством
	slices.SortFunc(resp.PerService, func(a, b domain.ServiceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		switch {
		case a.ServiceID == nil && b.ServiceID == nil:
			return 0
		case a.ServiceID == nil:
			return 1
		case b.ServiceID == nil:
			return -1
		}
		return cmp.Compare(*a.ServiceID, *b.ServiceID)
	})
	return resp
}
