package availability

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
)

// PlaceBooking проверяет запрошенный старт и возвращает новое бронирование в статусе reserved.
//
// Порядок проверок фиксирован: интервал, расписание (ErrOutOfSchedule), конфликт (ErrSlotConflict).
// Бронирование не сохраняется, атомарность проверки и вставки обеспечивает вызывающий.
func PlaceBooking(
	business *domain.Business,
	service *domain.Service,
	requestedStart time.Time,
	blocks []domain.ScheduleBlock,
	activeBookings []*domain.Booking,
) (*domain.Booking, error) {
	end := requestedStart.Add(service.Duration())

	within, err := WithinSchedule(blocks, requestedStart, end)
	if err != nil {
		return nil, err
	}
	if !within {
		return nil, ErrOutOfSchedule
	}

	if HasConflict(activeBookings, requestedStart, end, nil) {
		return nil, ErrSlotConflict
	}

	return &domain.Booking{
		BusinessID: business.ID,
		ServiceID:  ptr.Ptr(service.ID),
		Start:      requestedStart,
		End:        end,
		Status:     domain.StatusReserved,
	}, nil
}
