package availability

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [s1, e1) и [s2, e2).
// Соприкосновение концами пересечением не считается.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// HasConflict true, если [start, end) пересекается с любым активным бронированием,
// кроме excludeID. Отменённые бронирования пропускаются, даже если переданы.
func HasConflict(bookings []*domain.Booking, start, end time.Time, excludeID *int64) bool {
	for _, booking := range bookings {
		if booking == nil || !booking.IsActive() {
			continue
		}
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if Overlaps(start, end, booking.Start, booking.End) {
			return true
		}
	}
	return false
}
