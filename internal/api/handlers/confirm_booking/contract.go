package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/service/bookings/models"
)

type BookingService interface {
	Confirm(ctx context.Context, ownerUserID, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
