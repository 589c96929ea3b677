package cancel_booking

import (
	"github.com/m04kA/SMC-TurnosService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model, тело необязательно
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(ownerUserID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		OwnerUserID: ownerUserID,
		Reason:      r.Reason,
	}
}
