package list_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров: from, to, status, include_cancelled
func ToServiceRequest(r *http.Request, ownerUserID int64, loc *time.Location) (*models.ListBookingsRequest, error) {
	from, err := handlers.QueryTime(r, "from", loc, false)
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryTime(r, "to", loc, true)
	if err != nil {
		return nil, err
	}

	req := &models.ListBookingsRequest{
		OwnerUserID: ownerUserID,
		From:        from,
		To:          to,
	}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("include_cancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}
	// фильтр по статусу cancelled имеет смысл только вместе с отменёнными
	if req.Status != nil && *req.Status == "cancelled" {
		req.IncludeCancelled = true
	}
	return req, nil
}
