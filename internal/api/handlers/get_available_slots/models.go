package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurnosService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BusinessID int64           `json:"business_id"`
	ServiceID  *int64          `json:"service_id,omitempty"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start:     slot.Start,
			End:       slot.End,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		From:       resp.From,
		To:         resp.To,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров (даты YYYY-MM-DD)
func ToUseCaseRequest(code, fromStr, toStr string, serviceID *int64, loc *time.Location) (*getAvailableSlots.Request, error) {
	if fromStr == "" {
		return nil, fmt.Errorf("from is required")
	}
	from, err := time.ParseInLocation(domain.DateFormat, fromStr, loc)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		BusinessCode: code,
		ServiceID:    serviceID,
		From:         from,
	}
	if toStr != "" {
		to, err := time.ParseInLocation(domain.DateFormat, toStr, loc)
		if err != nil {
			return nil, err
		}
		req.To = to
	}
	return req, nil
}
