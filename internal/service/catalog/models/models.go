package models

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	OwnerUserID     int64   `json:"-"`
	Name            string  `json:"name" validate:"required,max=120"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=5,max=1440"`
	Price           float64 `json:"price" validate:"min=0"`
	Color           *string `json:"color,omitempty" validate:"omitempty,max=16"`
	Active          *bool   `json:"active,omitempty"` // nil означает true
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	OwnerUserID     int64    `json:"-"`
	ServiceID       int64    `json:"-"`
	Name            *string  `json:"name,omitempty" validate:"omitempty,max=120"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,min=5,max=1440"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Color           *string  `json:"color,omitempty" validate:"omitempty,max=16"`
	Active          *bool    `json:"active,omitempty"`
}

// Response модели

// ServiceResponse услуга бизнеса
type ServiceResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"business_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Color           *string   `json:"color,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Color:           s.Color,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(items []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		if resp := FromDomainService(s); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
