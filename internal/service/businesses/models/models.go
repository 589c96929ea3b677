package models

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Request модели

// ActivateRequest запрос на активацию бизнеса пользователем
type ActivateRequest struct {
	OwnerUserID int64   `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// UpdateRequest частичное обновление профиля: nil поля не меняются
type UpdateRequest struct {
	OwnerUserID  int64   `json:"-"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	TaxID        *string `json:"tax_id,omitempty" validate:"omitempty,max=32"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Category     *string `json:"category,omitempty" validate:"omitempty,max=64"`
	Social       *string `json:"social,omitempty" validate:"omitempty,max=255"`
	Website      *string `json:"website,omitempty" validate:"omitempty,max=255"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	LogoURL      *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// ListRequest фильтр публичного каталога
type ListRequest struct {
	Query    string
	Category string
	Limit    int
	Offset   int
}

// Response модели

// BusinessResponse публичный профиль бизнеса
type BusinessResponse struct {
	ID           int64     `json:"id"`
	OwnerUserID  int64     `json:"owner_user_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Code         string    `json:"code"`
	TaxID        *string   `json:"tax_id,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Social       *string   `json:"social,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BusinessListResponse страница каталога
type BusinessListResponse struct {
	Items  []BusinessResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// CategoryResponse категория и количество бизнесов в ней
type CategoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}
	return &BusinessResponse{
		ID:           b.ID,
		OwnerUserID:  b.OwnerUserID,
		Name:         b.Name,
		Description:  b.Description,
		Code:         b.Code,
		TaxID:        b.TaxID,
		Phone:        b.Phone,
		Address:      b.Address,
		Category:     b.Category,
		Social:       b.Social,
		Website:      b.Website,
		ContactEmail: b.ContactEmail,
		LogoURL:      b.LogoURL,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainCategories конвертирует счётчики категорий
func FromDomainCategories(items []domain.CategoryCount) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		result = append(result, CategoryResponse{Category: c.Category, Count: c.Count})
	}
	return result
}
