package domain

import "time"

// Business is the service-providing entity ("emprendedor")
type Business struct {
	ID           int64
	OwnerUserID  int64
	Name         string
	Description  *string
	Code         string // public booking code, unique
	TaxID        *string
	Phone        *string
	Address      *string
	Category     *string
	Social       *string
	Website      *string
	ContactEmail *string
	LogoURL      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessFilter фильтр публичного списка бизнесов
type BusinessFilter struct {
	Query    string // подстрока в названии или категории
	Category string
	Limit    int
	Offset   int
}

// CategoryCount количество бизнесов в категории
type CategoryCount struct {
	Category string
	Count    int
}

// Service is something a business offers, its duration defines booking length
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           float64
	Color           *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration as time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
