package models

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// SummaryRequest запрос сводки за период
type SummaryRequest struct {
	OwnerUserID int64
	From        *time.Time // nil - начало текущего месяца
	To          *time.Time // nil - конец текущего месяца
}

// SummaryResponse сводка по бронированиям
type SummaryResponse struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	Total      int            `json:"total"`
	PerDay     []DayCount     `json:"per_day"`
	PerService []ServiceCount `json:"per_service"`
}

// DayCount количество бронирований за день
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ServiceCount статистика по услуге
type ServiceCount struct {
	ServiceID    *int64 `json:"service_id"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
	TotalMinutes int    `json:"total_minutes"`
}

// FromDomainSummary конвертирует domain сводку в DTO
func FromDomainSummary(s *domain.BookingsSummary, loc *time.Location) *SummaryResponse {
	resp := &SummaryResponse{
		From:       s.From.In(loc).Format(domain.DateFormat),
		To:         s.To.In(loc).Format(domain.DateFormat),
		Total:      s.Total,
		PerDay:     make([]DayCount, 0, len(s.PerDay)),
		PerService: make([]ServiceCount, 0, len(s.PerService)),
	}
	for _, d := range s.PerDay {
		resp.PerDay = append(resp.PerDay, DayCount{Date: d.Date, Count: d.Count})
	}
	for _, sc := range s.PerService {
		resp.PerService = append(resp.PerService, ServiceCount{
			ServiceID:    sc.ServiceID,
			Name:         sc.Name,
			Count:        sc.Count,
			TotalMinutes: sc.TotalMinutes,
		})
	}
	return resp
}
