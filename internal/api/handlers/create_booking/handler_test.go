package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-TurnosService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const body = `{"business_code":"ABCD2345","service_id":10,"start":"2030-01-07T09:00:00Z","client_name":"Ana"}`

func TestHandle_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"slot conflict", fmt.Errorf("%w: taken", createBooking.ErrSlotConflict), http.StatusConflict},
		{"out of schedule", createBooking.ErrOutOfSchedule, http.StatusConflict},
		{"business not found", createBooking.ErrBusinessNotFound, http.StatusNotFound},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"invalid interval", createBooking.ErrInvalidInterval, http.StatusBadRequest},
		{"start in past", createBooking.ErrStartInPast, http.StatusBadRequest},
		{"storage", createBooking.ErrStorage, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tc.err)
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(body)))

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.OwnerUserID == nil && req.BusinessCode == "ABCD2345" && req.ServiceID == 10 && req.Start.Equal(start)
	})).Return(&createBooking.Response{ID: 1, BusinessID: 2, Start: start, End: start.Add(30 * time.Minute), Status: "reserved"}, nil)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"reserved"`)
}

func TestHandle_ByBusinessID(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.OwnerUserID == nil && req.BusinessCode == "" && req.BusinessID == 2 && req.ServiceID == 10
	})).Return(&createBooking.Response{ID: 1, BusinessID: 2, Status: "reserved"}, nil)
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings",
		strings.NewReader(`{"business_id":2,"service_id":10,"start":"2030-01-07T09:00:00Z"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_BadRequests(t *testing.T) {
	cases := map[string]string{
		"broken json":   `{"service_id":`,
		"unknown field": `{"service_id":10,"start":"2030-01-07T09:00:00Z","business_code":"X","foo":1}`,
		"no service":    `{"business_code":"ABCD2345","start":"2030-01-07T09:00:00Z"}`,
		"no code":       `{"service_id":10,"start":"2030-01-07T09:00:00Z"}`,
		"negative id":   `{"business_id":-2,"service_id":10,"start":"2030-01-07T09:00:00Z"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, logger.Nop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", strings.NewReader(payload)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_OwnerWithoutCode(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.OwnerUserID != nil && *req.OwnerUserID == 7
	})).Return(&createBooking.Response{ID: 1}, nil)
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.Nop()).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/my/bookings",
		strings.NewReader(`{"service_id":10,"start":"2030-01-07T09:00:00Z"}`))
	req.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}
