package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetActiveOverlapping(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) GetByCode(ctx context.Context, code string) (*domain.Business, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Service, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) GetByBusiness(ctx context.Context, businessID int64) ([]domain.ScheduleBlock, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleBlock), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// 2030-01-07 is a Monday
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

type fixture struct {
	bookings *mockBookingRepo
	business *mockBusinessRepo
	services *mockServiceRepo
	schedule *mockScheduleRepo
	uc       *UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		bookings: &mockBookingRepo{},
		business: &mockBusinessRepo{},
		services: &mockServiceRepo{},
		schedule: &mockScheduleRepo{},
	}
	f.uc = NewUseCase(f.bookings, f.business, f.services, f.schedule, time.UTC, 62, logger.Nop())
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func (f *fixture) expectBusiness() {
	f.business.On("GetByCode", mock.Anything, "ABCD2345").
		Return(&domain.Business{ID: 1, Code: "ABCD2345"}, nil)
	f.schedule.On("GetByBusiness", mock.Anything, int64(1)).Return([]domain.ScheduleBlock{
		{BusinessID: 1, Weekday: domain.Monday, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:30"), SlotIntervalMinutes: 30},
	}, nil)
}

func TestExecute_SlotGridWithService(t *testing.T) {
	f := newFixture(monday.Add(-time.Hour))
	f.expectBusiness()
	f.services.On("GetByID", mock.Anything, int64(1), int64(10)).
		Return(&domain.Service{ID: 10, BusinessID: 1, DurationMinutes: 60, Active: true}, nil)
	f.bookings.On("GetActiveOverlapping", mock.Anything, int64(1), at(0, 0), at(24, 0)).Return([]*domain.Booking{
		{ID: 1, Start: at(9, 0), End: at(9, 30), Status: domain.StatusReserved},
	}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		BusinessCode: "abcd2345",
		ServiceID:    ptr.Ptr(int64(10)),
		From:         monday,
		To:           monday,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	// 09:00 занят, 09:30-10:30 свободен, 10:00-11:00 выходит за расписание
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
	assert.False(t, resp.Slots[2].Available)
	assert.Equal(t, at(10, 30), resp.Slots[1].End)
	assert.Equal(t, at(24, 0), resp.To)
}

func TestExecute_SlotGridWithoutService(t *testing.T) {
	f := newFixture(at(9, 15))
	f.expectBusiness()
	f.bookings.On("GetActiveOverlapping", mock.Anything, int64(1), at(0, 0), at(24*7, 0)).Return([]*domain.Booking{}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "ABCD2345", From: monday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.False(t, resp.Slots[0].Available, "past slot is unavailable")
	assert.True(t, resp.Slots[1].Available)
	assert.Equal(t, at(10, 0), resp.Slots[1].End)
	f.services.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("range too large", func(t *testing.T) {
		f := newFixture(monday)
		_, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "X", From: monday, To: monday.AddDate(0, 0, 62)})
		assert.ErrorIs(t, err, ErrRangeTooLarge)
	})

	t.Run("to before from", func(t *testing.T) {
		f := newFixture(monday)
		_, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "X", From: monday, To: monday.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("business not found", func(t *testing.T) {
		f := newFixture(monday)
		f.business.On("GetByCode", mock.Anything, "NOPE").Return(nil, businessRepo.ErrBusinessNotFound)
		_, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "nope", From: monday})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		f := newFixture(monday)
		f.expectBusiness()
		f.services.On("GetByID", mock.Anything, int64(1), int64(10)).
			Return(&domain.Service{ID: 10, BusinessID: 1, DurationMinutes: 30}, nil)
		_, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "ABCD2345", ServiceID: ptr.Ptr(int64(10)), From: monday})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("storage", func(t *testing.T) {
		f := newFixture(monday)
		f.expectBusiness()
		f.bookings.On("GetActiveOverlapping", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		_, err := f.uc.Execute(context.Background(), &Request{BusinessCode: "ABCD2345", From: monday})
		assert.ErrorIs(t, err, ErrStorage)
	})
}
