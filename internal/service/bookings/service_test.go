package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/internal/integrations/bookingevents"
	"github.com/m04kA/SMC-TurnosService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, businessID, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	return m.Called(ctx, id, reason).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, businessID, id int64) error {
	return m.Called(ctx, businessID, id).Error(0)
}

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) ListByBusiness(ctx context.Context, businessID int64, onlyActive bool) ([]*domain.Service, error) {
	args := m.Called(ctx, businessID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event bookingevents.Event) error {
	return m.Called(ctx, event).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	bookings  *mockBookingRepo
	business  *mockBusinessRepo
	services  *mockServiceRepo
	publisher *mockPublisher
	svc       *Service
}

var now = time.Date(2030, 3, 10, 15, 30, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		business:  &mockBusinessRepo{},
		services:  &mockServiceRepo{},
		publisher: &mockPublisher{},
	}
	f.svc = NewService(f.bookings, f.business, f.services, inlineTx{}, f.publisher, time.UTC, logger.Nop())
	f.svc.timeProvider = fixedTime{now: now}

	f.business.On("GetByOwner", mock.Anything, int64(7)).Return(&domain.Business{ID: 3, OwnerUserID: 7}, nil)
	f.services.On("ListByBusiness", mock.Anything, int64(3), false).Return([]*domain.Service{{ID: 10, Name: "Corte"}}, nil)
	return f
}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         1,
		BusinessID: 3,
		ServiceID:  ptr.Ptr(int64(10)),
		Start:      now.Add(time.Hour),
		End:        now.Add(90 * time.Minute),
		Status:     status,
	}
}

func TestList_DefaultRange(t *testing.T) {
	f := newFixture()
	today := time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC)
	f.bookings.On("GetByBusinessWithFilter", mock.Anything, mock.MatchedBy(func(filter domain.BusinessBookingsFilter) bool {
		return filter.BusinessID == 3 &&
			filter.From.Equal(today) &&
			filter.To.Equal(today.AddDate(0, 0, domain.DefaultBookingsRangeDays)) &&
			!filter.IncludeInactive && filter.Status == nil
	})).Return([]*domain.Booking{booking(domain.StatusReserved)}, nil)

	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{OwnerUserID: 7})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, resp.Bookings[0].ServiceName)
	assert.Equal(t, "Corte", *resp.Bookings[0].ServiceName)
	assert.Equal(t, 30, resp.Bookings[0].DurationMinutes)
}

func TestList_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{OwnerUserID: 7, Status: ptr.Ptr("done")})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirm(t *testing.T) {
	t.Run("reserved is confirmed and published", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusReserved), nil).Once()
		f.bookings.On("UpdateStatus", mock.Anything, int64(1), domain.StatusConfirmed).Return(nil)
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusConfirmed), nil).Once()
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e bookingevents.Event) bool {
			return e.Type == bookingevents.TypeBookingConfirmed
		})).Return(nil)

		resp, err := f.svc.Confirm(context.Background(), 7, 1)

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		f.publisher.AssertExpectations(t)
	})

	t.Run("only reserved can be confirmed", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusCancelled), nil)

		_, err := f.svc.Confirm(context.Background(), 7, 1)

		assert.ErrorIs(t, err, ErrCannotConfirm)
		f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancel(t *testing.T) {
	t.Run("trims reason and survives publish error", func(t *testing.T) {
		f := newFixture()
		cancelled := booking(domain.StatusCancelled)
		cancelled.CancelReason = ptr.Ptr("cliente avisó")
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusConfirmed), nil).Once()
		f.bookings.On("Cancel", mock.Anything, int64(1), ptr.Ptr("cliente avisó")).Return(nil)
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(cancelled, nil).Once()
		f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("kafka down"))

		resp, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{OwnerUserID: 7, Reason: ptr.Ptr("  cliente avisó ")})

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusCancelled), nil)

		_, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{OwnerUserID: 7})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(3), int64(1)).Return(booking(domain.StatusReserved), nil)
	f.bookings.On("Delete", mock.Anything, int64(3), int64(1)).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e bookingevents.Event) bool {
		return e.Type == bookingevents.TypeBookingDeleted
	})).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 7, 1))
	f.bookings.AssertExpectations(t)
}

func TestOwnerScoping(t *testing.T) {
	t.Run("foreign booking is not found", func(t *testing.T) {
		f := newFixture()
		f.bookings.On("GetByID", mock.Anything, int64(3), int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

		_, err := f.svc.GetByID(context.Background(), 7, 99)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("owner without business", func(t *testing.T) {
		f := newFixture()
		f.business.On("GetByOwner", mock.Anything, int64(8)).Return(nil, businessRepo.ErrBusinessNotFound)

		_, err := f.svc.GetByID(context.Background(), 8, 1)

		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})
}
