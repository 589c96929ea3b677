package replace_schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) ReplaceForBusiness(ctx context.Context, businessID int64, blocks []domain.ScheduleBlock) ([]domain.ScheduleBlock, error) {
	args := m.Called(ctx, businessID, blocks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleBlock), args.Error(1)
}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func newUseCase() (*UseCase, *mockBusinessRepo, *mockScheduleRepo, *inlineTx) {
	businesses := &mockBusinessRepo{}
	schedule := &mockScheduleRepo{}
	tx := &inlineTx{}
	return NewUseCase(businesses, schedule, tx, logger.Nop()), businesses, schedule, tx
}

func TestNormalize_Flat(t *testing.T) {
	blocks, err := normalize(&Request{
		OwnerUserID: 1,
		Blocks: []BlockInput{
			{Weekday: 0, Start: "09:00", End: "13:00", IntervalMinutes: 15},
			{Weekday: 0, Start: "14:00", End: "14:00"},
			{Weekday: 6, Start: "20:00", End: "24:00"},
		},
	})

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.Monday, blocks[0].Weekday)
	assert.Equal(t, 15, blocks[0].SlotIntervalMinutes)
	assert.Equal(t, domain.Sunday, blocks[1].Weekday)
	assert.Equal(t, types.TimeString("24:00"), blocks[1].EndTime)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, blocks[1].SlotIntervalMinutes)
}

func TestNormalize_Grouped(t *testing.T) {
	blocks, err := normalize(&Request{
		OwnerUserID: 1,
		Days: []DayInput{
			{Weekday: 1, IntervalMinutes: 20, Blocks: []RangeInput{{From: "09:00", To: "12:00"}, {From: "15:00", To: "10:00"}}},
			{Weekday: 2, Active: ptr.Ptr(false), Blocks: []RangeInput{{From: "09:00", To: "12:00"}}},
			{Weekday: 3, Active: ptr.Ptr(true), Blocks: []RangeInput{{From: "08:00:00", To: "09:00:00"}}},
		},
	})

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.Tuesday, blocks[0].Weekday)
	assert.Equal(t, 20, blocks[0].SlotIntervalMinutes)
	assert.Equal(t, domain.Thursday, blocks[1].Weekday)
	assert.Equal(t, types.TimeString("08:00"), blocks[1].StartTime)
}

func TestNormalize_Errors(t *testing.T) {
	cases := []struct {
		name string
		req  *Request
		want error
	}{
		{"weekday 7", &Request{OwnerUserID: 1, Blocks: []BlockInput{{Weekday: 7, Start: "09:00", End: "10:00"}}}, ErrInvalidWeekday},
		{"negative weekday", &Request{OwnerUserID: 1, Days: []DayInput{{Weekday: -1, Blocks: []RangeInput{{From: "09:00", To: "10:00"}}}}}, ErrInvalidWeekday},
		{"bad time", &Request{OwnerUserID: 1, Blocks: []BlockInput{{Weekday: 0, Start: "9am", End: "10:00"}}}, ErrInvalidInput},
		{"interval too small", &Request{OwnerUserID: 1, Blocks: []BlockInput{{Weekday: 0, Start: "09:00", End: "10:00", IntervalMinutes: 1}}}, ErrInvalidInput},
		{"both shapes", &Request{OwnerUserID: 1, Blocks: []BlockInput{{}}, Days: []DayInput{{}}}, ErrInvalidInput},
		{"no owner", &Request{}, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalize(tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExecute_ReplacesInTransaction(t *testing.T) {
	uc, businesses, schedule, tx := newUseCase()
	businesses.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 9, OwnerUserID: 5}, nil)
	schedule.On("ReplaceForBusiness", mock.Anything, int64(9), mock.MatchedBy(func(b []domain.ScheduleBlock) bool {
		return len(b) == 1 && b[0].Weekday == domain.Friday
	})).Return([]domain.ScheduleBlock{{ID: 1, BusinessID: 9, Weekday: domain.Friday}}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		OwnerUserID: 5,
		Blocks:      []BlockInput{{Weekday: 4, Start: "10:00", End: "18:00"}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.BusinessID)
	assert.Len(t, resp.Blocks, 1)
	assert.Equal(t, 1, tx.calls)
	schedule.AssertExpectations(t)
}

func TestExecute_EmptyClearsSchedule(t *testing.T) {
	uc, businesses, schedule, _ := newUseCase()
	businesses.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 9}, nil)
	schedule.On("ReplaceForBusiness", mock.Anything, int64(9), []domain.ScheduleBlock{}).Return([]domain.ScheduleBlock{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{OwnerUserID: 5})

	require.NoError(t, err)
	assert.Empty(t, resp.Blocks)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("no business", func(t *testing.T) {
		uc, businesses, _, _ := newUseCase()
		businesses.On("GetByOwner", mock.Anything, int64(5)).Return(nil, businessRepo.ErrBusinessNotFound)

		_, err := uc.Execute(context.Background(), &Request{OwnerUserID: 5})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("storage", func(t *testing.T) {
		uc, businesses, schedule, _ := newUseCase()
		businesses.On("GetByOwner", mock.Anything, int64(5)).Return(&domain.Business{ID: 9}, nil)
		schedule.On("ReplaceForBusiness", mock.Anything, int64(9), mock.Anything).Return(nil, errors.New("boom"))

		_, err := uc.Execute(context.Background(), &Request{OwnerUserID: 5})
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("invalid weekday skips storage", func(t *testing.T) {
		uc, businesses, _, _ := newUseCase()

		_, err := uc.Execute(context.Background(), &Request{OwnerUserID: 5, Blocks: []BlockInput{{Weekday: 9, Start: "09:00", End: "10:00"}}})
		assert.ErrorIs(t, err, ErrInvalidWeekday)
		businesses.AssertNotCalled(t, "GetByOwner", mock.Anything, mock.Anything)
	})
}
