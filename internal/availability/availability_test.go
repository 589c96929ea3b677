package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/ptr"
	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

var loc = time.FixedZone("ART", -3*60*60)

// 2025-03-10 is a Monday
func monday(hh, mm int) time.Time {
	return time.Date(2025, 3, 10, hh, mm, 0, 0, loc)
}

func block(day domain.Weekday, from, to string, interval int) domain.ScheduleBlock {
	return domain.ScheduleBlock{
		BusinessID:          1,
		Weekday:             day,
		StartTime:           types.TimeString(from),
		EndTime:             types.TimeString(to),
		SlotIntervalMinutes: interval,
	}
}

func reserved(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{ID: id, BusinessID: 1, Start: start, End: end, Status: domain.StatusReserved}
}

func TestGenerateSlots_MondayMorning(t *testing.T) {
	blocks := []domain.ScheduleBlock{block(domain.Monday, "09:00", "13:00", 30)}

	slots := GenerateSlots(blocks, monday(0, 0), monday(23, 59))

	require.Len(t, slots, 8)
	for i, s := range slots {
		assert.Equal(t, monday(9, 0).Add(time.Duration(i)*30*time.Minute), s)
	}
	assert.Equal(t, monday(12, 30), slots[7])
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name   string
		blocks []domain.ScheduleBlock
		from   time.Time
		to     time.Time
		want   []time.Time
	}{
		{
			name:   "slot ending exactly at block end is kept",
			blocks: []domain.ScheduleBlock{block(domain.Monday, "09:00", "10:00", 20)},
			from:   monday(0, 0),
			to:     monday(23, 0),
			want:   []time.Time{monday(9, 0), monday(9, 20), monday(9, 40)},
		},
		{
			name:   "partial trailing slot is dropped",
			blocks: []domain.ScheduleBlock{block(domain.Monday, "09:00", "10:00", 25)},
			from:   monday(0, 0),
			to:     monday(23, 0),
			want:   []time.Time{monday(9, 0), monday(9, 25)},
		},
		{
			name:   "range bounds are inclusive",
			blocks: []domain.ScheduleBlock{block(domain.Monday, "09:00", "11:00", 30)},
			from:   monday(9, 30),
			to:     monday(10, 30),
			want:   []time.Time{monday(9, 30), monday(10, 0), monday(10, 30)},
		},
		{
			name: "overlapping blocks are deduplicated and sorted",
			blocks: []domain.ScheduleBlock{
				block(domain.Monday, "10:00", "11:00", 30),
				block(domain.Monday, "09:00", "10:30", 30),
			},
			from: monday(0, 0),
			to:   monday(23, 0),
			want: []time.Time{monday(9, 0), monday(9, 30), monday(10, 0), monday(10, 30)},
		},
		{
			name:   "other weekdays are ignored",
			blocks: []domain.ScheduleBlock{block(domain.Tuesday, "09:00", "10:00", 30)},
			from:   monday(0, 0),
			to:     monday(23, 0),
			want:   []time.Time{},
		},
		{
			name:   "invalid block yields nothing",
			blocks: []domain.ScheduleBlock{block(domain.Monday, "10:00", "09:00", 30)},
			from:   monday(0, 0),
			to:     monday(23, 0),
			want:   []time.Time{},
		},
		{
			name:   "reversed range",
			blocks: []domain.ScheduleBlock{block(domain.Monday, "09:00", "10:00", 30)},
			from:   monday(23, 0),
			to:     monday(0, 0),
			want:   []time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.blocks, tt.from, tt.to))
		})
	}
}

func TestGenerateSlots_SpansWeek(t *testing.T) {
	blocks := []domain.ScheduleBlock{
		block(domain.Monday, "09:00", "10:00", 60),
		block(domain.Sunday, "18:00", "19:00", 60),
	}

	slots := GenerateSlots(blocks, monday(0, 0), monday(0, 0).AddDate(0, 0, 7).Add(23*time.Hour))

	assert.Equal(t, []time.Time{
		monday(9, 0),
		time.Date(2025, 3, 16, 18, 0, 0, 0, loc),
		time.Date(2025, 3, 17, 9, 0, 0, 0, loc),
	}, slots)
}

func TestGenerateSlots_Properties(t *testing.T) {
	blocks := []domain.ScheduleBlock{
		block(domain.Monday, "08:15", "12:40", 25),
		block(domain.Monday, "11:00", "14:00", 45),
		block(domain.Wednesday, "16:00", "20:00", 15),
	}
	from := monday(10, 0)
	to := monday(10, 0).AddDate(0, 0, 3)

	slots := GenerateSlots(blocks, from, to)
	require.NotEmpty(t, slots)

	for i, s := range slots {
		assert.False(t, s.Before(from), "slot %s before range", s)
		assert.False(t, s.After(to), "slot %s after range", s)
		if i > 0 {
			assert.True(t, slots[i-1].Before(s), "slots must be strictly ascending")
		}

		fits := false
		for _, b := range domain.BlocksForWeekday(blocks, domain.WeekdayOf(s)) {
			end, err := b.EndTime.On(s)
			require.NoError(t, err)
			if !s.Add(time.Duration(b.SlotIntervalMinutes) * time.Minute).After(end) {
				fits = true
			}
		}
		assert.True(t, fits, "slot %s does not fit any block", s)
	}
}

func TestWithinSchedule(t *testing.T) {
	blocks := []domain.ScheduleBlock{block(domain.Monday, "09:00", "13:00", 30)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
		wantErr    error
	}{
		{name: "starts before block", start: monday(8, 45), end: monday(9, 15), want: false},
		{name: "fully inside", start: monday(9, 15), end: monday(9, 45), want: true},
		{name: "whole block", start: monday(9, 0), end: monday(13, 0), want: true},
		{name: "ends after block", start: monday(12, 45), end: monday(13, 15), want: false},
		{name: "wrong weekday", start: monday(9, 0).AddDate(0, 0, 1), end: monday(9, 30).AddDate(0, 0, 1), want: false},
		{name: "empty interval", start: monday(9, 0), end: monday(9, 0), wantErr: ErrInvalidInterval},
		{name: "reversed interval", start: monday(10, 0), end: monday(9, 0), wantErr: ErrInvalidInterval},
		{name: "crosses midnight", start: monday(23, 30), end: monday(23, 30).Add(time.Hour), wantErr: ErrCrossDayInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithinSchedule(blocks, tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinSchedule_NoBlocks(t *testing.T) {
	got, err := WithinSchedule(nil, monday(9, 0), monday(9, 30))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestWithinSchedule_EndsAtMidnight(t *testing.T) {
	blocks := []domain.ScheduleBlock{block(domain.Monday, "22:00", "24:00", 60)}

	got, err := WithinSchedule(blocks, monday(23, 0), monday(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWithinSchedule_MonotonicallyRestrictive(t *testing.T) {
	blocks := []domain.ScheduleBlock{
		block(domain.Monday, "09:00", "11:00", 30),
		block(domain.Monday, "14:00", "18:00", 30),
	}

	for startMin := 8 * 60; startMin < 19*60; startMin += 15 {
		start := monday(0, 0).Add(time.Duration(startMin) * time.Minute)
		prev := true
		for length := 15; startMin+length <= 20*60; length += 15 {
			got, err := WithinSchedule(blocks, start, start.Add(time.Duration(length)*time.Minute))
			require.NoError(t, err)
			if !prev {
				assert.False(t, got, "widening [%s, +%dm) turned false into true", start.Format("15:04"), length)
			}
			prev = got
		}
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Booking{reserved(1, monday(9, 0), monday(9, 30))}

	tests := []struct {
		name       string
		start, end time.Time
		exclude    *int64
		want       bool
	}{
		{name: "partial overlap", start: monday(9, 15), end: monday(9, 45), want: true},
		{name: "touching end", start: monday(9, 30), end: monday(10, 0), want: false},
		{name: "touching start", start: monday(8, 30), end: monday(9, 0), want: false},
		{name: "identical", start: monday(9, 0), end: monday(9, 30), want: true},
		{name: "containing", start: monday(8, 0), end: monday(10, 0), want: true},
		{name: "contained", start: monday(9, 10), end: monday(9, 20), want: true},
		{name: "excluded booking", start: monday(9, 0), end: monday(9, 30), exclude: ptr.Ptr(int64(1)), want: false},
		{name: "exclude other id", start: monday(9, 0), end: monday(9, 30), exclude: ptr.Ptr(int64(2)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(existing, tt.start, tt.end, tt.exclude))
		})
	}
}

func TestHasConflict_CancelledIsInactive(t *testing.T) {
	b := reserved(1, monday(9, 0), monday(9, 30))
	bookings := []*domain.Booking{b}
	require.True(t, HasConflict(bookings, monday(9, 15), monday(9, 45), nil))

	b.Status = domain.StatusCancelled

	assert.False(t, HasConflict(bookings, monday(9, 15), monday(9, 45), nil))
}

func TestPlaceBooking(t *testing.T) {
	business := &domain.Business{ID: 1}
	service := &domain.Service{ID: 5, BusinessID: 1, DurationMinutes: 30}
	blocks := []domain.ScheduleBlock{block(domain.Monday, "09:00", "13:00", 30)}

	t.Run("success", func(t *testing.T) {
		got, err := PlaceBooking(business, service, monday(9, 30), blocks, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1), got.BusinessID)
		assert.Equal(t, int64(5), *got.ServiceID)
		assert.Equal(t, monday(9, 30), got.Start)
		assert.Equal(t, monday(10, 0), got.End)
		assert.Equal(t, domain.StatusReserved, got.Status)
	})

	t.Run("out of schedule", func(t *testing.T) {
		_, err := PlaceBooking(business, service, monday(12, 45), blocks, nil)
		assert.ErrorIs(t, err, ErrOutOfSchedule)
	})

	t.Run("schedule is checked before conflicts", func(t *testing.T) {
		existing := []*domain.Booking{reserved(1, monday(8, 0), monday(9, 0))}
		_, err := PlaceBooking(business, service, monday(8, 30), blocks, existing)
		assert.ErrorIs(t, err, ErrOutOfSchedule)
	})

	t.Run("conflict", func(t *testing.T) {
		existing := []*domain.Booking{reserved(1, monday(9, 0), monday(9, 30))}
		_, err := PlaceBooking(business, &domain.Service{ID: 5, DurationMinutes: 30}, monday(9, 15), blocks, existing)
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("zero duration service", func(t *testing.T) {
		_, err := PlaceBooking(business, &domain.Service{ID: 5}, monday(9, 0), blocks, nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestPlaceBooking_RoundTrip(t *testing.T) {
	business := &domain.Business{ID: 1}
	service := &domain.Service{ID: 5, BusinessID: 1, DurationMinutes: 45}
	blocks := []domain.ScheduleBlock{block(domain.Monday, "09:00", "13:00", 15)}

	first, err := PlaceBooking(business, service, monday(10, 0), blocks, nil)
	require.NoError(t, err)
	first.ID = 100

	_, err = PlaceBooking(business, service, monday(10, 30), blocks, []*domain.Booking{first})
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = PlaceBooking(business, service, monday(10, 45), blocks, []*domain.Booking{first})
	assert.NoError(t, err)
}

func TestMarkAvailability(t *testing.T) {
	blocks := []domain.ScheduleBlock{block(domain.Monday, "09:00", "11:00", 30)}
	bookings := []*domain.Booking{reserved(1, monday(9, 30), monday(10, 0))}
	slots := GenerateSlots(blocks, monday(0, 0), monday(23, 0))

	t.Run("with service duration", func(t *testing.T) {
		got := MarkAvailability(slots, blocks, bookings, time.Hour)

		require.Len(t, got, 4)
		assert.False(t, got[0].Available) // 09:00-10:00 overlaps booking
		assert.False(t, got[1].Available) // 09:30-10:30 overlaps booking
		assert.True(t, got[2].Available)  // 10:00-11:00
		assert.False(t, got[3].Available) // 10:30-11:30 leaves the block
		assert.Equal(t, monday(11, 0), got[2].End)
	})

	t.Run("grid only", func(t *testing.T) {
		got := MarkAvailability(slots, blocks, bookings, 0)

		require.Len(t, got, 4)
		assert.True(t, got[0].Available)
		assert.False(t, got[1].Available)
		assert.True(t, got[2].Available)
		assert.Equal(t, monday(9, 30), got[0].End)
	})
}
