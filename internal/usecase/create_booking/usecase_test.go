package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/integrations/partyapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

type fakeSlots struct {
	slots      map[int64]domain.Slot
	refreshed  []time.Time
	refreshErr error
}

func (f *fakeSlots) GetSlot(id int64) (domain.Slot, bool) {
	s, ok := f.slots[id]
	return s, ok
}

func (f *fakeSlots) RefreshDay(_ context.Context, date time.Time) error {
	f.refreshed = append(f.refreshed, date)
	return f.refreshErr
}

type fakeSubmitter struct {
	calls int
	got   partyapi.BookingDraft
	out   domain.Booking
	err   error
}

func (f *fakeSubmitter) CreateBooking(_ context.Context, draft partyapi.BookingDraft) (domain.Booking, error) {
	f.calls++
	f.got = draft
	return f.out, f.err
}

func openSlot(id int64, spots int) domain.Slot {
	return domain.Slot{
		ID:             id,
		Kind:           domain.KindRecurring,
		Date:           day,
		Status:         domain.StatusOpen,
		OpenHour:       "09:00",
		CloseHour:      "13:00",
		Capacity:       10,
		AvailableSpots: spots,
	}
}

func validRequest() *Request {
	return &Request{
		SlotID:       1,
		Name:         "Marta Puig",
		Phone:        "+34 600 111 222",
		NumberOfKids: 2,
	}
}

func TestUseCase_Execute_SubmitsAndRefreshesDay(t *testing.T) {
	slots := &fakeSlots{slots: map[int64]domain.Slot{1: openSlot(1, 10)}}
	submitter := &fakeSubmitter{out: domain.Booking{ID: 7, SlotID: 1, Status: domain.BookingPending, NumberOfKids: 2}}
	uc := NewUseCase(slots, submitter, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Booking.ID)
	assert.Equal(t, 1, submitter.calls)
	assert.Equal(t, "Marta Puig", submitter.got.Name)
	require.Len(t, slots.refreshed, 1)
	assert.Equal(t, day, slots.refreshed[0])
}

func TestUseCase_Execute_ClosedSlotRejectedBeforeNetwork(t *testing.T) {
	closed := openSlot(1, 10)
	closed.Status = domain.StatusClosed

	slots := &fakeSlots{slots: map[int64]domain.Slot{1: closed}}
	submitter := &fakeSubmitter{}
	uc := NewUseCase(slots, submitter, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotClosed)
	assert.Equal(t, 0, submitter.calls)
	assert.Empty(t, slots.refreshed)
}

func TestUseCase_Execute_FullSlotRejectedBeforeNetwork(t *testing.T) {
	slots := &fakeSlots{slots: map[int64]domain.Slot{1: openSlot(1, 0)}}
	submitter := &fakeSubmitter{}
	uc := NewUseCase(slots, submitter, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Equal(t, 0, submitter.calls)
}

func TestUseCase_Execute_BookedEventRejected(t *testing.T) {
	start := day.Add(17 * time.Hour)
	end := start.Add(2 * time.Hour)
	event := domain.Slot{
		ID:        1,
		Kind:      domain.KindEvent,
		Date:      day,
		Status:    domain.StatusOpen,
		StartTime: &start,
		EndTime:   &end,
		Booked:    true,
	}

	slots := &fakeSlots{slots: map[int64]domain.Slot{1: event}}
	submitter := &fakeSubmitter{}
	uc := NewUseCase(slots, submitter, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Equal(t, 0, submitter.calls)
}

func TestUseCase_Execute_UnknownSlot(t *testing.T) {
	slots := &fakeSlots{slots: map[int64]domain.Slot{}}
	submitter := &fakeSubmitter{}
	uc := NewUseCase(slots, submitter, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Equal(t, 0, submitter.calls)
}

func TestUseCase_Execute_FieldValidation(t *testing.T) {
	longComment := make([]byte, domain.MaxCommentsLength+1)
	for i := range longComment {
		longComment[i] = 'a'
	}
	long := string(longComment)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"empty name", func(r *Request) { r.Name = "   " }, ErrMissingContact},
		{"empty phone", func(r *Request) { r.Phone = "" }, ErrMissingContact},
		{"zero kids", func(r *Request) { r.NumberOfKids = 0 }, ErrInvalidKids},
		{"too many kids", func(r *Request) { r.NumberOfKids = domain.MaxNumberOfKids + 1 }, ErrInvalidKids},
		{"comments too long", func(r *Request) { r.Comments = &long }, ErrCommentsTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := &fakeSlots{slots: map[int64]domain.Slot{1: openSlot(1, 10)}}
			submitter := &fakeSubmitter{}
			uc := NewUseCase(slots, submitter, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, submitter.calls)
		})
	}
}

func TestUseCase_Execute_SubmissionFailure(t *testing.T) {
	slots := &fakeSlots{slots: map[int64]domain.Slot{1: openSlot(1, 10)}}
	submitter := &fakeSubmitter{err: partyapi.ErrUnavailable}
	uc := NewUseCase(slots, submitter, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, slots.refreshed)
}

func TestUseCase_Execute_RefreshFailureDoesNotFailBooking(t *testing.T) {
	slots := &fakeSlots{
		slots:      map[int64]domain.Slot{1: openSlot(1, 10)},
		refreshErr: partyapi.ErrUnavailable,
	}
	submitter := &fakeSubmitter{out: domain.Booking{ID: 7, SlotID: 1}}
	uc := NewUseCase(slots, submitter, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Booking.ID)
}
