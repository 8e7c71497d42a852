package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeGenerator struct {
	calls int
	got   slots.GenerateRequest
	out   []domain.Slot
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, req slots.GenerateRequest) ([]domain.Slot, error) {
	f.calls++
	f.got = req
	return f.out, f.err
}

func TestParseRequest_CustomDates(t *testing.T) {
	got, err := parseRequest(&Request{
		OpenHour:    "09:00",
		CloseHour:   "13:00",
		Capacity:    5,
		CustomDates: []string{"2024-07-01", "2024-07-03", "2024-07-05"},
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", got.OpenHour.String())
	assert.Equal(t, "13:00", got.CloseHour.String())
	assert.Equal(t, 5, got.Capacity)
	assert.Equal(t, domain.StatusOpen, got.Status) // default
	require.Len(t, got.CustomDates, 3)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), got.CustomDates[0])
	assert.True(t, got.FromDate.IsZero())
}

func TestParseRequest_DateRange(t *testing.T) {
	got, err := parseRequest(&Request{
		OpenHour:  "10:00",
		CloseHour: "20:00",
		Capacity:  20,
		Status:    "closed",
		FromDate:  "2024-07-01",
		ToDate:    "2024-07-31",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusClosed, got.Status)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), got.FromDate)
	assert.Equal(t, time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), got.ToDate)
	assert.Empty(t, got.CustomDates)
}

func TestParseRequest_DeduplicatesCustomDates(t *testing.T) {
	got, err := parseRequest(&Request{
		OpenHour:    "09:00",
		CloseHour:   "13:00",
		Capacity:    5,
		CustomDates: []string{"2024-07-01", "2024-07-01", "2024-07-03"},
	})
	require.NoError(t, err)
	assert.Len(t, got.CustomDates, 2)
}

func TestParseRequest_Rejections(t *testing.T) {
	base := func() *Request {
		return &Request{
			OpenHour:    "09:00",
			CloseHour:   "13:00",
			Capacity:    5,
			CustomDates: []string{"2024-07-01"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "close not after open",
			mutate:  func(r *Request) { r.CloseHour = "09:00" },
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "close before open",
			mutate:  func(r *Request) { r.CloseHour = "08:00" },
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "malformed open hour",
			mutate:  func(r *Request) { r.OpenHour = "9am" },
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "capacity out of range",
			mutate:  func(r *Request) { r.Capacity = domain.MaxCapacity + 1 },
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "unknown status",
			mutate:  func(r *Request) { r.Status = "paused" },
			wantErr: ErrInvalidTemplate,
		},
		{
			name:    "no dates at all",
			mutate:  func(r *Request) { r.CustomDates = nil },
			wantErr: ErrInvalidDates,
		},
		{
			name: "both modes at once",
			mutate: func(r *Request) {
				r.FromDate = "2024-07-01"
				r.ToDate = "2024-07-02"
			},
			wantErr: ErrInvalidDates,
		},
		{
			name:    "unparseable custom date",
			mutate:  func(r *Request) { r.CustomDates = []string{"01/07/2024"} },
			wantErr: ErrInvalidDates,
		},
		{
			name: "inverted range",
			mutate: func(r *Request) {
				r.CustomDates = nil
				r.FromDate = "2024-07-10"
				r.ToDate = "2024-07-01"
			},
			wantErr: ErrInvalidDates,
		},
		{
			name: "range over a year",
			mutate: func(r *Request) {
				r.CustomDates = nil
				r.FromDate = "2024-01-01"
				r.ToDate = "2025-06-01"
			},
			wantErr: ErrTooManyDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := parseRequest(req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_CustomDatesTemplate(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	gen := &fakeGenerator{out: []domain.Slot{
		{ID: 1, Kind: domain.KindRecurring, Date: day, Status: domain.StatusOpen, OpenHour: "09:00", CloseHour: "13:00", Capacity: 5, AvailableSpots: 5},
		{ID: 2, Kind: domain.KindRecurring, Date: day.AddDate(0, 0, 2), Status: domain.StatusOpen, OpenHour: "09:00", CloseHour: "13:00", Capacity: 5, AvailableSpots: 5},
		{ID: 3, Kind: domain.KindRecurring, Date: day.AddDate(0, 0, 4), Status: domain.StatusOpen, OpenHour: "09:00", CloseHour: "13:00", Capacity: 5, AvailableSpots: 5},
	}}
	uc := NewUseCase(gen, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		OpenHour:    "09:00",
		CloseHour:   "13:00",
		Capacity:    5,
		CustomDates: []string{"2024-07-01", "2024-07-03", "2024-07-05"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 3)
	for _, s := range resp.Created {
		assert.Equal(t, 5, s.AvailableSpots)
	}
	assert.Equal(t, 1, gen.calls)
	assert.Len(t, gen.got.CustomDates, 3)
}

func TestUseCase_Execute_InvalidTemplateNeverReachesGenerator(t *testing.T) {
	gen := &fakeGenerator{}
	uc := NewUseCase(gen, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OpenHour:    "13:00",
		CloseHour:   "09:00",
		Capacity:    5,
		CustomDates: []string{"2024-07-01"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Equal(t, 0, gen.calls)
}

func TestUseCase_Execute_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: assert.AnError}
	uc := NewUseCase(gen, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		OpenHour:    "09:00",
		CloseHour:   "13:00",
		Capacity:    5,
		CustomDates: []string{"2024-07-01"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
