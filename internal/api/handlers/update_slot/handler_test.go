package update_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somriures/SC-BookingConsole/internal/domain"
	"github.com/somriures/SC-BookingConsole/internal/service/slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type echoMessages struct{}

func (echoMessages) T(key string) string { return key }

type fakeService struct {
	cached map[int64]domain.Slot
	update func(id int64, req slots.UpdateRequest) (domain.Slot, error)

	updateCalls int
}

func (f *fakeService) GetSlot(id int64) (domain.Slot, bool) {
	s, ok := f.cached[id]
	return s, ok
}

func (f *fakeService) Update(_ context.Context, id int64, req slots.UpdateRequest) (domain.Slot, error) {
	f.updateCalls++
	if f.update == nil {
		return domain.Slot{}, nil
	}
	return f.update(id, req)
}

func patchSlot(t *testing.T, h *Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/slots/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_UncachedSlotRejected(t *testing.T) {
	svc := &fakeService{cached: map[int64]domain.Slot{}}
	h := NewHandler(svc, echoMessages{}, nopLogger{})

	// Without a cached slot there is no date to anchor the times on; the
	// request must be rejected before anything goes upstream.
	rec := patchSlot(t, h, "7", `{"startTime": "10:00", "endTime": "12:00"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, svc.updateCalls)
	assert.Contains(t, rec.Body.String(), "slot.not_found")
}

func TestHandler_AnchorsTimesOnCachedDate(t *testing.T) {
	date := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
	start := date.Add(17 * time.Hour)
	end := date.Add(19 * time.Hour)
	cached := domain.Slot{
		ID:        5,
		Kind:      domain.KindEvent,
		Date:      date,
		Status:    domain.StatusOpen,
		StartTime: &start,
		EndTime:   &end,
	}

	var gotReq slots.UpdateRequest
	svc := &fakeService{
		cached: map[int64]domain.Slot{5: cached},
		update: func(id int64, req slots.UpdateRequest) (domain.Slot, error) {
			gotReq = req
			return cached, nil
		},
	}
	h := NewHandler(svc, echoMessages{}, nopLogger{})

	rec := patchSlot(t, h, "5", `{"startTime": "10:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotReq.StartTime)
	assert.Equal(t, time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC), *gotReq.StartTime)
}

func TestHandler_InvalidID(t *testing.T) {
	svc := &fakeService{cached: map[int64]domain.Slot{}}
	h := NewHandler(svc, echoMessages{}, nopLogger{})

	rec := patchSlot(t, h, "abc", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.updateCalls)
}
