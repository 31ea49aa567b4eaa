package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerlend/peerlend-backend/internal/booking"
	"github.com/peerlend/peerlend-backend/internal/principal"
)

// stubService records the arguments of the last call and replies with canned data.
type stubService struct {
	createReq  booking.CreateRequest
	decidedID  int64
	approved   bool
	listUserID int64
	listState  string
	listOwner  bool

	booking *booking.Booking
	err     error
}

func (s *stubService) Create(_ context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	s.createReq = req
	return s.booking, s.err
}

func (s *stubService) Decide(_ context.Context, _ int64, bookingID int64, approve bool) (*booking.Booking, error) {
	s.decidedID = bookingID
	s.approved = approve
	return s.booking, s.err
}

func (s *stubService) GetByID(_ context.Context, _ int64, _ int64) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubService) ListForBooker(_ context.Context, bookerID int64, state string) ([]*booking.Booking, error) {
	s.listUserID = bookerID
	s.listState = state
	return nil, s.err
}

func (s *stubService) ListForOwner(_ context.Context, ownerID int64, state string) ([]*booking.Booking, error) {
	s.listUserID = ownerID
	s.listState = state
	s.listOwner = true
	return nil, s.err
}

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:          7,
		ItemID:      10,
		ItemName:    "drill",
		ItemOwnerID: 1,
		BookerID:    2,
		BookerName:  "Bob",
		BookerEmail: "bob@example.com",
		Start:       time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local),
		End:         time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local),
		Status:      booking.StatusWaiting,
	}
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(&r.RouterGroup, NewHandler(svc), principal.Required())
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(principal.Header, "2")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := do(r, http.MethodPost, "/bookings",
			`{"item_id":10,"start":"2026-09-01T10:00:00","end":"2026-09-02T10:00:00"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(2), svc.createReq.BookerID)
		assert.Equal(t, int64(10), svc.createReq.ItemID)
		assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local), svc.createReq.Start)
		assert.JSONEq(t, `{
			"id": 7,
			"item": {"id": 10, "owner_id": 1},
			"booker": {"id": 2, "name": "Bob", "email": "bob@example.com"},
			"start": "2026-09-01T10:00:00",
			"end": "2026-09-02T10:00:00",
			"status": "WAITING"
		}`, w.Body.String())
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		w := do(r, http.MethodPost, "/bookings", `{"start":"2026-09-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps domain errors to their status", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrItemUnavailable})
		w := do(r, http.MethodPost, "/bookings",
			`{"item_id":10,"start":"2026-09-01T10:00:00","end":"2026-09-02T10:00:00"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires the principal header", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		req := httptest.NewRequest(http.MethodPost, "/bookings",
			strings.NewReader(`{"item_id":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecideEndpoint(t *testing.T) {
	t.Run("parses the approved flag", func(t *testing.T) {
		approved := sampleBooking()
		approved.Status = booking.StatusApproved
		svc := &stubService{booking: approved}
		r := newTestRouter(svc)

		w := do(r, http.MethodPatch, "/bookings/7?approved=true", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), svc.decidedID)
		assert.True(t, svc.approved)
		assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("rejects a missing approved flag", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		w := do(r, http.MethodPatch, "/bookings/7", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		r := newTestRouter(&stubService{})
		w := do(r, http.MethodPatch, "/bookings/abc?approved=true", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("surfaces access errors as 403", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrNoAccess})
		w := do(r, http.MethodPatch, "/bookings/7?approved=false", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetEndpoint(t *testing.T) {
	t.Run("returns the booking", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		w := do(r, http.MethodGet, "/bookings/7", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":7`)
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrNotFound})
		w := do(r, http.MethodGet, "/bookings/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListEndpoints(t *testing.T) {
	t.Run("state defaults to ALL", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		w := do(r, http.MethodGet, "/bookings", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(2), svc.listUserID)
		assert.Equal(t, string(booking.StateAll), svc.listState)
		assert.False(t, svc.listOwner)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("passes the state token through verbatim", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		do(r, http.MethodGet, "/bookings?state=WAITING", "")

		assert.Equal(t, "WAITING", svc.listState)
	})

	t.Run("owner listing uses the owner service call", func(t *testing.T) {
		svc := &stubService{}
		r := newTestRouter(svc)

		w := do(r, http.MethodGet, "/bookings/owner?state=PAST", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.listOwner)
		assert.Equal(t, "PAST", svc.listState)
	})
}
