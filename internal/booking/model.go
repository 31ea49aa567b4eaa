package booking

import (
	"net/http"
	"time"

	"github.com/peerlend/peerlend-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrNoAccess         = apperror.New(http.StatusForbidden, "no access to booking")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "invalid booking date range")
	ErrAlreadyDecided   = apperror.New(http.StatusBadRequest, "booking has already been decided")
)

// Status is the lifecycle state of a booking. CANCELED is representable in
// storage but no operation produces it.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// decide is the only status transition: WAITING goes to APPROVED or REJECTED
// exactly once. Re-deciding an already decided booking is an error.
func decide(s Status, approve bool) (Status, error) {
	if s != StatusWaiting {
		return s, ErrAlreadyDecided
	}
	if approve {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}

// State selects a listing category. Temporal states (PAST, CURRENT, FUTURE)
// are computed against the current instant; WAITING and REJECTED match the
// booking status literally. The categories overlap on purpose: a WAITING
// booking starting in the future is returned by both FUTURE and WAITING.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a raw token to a State. An empty token means ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch s := State(raw); s {
	case StateAll, StatePast, StateCurrent, StateFuture, StateWaiting, StateRejected:
		return s, nil
	}
	return "", apperror.Newf(http.StatusBadRequest, "unknown state: %s", raw)
}

// Booking links a booker to an item for a time window. Rows are hydrated with
// the item and booker attributes the views need.
type Booking struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	BookerEmail string
	Start       time.Time
	End         time.Time
	Status      Status
}

// Filter selects bookings for one listing category. Exactly one principal
// field (BookerID or OwnerID) is set, plus at most one category condition.
type Filter struct {
	BookerID   int64
	OwnerID    int64
	ItemID     int64
	Status     Status
	EndBefore  *time.Time // end < t
	StartAfter *time.Time // start > t
	ActiveAt   *time.Time // start <= t <= end
}
