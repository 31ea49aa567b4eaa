package booking

import (
	"context"

	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/pkg/clock"
)

// ItemBookingSource adapts the booking store to the item module's
// BookingSource interface.
type ItemBookingSource struct {
	repo Repository
	clk  clock.Clock
}

func NewItemBookingSource(repo Repository, clk clock.Clock) *ItemBookingSource {
	return &ItemBookingSource{repo: repo, clk: clk}
}

// Windows resolves the item's last and next booking windows against the
// current instant.
func (s *ItemBookingSource) Windows(ctx context.Context, itemID int64) (last, next *item.BookingWindow, err error) {
	bookings, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	l, n := Windows(bookings, s.clk.Now())
	return toWindow(l), toWindow(n), nil
}

// HasPastBooking reports whether the user has a finished booking of the item.
// This is the comment-eligibility check; it is deliberately independent of
// the window resolver.
func (s *ItemBookingSource) HasPastBooking(ctx context.Context, userID, itemID int64) (bool, error) {
	now := s.clk.Now()
	past, err := s.repo.List(ctx, Filter{BookerID: userID, EndBefore: &now})
	if err != nil {
		return false, err
	}
	return CanComment(userID, itemID, past), nil
}

func toWindow(b *Booking) *item.BookingWindow {
	if b == nil {
		return nil
	}
	return &item.BookingWindow{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
