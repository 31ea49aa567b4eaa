package booking

import (
	"context"
	"time"

	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/pkg/clock"
	"github.com/peerlend/peerlend-backend/internal/user"
)

type CreateRequest struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// Decide approves or rejects a waiting booking. Only the item's owner may.
	Decide(ctx context.Context, actorID, bookingID int64, approve bool) (*Booking, error)
	// GetByID returns the booking to its booker or the item's owner.
	GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error)
	// ListForBooker returns the user's own bookings in the requested category,
	// most recently started first.
	ListForBooker(ctx context.Context, bookerID int64, state string) ([]*Booking, error)
	// ListForOwner returns bookings of the user's items in the requested
	// category, most recently started first.
	ListForOwner(ctx context.Context, ownerID int64, state string) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
	clk         clock.Clock
}

func NewService(repo Repository, userService user.Service, itemService item.Service, clk clock.Clock) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
		clk:         clk,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	booker, err := s.userService.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}
	it, err := s.itemService.GetByID(ctx, req.BookerID, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !it.Available {
		return nil, ErrItemUnavailable
	}

	// start < end strictly; equal or inverted ranges are rejected.
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidDateRange
	}
	// Neither endpoint may lie in the past.
	now := s.clk.Now()
	if req.Start.Before(now) || req.End.Before(now) {
		return nil, ErrInvalidDateRange
	}

	b := &Booking{
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
		BookerEmail: booker.Email,
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
	}

	// No overlap check against other bookings of the item: concurrent
	// requests for the same window are all recorded and the owner arbitrates.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Decide(ctx context.Context, actorID, bookingID int64, approve bool) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanDecide(actorID, b) {
		return nil, ErrNoAccess
	}

	next, err := decide(b.Status, approve)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, next); err != nil {
		return nil, err
	}
	b.Status = next
	return b, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !CanView(viewerID, b) {
		return nil, ErrNoAccess
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID int64, state string) ([]*Booking, error) {
	return s.list(ctx, bookerID, state, Filter{BookerID: bookerID})
}

func (s *service) ListForOwner(ctx context.Context, ownerID int64, state string) ([]*Booking, error) {
	return s.list(ctx, ownerID, state, Filter{OwnerID: ownerID})
}

func (s *service) list(ctx context.Context, principalID int64, state string, f Filter) ([]*Booking, error) {
	// Parse the token before touching the store.
	st, err := ParseState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, principalID); err != nil {
		return nil, err
	}

	now := s.clk.Now()
	switch st {
	case StateAll:
		// no condition
	case StatePast:
		f.EndBefore = &now
	case StateFuture:
		f.StartAfter = &now
	case StateCurrent:
		f.ActiveAt = &now
	case StateWaiting:
		f.Status = StatusWaiting
	case StateRejected:
		f.Status = StatusRejected
	}

	return s.repo.List(ctx, f)
}
