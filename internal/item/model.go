package item

import (
	"context"
	"net/http"
	"time"

	"github.com/peerlend/peerlend-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner          = apperror.New(http.StatusForbidden, "only the owner may edit the item")
	ErrCommentNotAllowed = apperror.New(http.StatusBadRequest, "commenting requires a finished booking of the item")
)

// Item is a lendable thing listed by its owner.
type Item struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64 // set when the item answers a wishlist request
}

// Comment is feedback left by a user who finished a booking of the item.
type Comment struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}

// BookingWindow is the slice of a booking the item views need: who booked and when.
type BookingWindow struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// BookingSource supplies booking-derived facts about an item. Implemented by the
// booking module; declared here so this package does not depend on it.
type BookingSource interface {
	// Windows returns the most recently finished and the nearest upcoming
	// booking of the item, either of which may be nil.
	Windows(ctx context.Context, itemID int64) (last, next *BookingWindow, err error)
	// HasPastBooking reports whether the user has at least one booking of the
	// item that already ended.
	HasPastBooking(ctx context.Context, userID, itemID int64) (bool, error)
}

// Detail is an item together with its view annotations.
type Detail struct {
	Item
	LastBooking *BookingWindow
	NextBooking *BookingWindow
	Comments    []*Comment
}
