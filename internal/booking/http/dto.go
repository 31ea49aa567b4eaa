package http

import (
	"github.com/peerlend/peerlend-backend/internal/booking"
	"github.com/peerlend/peerlend-backend/internal/pkg/datetime"
)

type CreateBookingBody struct {
	ItemID int64                  `json:"item_id" binding:"required"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
}

type ItemTag struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`
}

type BookerTag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID     int64                  `json:"id"`
	Item   ItemTag                `json:"item"`
	Booker BookerTag              `json:"booker"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
	Status string                 `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Item:   ItemTag{ID: b.ItemID, OwnerID: b.ItemOwnerID},
		Booker: BookerTag{ID: b.BookerID, Name: b.BookerName, Email: b.BookerEmail},
		Start:  datetime.From(b.Start),
		End:    datetime.From(b.End),
		Status: string(b.Status),
	}
}
