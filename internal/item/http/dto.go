package http

import (
	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/pkg/datetime"
)

type CreateItemBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"request_id"`
}

type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentBody struct {
	Text string `json:"text" binding:"required"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

type BookingWindowResponse struct {
	ID       int64                  `json:"id"`
	BookerID int64                  `json:"booker_id"`
	Start    datetime.LocalDateTime `json:"start"`
	End      datetime.LocalDateTime `json:"end"`
}

type CommentResponse struct {
	ID         int64                  `json:"id"`
	AuthorName string                 `json:"author_name"`
	Text       string                 `json:"text"`
	Created    datetime.LocalDateTime `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingWindowResponse `json:"last_booking"`
	NextBooking *BookingWindowResponse `json:"next_booking"`
	Comments    []CommentResponse      `json:"comments"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func NewItemDetailResponse(d *item.Detail) ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: NewItemResponse(&d.Item),
		LastBooking:  newWindowResponse(d.LastBooking),
		NextBooking:  newWindowResponse(d.NextBooking),
		Comments:     make([]CommentResponse, len(d.Comments)),
	}
	for i, cm := range d.Comments {
		resp.Comments[i] = NewCommentResponse(cm)
	}
	return resp
}

func NewCommentResponse(cm *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		AuthorName: cm.AuthorName,
		Text:       cm.Text,
		Created:    datetime.From(cm.Created),
	}
}

func newWindowResponse(w *item.BookingWindow) *BookingWindowResponse {
	if w == nil {
		return nil
	}
	return &BookingWindowResponse{
		ID:       w.ID,
		BookerID: w.BookerID,
		Start:    datetime.From(w.Start),
		End:      datetime.From(w.End),
	}
}
