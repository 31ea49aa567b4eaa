package itemrequest

import (
	"net/http"
	"time"

	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "item request not found")

// ItemRequest is a wishlist entry: a user describes an item they would like
// to borrow, and owners answer by listing items that reference the request.
type ItemRequest struct {
	ID          int64
	RequestorID int64
	Description string
	Created     time.Time
}

// Detail is a request together with the items offered in answer to it.
type Detail struct {
	ItemRequest
	Items []*item.Item
}
