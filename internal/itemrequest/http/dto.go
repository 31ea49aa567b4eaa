package http

import (
	itemHttp "github.com/peerlend/peerlend-backend/internal/item/http"
	"github.com/peerlend/peerlend-backend/internal/itemrequest"
	"github.com/peerlend/peerlend-backend/internal/pkg/datetime"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequestResponse struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     datetime.LocalDateTime `json:"created"`
}

type RequestDetailResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestResponse(req *itemrequest.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     datetime.From(req.Created),
	}
}

func NewRequestDetailResponse(d *itemrequest.Detail) RequestDetailResponse {
	resp := RequestDetailResponse{
		RequestResponse: NewRequestResponse(&d.ItemRequest),
		Items:           make([]itemHttp.ItemResponse, len(d.Items)),
	}
	for i, it := range d.Items {
		resp.Items[i] = itemHttp.NewItemResponse(it)
	}
	return resp
}
