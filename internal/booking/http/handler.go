package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peerlend/peerlend-backend/internal/booking"
	"github.com/peerlend/peerlend-backend/internal/metrics"
	"github.com/peerlend/peerlend-backend/internal/pkg/response"
	"github.com/peerlend/peerlend-backend/internal/principal"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		BookerID: principal.UserID(c),
		ItemID:   body.ItemID,
		Start:    body.Start.Time,
		End:      body.End.Time,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.IncBookingCreated()
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Decide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	approve, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved must be true or false"})
		return
	}

	b, err := h.service.Decide(c.Request.Context(), principal.UserID(c), id, approve)
	if err != nil {
		response.Error(c, err)
		return
	}

	if approve {
		metrics.IncBookingDecision("approved")
	} else {
		metrics.IncBookingDecision("rejected")
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), principal.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListForBooker(c *gin.Context) {
	state := c.DefaultQuery("state", string(booking.StateAll))

	bookings, err := h.service.ListForBooker(c.Request.Context(), principal.UserID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(bookings))
}

func (h *Handler) ListForOwner(c *gin.Context) {
	state := c.DefaultQuery("state", string(booking.StateAll))

	bookings, err := h.service.ListForOwner(c.Request.Context(), principal.UserID(c), state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(bookings))
}

func toResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
