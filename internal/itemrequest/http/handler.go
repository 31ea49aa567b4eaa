package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peerlend/peerlend-backend/internal/itemrequest"
	"github.com/peerlend/peerlend-backend/internal/pkg/response"
	"github.com/peerlend/peerlend-backend/internal/principal"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.service.Create(c.Request.Context(), principal.UserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(req))
}

func (h *Handler) ListOwn(c *gin.Context) {
	details, err := h.service.ListOwn(c.Request.Context(), principal.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RequestDetailResponse, len(details))
	for i, d := range details {
		items[i] = NewRequestDetailResponse(d)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListOthers(c *gin.Context) {
	from, _ := strconv.Atoi(c.DefaultQuery("from", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	details, total, err := h.service.ListOthers(c.Request.Context(), principal.UserID(c), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RequestDetailResponse, len(details))
	for i, d := range details {
		items[i] = NewRequestDetailResponse(d)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, from, size, total))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), principal.UserID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestDetailResponse(detail))
}
