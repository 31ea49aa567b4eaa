package user

import (
	"net/http"

	"github.com/peerlend/peerlend-backend/internal/pkg/apperror"
)

var (
	ErrNotFound   = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken = apperror.New(http.StatusConflict, "email already in use")
)

// User is an account identity referenced by items and bookings.
type User struct {
	ID    int64
	Name  string
	Email string
}
