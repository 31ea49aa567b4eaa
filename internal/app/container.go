package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/peerlend/peerlend-backend/internal/api"
	"github.com/peerlend/peerlend-backend/internal/booking"
	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/itemrequest"
	"github.com/peerlend/peerlend-backend/internal/pkg/clock"
	"github.com/peerlend/peerlend-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       zerolog.Logger
	Clock        clock.Clock
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.System()
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Booking store is shared by the booking module and the item views.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingSource := booking.NewItemBookingSource(bookingRepo, clk)

	// Item module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, bookingSource)

	// Item request module
	requestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	requestService := itemrequest.NewService(requestRepo, itemRepo, userService)

	// Booking module
	bookingService := booking.NewService(bookingRepo, userService, itemService, clk)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Logger:         cfg.Logger,
		UserService:    userService,
		ItemService:    itemService,
		RequestService: requestService,
		BookingService: bookingService,
	})

	return &Container{Router: router}
}
