package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/peerlend/peerlend-backend/internal/booking"
	bookingHttp "github.com/peerlend/peerlend-backend/internal/booking/http"
	"github.com/peerlend/peerlend-backend/internal/item"
	itemHttp "github.com/peerlend/peerlend-backend/internal/item/http"
	"github.com/peerlend/peerlend-backend/internal/itemrequest"
	requestHttp "github.com/peerlend/peerlend-backend/internal/itemrequest/http"
	"github.com/peerlend/peerlend-backend/internal/metrics"
	"github.com/peerlend/peerlend-backend/internal/principal"
	"github.com/peerlend/peerlend-backend/internal/user"
	userHttp "github.com/peerlend/peerlend-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	UserService    user.Service
	ItemService    item.Service
	RequestService itemrequest.Service
	BookingService booking.Service
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logging,
// metrics), the operational endpoints and the module routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", principal.Header}
	r.Use(cors.New(corsConfig))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// principalMiddleware: requires the gateway-forwarded user id header.
	principalMiddleware := principal.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	root := r.Group("/")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, principalMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, principalMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, principalMiddleware)
	}

	return r
}
