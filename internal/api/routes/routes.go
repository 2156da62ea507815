// server/internal/api/routes/routes.go
package routes

import (
	"time"

	"booking-management-api-server/config"
	"booking-management-api-server/internal/api/handlers"
	"booking-management-api-server/internal/api/middleware"
	"booking-management-api-server/internal/repository"
	"booking-management-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the handlers onto a gin engine. uploader may be nil, in
// which case POST /exports answers 503.
func SetupRouter(
	cfg config.Config,
	drivers repository.DriverRepository,
	bookings repository.BookingRepository,
	store handlers.Pinger,
	wsHub *socket.Hub,
	uploader handlers.SnapshotUploader,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg.CORS)))

	driverHandler := &handlers.DriverHandler{Drivers: drivers, Hub: wsHub}
	bookingHandler := &handlers.BookingHandler{Bookings: bookings, Hub: wsHub}
	diagnosticsHandler := &handlers.DiagnosticsHandler{Store: store, Timeout: cfg.Mongo.Timeout}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}
	exportHandler := &handlers.ExportHandler{Drivers: drivers, Bookings: bookings, Uploader: uploader}

	router.GET("/health", diagnosticsHandler.Health)
	router.GET("/ws", webSocketHandler.ServeWs)

	diagnostics := router.Group("/diagnostics")
	{
		diagnostics.GET("/ping", diagnosticsHandler.Ping)
	}

	driverRoutes := router.Group("/drivers")
	{
		driverRoutes.GET("", driverHandler.GetAllDrivers)
		driverRoutes.POST("", driverHandler.CreateDriver)
		driverRoutes.PATCH("/:id", driverHandler.UpdateAvailability)
	}

	bookingRoutes := router.Group("/bookings")
	{
		bookingRoutes.GET("", bookingHandler.GetAllBookings)
		bookingRoutes.POST("", bookingHandler.CreateBooking)
		bookingRoutes.PATCH("", bookingHandler.UpdateBookingStatus)
	}

	router.POST("/exports", exportHandler.CreateExport)

	return router
}

// corsConfig allows every origin when none is listed or "*" is among them.
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowOrigins
	return c
}
