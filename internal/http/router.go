package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	intconfig "vahanpe/internal/config"
	h "vahanpe/internal/http/handlers"
	"vahanpe/internal/http/middleware"
)

func NewRouter(env intconfig.Env, hs h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))
	admin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		bookings := api.Group("/bookings")
		bookings.POST("", hs.CreateBooking)
		bookings.GET("", auth, admin, hs.GetBookings)
		bookings.GET("/user/:phone", hs.GetUserBookings)
		bookings.GET("/:id", hs.GetBooking)
		bookings.GET("/:id/receipt", hs.GetBookingReceipt)
		bookings.PATCH("/:id/status", auth, admin, hs.UpdateBookingStatus)

		services := api.Group("/services")
		services.GET("", hs.GetServices)
		services.PATCH("/:id", auth, admin, hs.UpdateServicePrice)

		authGroup := api.Group("/auth")
		authGroup.POST("/send-otp", hs.SendOTP)
		authGroup.POST("/verify-otp", hs.VerifyOTP)
		authGroup.POST("/admin/login", hs.AdminLogin)

		payment := api.Group("/payment")
		payment.POST("/create-order", hs.CreateOrder)
		payment.POST("/verify-payment", hs.VerifyPayment)
	}

	return r
}
