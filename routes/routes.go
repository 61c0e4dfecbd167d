package routes

import (
	"aurumdrive/analytics"
	"aurumdrive/auth"
	"aurumdrive/booking"
	"aurumdrive/catalog"
	"aurumdrive/compare"
	"aurumdrive/contact"
	"aurumdrive/middleware"
	"aurumdrive/ratelim"
	"aurumdrive/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(h.Me))
	router.PUT("/api/profile", middleware.Authenticate(h.UpdateProfile))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handlers) {
	router.GET("/api/vehicles", h.List)
	router.GET("/api/brands", h.Brands)
	router.GET("/api/vehicles/:vehicleid", h.Get)
	router.GET("/api/vehicles/:vehicleid/availability", h.Availability)
}

func AddBookingRoutes(router *httprouter.Router, h *booking.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(h.Create)))
	router.GET("/api/bookings", middleware.Authenticate(h.List))
	router.GET("/api/bookings/:bookingid/voucher", middleware.Authenticate(h.Voucher))
}

func AddReviewRoutes(router *httprouter.Router, h *reviews.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/reviews", rl.Limit(middleware.OptionalAuth(h.Add)))
	router.GET("/api/reviews", middleware.OptionalAuth(h.Public))
	router.GET("/api/reviews/average", h.Average)
}

func AddCompareRoutes(router *httprouter.Router, h *compare.Handlers) {
	router.GET("/api/compare", h.Get)
	router.GET("/api/compare/vehicles", h.Vehicles)
	router.POST("/api/compare/:vehicleid", h.Toggle)
	router.DELETE("/api/compare", h.Clear)
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handlers, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(h.Add))
}

// AddAdminRoutes wires the dashboard: tables, analytics, the mutation
// endpoints, and the live-update websocket feed.
func AddAdminRoutes(router *httprouter.Router, an *analytics.Handlers, cat *catalog.Handlers, bk *booking.Handlers, rv *reviews.Handlers, feed *booking.Feed) {
	router.GET("/api/admin/tables", middleware.RequireAdmin(an.Tables))
	router.GET("/api/admin/analytics", middleware.RequireAdmin(an.Metrics))
	router.PUT("/api/admin/vehicles/:vehicleid/rate", middleware.RequireAdmin(cat.UpdateRate))
	router.PUT("/api/admin/bookings/:bookingid/status", middleware.RequireAdmin(bk.UpdateStatus))
	router.PUT("/api/admin/reviews/:reviewid/status", middleware.RequireAdmin(rv.Moderate))
	router.GET("/ws/admin", feed.HandleWS)
}
