package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aurumdrive/analytics"
	"aurumdrive/auth"
	"aurumdrive/booking"
	"aurumdrive/catalog"
	"aurumdrive/compare"
	"aurumdrive/contact"
	"aurumdrive/kv"
	"aurumdrive/ratelim"
	"aurumdrive/reviews"
	"aurumdrive/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// app bundles the service graph. The kv store is built once here and handed
// down; no component reaches for a global.
type app struct {
	catalog   *catalog.Catalog
	identity  *auth.Service
	feed      *booking.Feed
	bookings  *booking.Service
	reviews   *reviews.Service
	tray      *compare.Tray
	contacts  *contact.Service
	analytics *analytics.Service
}

func newApp(store *kv.Store) *app {
	cat := catalog.New()
	identity := auth.NewService(store)
	feed := booking.NewFeed()
	bookings := booking.NewService(store, cat, identity, feed)
	revs := reviews.NewService(store, feed)

	return &app{
		catalog:   cat,
		identity:  identity,
		feed:      feed,
		bookings:  bookings,
		reviews:   revs,
		tray:      compare.NewTray(store, cat),
		contacts:  contact.NewService(store),
		analytics: analytics.NewService(cat, bookings, revs),
	}
}

func setupRouter(a *app, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	authHandlers := auth.NewHandlers(a.identity)
	catalogHandlers := catalog.NewHandlers(a.catalog)
	bookingHandlers := booking.NewHandlers(a.bookings)
	reviewHandlers := reviews.NewHandlers(a.reviews)
	compareHandlers := compare.NewHandlers(a.tray)
	contactHandlers := contact.NewHandlers(a.contacts)
	analyticsHandlers := analytics.NewHandlers(a.analytics)

	routes.AddAuthRoutes(router, authHandlers, rateLimiter)
	routes.AddCatalogRoutes(router, catalogHandlers)
	routes.AddBookingRoutes(router, bookingHandlers, rateLimiter)
	routes.AddReviewRoutes(router, reviewHandlers, rateLimiter)
	routes.AddCompareRoutes(router, compareHandlers)
	routes.AddContactRoutes(router, contactHandlers, rateLimiter)
	routes.AddAdminRoutes(router, analyticsHandlers, catalogHandlers, bookingHandlers, reviewHandlers, a.feed)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	store := kv.NewStore(kv.OpenFromEnv())
	log.Printf("state backend: %s", store.BackendName())

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(newApp(store), rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
