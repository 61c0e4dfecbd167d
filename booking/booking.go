package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"aurumdrive/auth"
	"aurumdrive/catalog"
	"aurumdrive/kv"
	"aurumdrive/models"
)

var (
	ErrNotFound      = errors.New("Booking not found")
	ErrInvalidStatus = errors.New("Invalid booking status")
)

var allowedStatuses = map[string]bool{
	"confirmed":   true,
	"in-progress": true,
	"completed":   true,
	"cancelled":   true,
}

// Service records bookings. It does not re-validate the date window or check
// other bookings for the same vehicle; the caller runs the availability guard
// first. Once appended a booking is never deleted, only re-statused.
type Service struct {
	mu       sync.Mutex
	store    *kv.Store
	catalog  *catalog.Catalog
	identity *auth.Service
	feed     *Feed
	bookings []models.Booking
	nextRef  int
}

func NewService(store *kv.Store, cat *catalog.Catalog, identity *auth.Service, feed *Feed) *Service {
	s := &Service{store: store, catalog: cat, identity: identity, feed: feed}
	store.Load(kv.KeyBookings, &s.bookings, []models.Booking{})
	s.nextRef = 100
	for _, b := range s.bookings {
		if n, ok := parseRef(b.ID); ok && n >= s.nextRef {
			s.nextRef = n + 1
		}
	}
	return s
}

// parseRef extracts the number from a "BK-NNN" id.
func parseRef(id string) (int, bool) {
	rest, found := strings.CutPrefix(id, "BK-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Create appends a booking for the session user.
func (s *Service) Create(vehicleID string, payload models.BookingPayload) (models.Booking, error) {
	user := s.identity.Current()
	if user == nil {
		return models.Booking{}, auth.ErrLoginRequired
	}
	return s.CreateFor(user.ID, vehicleID, payload)
}

// CreateFor appends a booking for an explicit user, for callers that carry
// their own principal instead of relying on the session record.
func (s *Service) CreateFor(userID, vehicleID string, payload models.BookingPayload) (models.Booking, error) {
	if userID == "" {
		return models.Booking{}, auth.ErrLoginRequired
	}
	if _, ok := s.catalog.Get(vehicleID); !ok {
		return models.Booking{}, catalog.ErrVehicleNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	extras := payload.Extras
	if extras == nil {
		extras = []string{}
	}
	gateway := payload.Gateway
	if gateway == "" {
		gateway = "stripe"
	}

	b := models.Booking{
		ID:        fmt.Sprintf("BK-%03d", s.nextRef),
		UserID:    userID,
		VehicleID: vehicleID,
		From:      payload.From,
		To:        payload.To,
		Location:  payload.Location,
		Extras:    extras,
		Gateway:   gateway,
		Status:    "confirmed",
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.nextRef++
	s.bookings = append(s.bookings, b)
	s.store.Save(kv.KeyBookings, s.bookings)

	if s.feed != nil {
		s.feed.Notify("booking-created")
	}
	return b, nil
}

// Bookings returns every booking in creation order.
func (s *Service) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Service) UserBookings(userID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Service) Get(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// UpdateStatus is the admin transition. Any status may overwrite any other;
// there is no terminal-state guard.
func (s *Service) UpdateStatus(id, status string) (models.Booking, error) {
	if !allowedStatuses[status] {
		return models.Booking{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		s.bookings[i].Status = status
		s.store.Save(kv.KeyBookings, s.bookings)
		if s.feed != nil {
			s.feed.Notify("booking-updated")
		}
		return s.bookings[i], nil
	}
	return models.Booking{}, ErrNotFound
}
