package reviews

import (
	"errors"
	"math"
	"sync"
	"time"

	"aurumdrive/kv"
	"aurumdrive/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
	ErrNotFound      = errors.New("Review not found")
	ErrInvalidStatus = errors.New("Invalid review status")
)

// Notifier receives change events for the admin dashboard feed.
type Notifier interface {
	Notify(event string)
}

var seedReviews = []models.Review{
	{
		ID:        "r1",
		Name:      "Alexis D.",
		BookingID: "BK-421",
		Rating:    5,
		Status:    "approved",
		Feedback:  "Car arrived detailed and warm, concierge tracked our flight delay and waited with patience.",
		CreatedAt: "2024-10-10",
	},
	{
		ID:        "r2",
		Name:      "Carter L.",
		BookingID: "BK-388",
		Rating:    4,
		Status:    "approved",
		Feedback:  "Booked the RS6 for a Dolomites drive. Navigation pre-loaded and snow kit included.",
		CreatedAt: "2024-09-02",
	},
	{
		ID:        "r3",
		Name:      "Nina P.",
		BookingID: "BK-402",
		Rating:    5,
		Status:    "approved",
		Feedback:  "Identity check and payment were seamless. Chauffeur for the Ghost was immaculate.",
		CreatedAt: "2024-11-03",
	},
}

type AddInput struct {
	UserID    string  `json:"-"` // set from the token when present, never from the body
	Name      string  `json:"name"`
	BookingID string  `json:"bookingId"` // free-text reference, not checked against bookings
	Rating    float64 `json:"rating"`
	Feedback  string  `json:"feedback"`
}

// Service owns the review list, most-recent-first.
type Service struct {
	mu      sync.Mutex
	store   *kv.Store
	feed    Notifier
	reviews []models.Review
}

// NewService loads and normalizes the persisted reviews. Older store layouts
// carried out-of-range ratings and records without status or createdAt;
// those are repaired (or dropped) here and re-persisted once.
func NewService(store *kv.Store, feed Notifier) *Service {
	s := &Service{store: store, feed: feed}
	store.Load(kv.KeyReviews, &s.reviews, seedReviews)
	s.normalize()
	return s
}

func (s *Service) normalize() {
	sanitized := make([]models.Review, 0, len(s.reviews))
	changed := false

	for _, r := range s.reviews {
		if math.IsNaN(r.Rating) || math.IsInf(r.Rating, 0) {
			changed = true
			continue
		}
		clamped := math.Min(5, math.Max(1, r.Rating))
		if clamped != r.Rating {
			r.Rating = clamped
			changed = true
		}
		if r.CreatedAt == "" {
			r.CreatedAt = time.Now().Format(time.RFC3339)
			changed = true
		}
		if r.Status == "" {
			r.Status = "pending"
			changed = true
		}
		sanitized = append(sanitized, r)
	}

	s.reviews = sanitized
	if changed {
		s.store.Save(kv.KeyReviews, s.reviews)
	}
}

// Add records a guest submission. Out-of-range ratings are rejected, never
// silently clamped.
func (s *Service) Add(input AddInput) (models.Review, error) {
	if math.IsNaN(input.Rating) || math.IsInf(input.Rating, 0) {
		return models.Review{}, ErrInvalidRating
	}
	if math.Min(5, math.Max(1, input.Rating)) != input.Rating {
		return models.Review{}, ErrInvalidRating
	}

	review := models.Review{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Name:      input.Name,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Feedback:  input.Feedback,
		Status:    "pending",
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.reviews = append([]models.Review{review}, s.reviews...)
	s.store.Save(kv.KeyReviews, s.reviews)
	s.mu.Unlock()

	if s.feed != nil {
		s.feed.Notify("review-added")
	}
	return review, nil
}

// All returns every review regardless of moderation status.
func (s *Service) All() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

// Public returns only approved reviews, for the guest-facing page.
func (s *Service) Public() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Review{}
	for _, r := range s.reviews {
		if r.Status == "approved" {
			out = append(out, r)
		}
	}
	return out
}

// VisibleTo returns the approved reviews plus the given user's own pending
// submissions, so a guest sees their review while it awaits moderation.
// Rejected reviews stay hidden even from their author.
func (s *Service) VisibleTo(userID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Review{}
	for _, r := range s.reviews {
		if r.Status == "approved" || (r.Status == "pending" && userID != "" && r.UserID == userID) {
			out = append(out, r)
		}
	}
	return out
}

// Average is the mean of all positive ratings across every status, rounded
// to one decimal. Zero when no ratings qualify.
func (s *Service) Average() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	var count int
	for _, r := range s.reviews {
		if r.Rating > 0 {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

// Moderate sets a review to approved or rejected.
func (s *Service) Moderate(id, status string) (models.Review, error) {
	if status != "approved" && status != "rejected" {
		return models.Review{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID != id {
			continue
		}
		s.reviews[i].Status = status
		s.store.Save(kv.KeyReviews, s.reviews)
		if s.feed != nil {
			s.feed.Notify("review-moderated")
		}
		return s.reviews[i], nil
	}
	return models.Review{}, ErrNotFound
}
