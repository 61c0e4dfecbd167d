package contact

import (
	"sync"
	"time"

	"aurumdrive/kv"
	"aurumdrive/models"

	"github.com/google/uuid"
)

// Service appends concierge enquiries. Write-only: nothing reads them back
// through the API.
type Service struct {
	mu       sync.Mutex
	store    *kv.Store
	contacts []models.ContactMessage
}

func NewService(store *kv.Store) *Service {
	s := &Service{store: store}
	store.Load(kv.KeyContacts, &s.contacts, []models.ContactMessage{})
	return s
}

func (s *Service) Add(name, email, message string) models.ContactMessage {
	entry := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, entry)
	s.store.Save(kv.KeyContacts, s.contacts)
	return entry
}
