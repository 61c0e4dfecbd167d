package auth

import (
	"errors"
	"log"
	"strings"
	"sync"

	"aurumdrive/kv"
	"aurumdrive/models"

	"github.com/google/uuid"
)

var (
	ErrDuplicateAccount   = errors.New("Account already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrLoginRequired      = errors.New("Login required")
)

// seedUsers bootstraps an empty store. The plaintext password here is
// migrated to a digest before the service accepts any login.
var seedUsers = []models.User{
	{ID: "admin", Name: "Admin", Email: "admin@aurumdrive.com", Password: "admin123", Role: "admin"},
}

// Service owns the user list and the single session record.
type Service struct {
	mu      sync.Mutex
	store   *kv.Store
	users   []models.User
	session *models.Session
}

// NewService loads users and the session and completes the plaintext-to-
// digest migration before returning, so credential comparison never races
// the upgrade.
func NewService(store *kv.Store) *Service {
	s := &Service{store: store}
	store.Load(kv.KeyUsers, &s.users, seedUsers)
	store.Load(kv.KeySession, &s.session, (*models.Session)(nil))
	s.migratePasswords()
	return s
}

func (s *Service) migratePasswords() {
	changed := false
	for i := range s.users {
		if IsHashed(s.users[i].Password) || strings.HasPrefix(s.users[i].Password, "legacy-") {
			continue
		}
		s.users[i].Password = HashPassword(s.users[i].Password)
		changed = true
	}
	if changed {
		log.Printf("auth: upgraded plaintext passwords to digests")
		s.store.Save(kv.KeyUsers, s.users)
	}
}

func (s *Service) Register(name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrDuplicateAccount
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: HashPassword(password),
		Role:     "guest",
	}
	s.users = append(s.users, user)
	s.store.Save(kv.KeyUsers, s.users)

	s.session = &models.Session{UserID: user.ID}
	s.store.Save(kv.KeySession, s.session)
	return user, nil
}

func (s *Service) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && VerifyPassword(u.Password, password) {
			s.session = &models.Session{UserID: u.ID}
			s.store.Save(kv.KeySession, s.session)
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session. Calling it with no session is a no-op.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.store.Save(kv.KeySession, s.session)
}

// Current returns the user bound to the active session, or nil.
func (s *Service) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Service) currentLocked() *models.User {
	if s.session == nil {
		return nil
	}
	for i := range s.users {
		if s.users[i].ID == s.session.UserID {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// UserByID returns the stored user with the given id.
func (s *Service) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		return models.User{}, false
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// UpdateProfile overwrites name and email on the session user. Empty fields
// keep their prior value.
func (s *Service) UpdateProfile(name, email string) (models.User, error) {
	user := s.Current()
	if user == nil {
		return models.User{}, ErrLoginRequired
	}
	return s.UpdateUser(user.ID, name, email)
}

// UpdateUser overwrites name and email on an explicit user, for callers that
// carry their own principal. Empty fields keep their prior value.
func (s *Service) UpdateUser(userID, name, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}
		if name != "" {
			s.users[i].Name = name
		}
		if email != "" {
			s.users[i].Email = email
		}
		s.store.Save(kv.KeyUsers, s.users)
		return s.users[i], nil
	}
	return models.User{}, ErrLoginRequired
}
