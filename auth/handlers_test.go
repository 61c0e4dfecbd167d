package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aurumdrive/middleware"
	"aurumdrive/models"

	"github.com/julienschmidt/httprouter"
)

func authedRequest(t *testing.T, method, path, body string, user models.User) *http.Request {
	t.Helper()
	token, err := generateToken(user)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// A token identifies its holder even after someone else logs in and replaces
// the session record.
func TestMeResolvesTokenHolder(t *testing.T) {
	svc := newTestService(t)
	h := NewHandlers(svc)

	ana, err := svc.Register("Ana", "ana@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register("Bob", "bob@x.com", "pw2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// the session now points at Bob; Ana's token must still resolve to Ana
	rec := httptest.NewRecorder()
	middleware.Authenticate(h.Me)(rec, authedRequest(t, "GET", "/api/auth/me", "", ana), httprouter.Params{})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got models.User
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Email != "ana@x.com" {
		t.Fatalf("token holder received wrong profile: %q", got.Email)
	}
}

func TestUpdateProfileTargetsTokenHolder(t *testing.T) {
	svc := newTestService(t)
	h := NewHandlers(svc)

	ana, err := svc.Register("Ana", "ana@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	bob, err := svc.Register("Bob", "bob@x.com", "pw2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	rec := httptest.NewRecorder()
	req := authedRequest(t, "PUT", "/api/profile", `{"name":"Ana Maria"}`, ana)
	middleware.Authenticate(h.UpdateProfile)(rec, req, httprouter.Params{})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if updated, ok := svc.UserByID(ana.ID); !ok || updated.Name != "Ana Maria" {
		t.Fatalf("token holder not updated: %+v", updated)
	}
	if untouched, ok := svc.UserByID(bob.ID); !ok || untouched.Name != "Bob" {
		t.Fatalf("session user must not be touched: %+v", untouched)
	}
}

func TestUserByID(t *testing.T) {
	svc := newTestService(t)
	ana, err := svc.Register("Ana", "ana@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if got, ok := svc.UserByID(ana.ID); !ok || got.Email != "ana@x.com" {
		t.Fatalf("UserByID: %+v, %v", got, ok)
	}
	if _, ok := svc.UserByID("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
	if _, ok := svc.UserByID(""); ok {
		t.Fatal("expected miss for empty id")
	}
}
