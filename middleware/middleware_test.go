package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurumdrive/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := &Claims{
		Username: "Ana",
		UserID:   "u1",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	// missing token
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/x", nil), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: got %d", rec.Code)
	}

	// garbage token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler(rec, req, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d", rec.Code)
	}

	// valid token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "guest"))
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: got %d", rec.Code)
	}
	if gotUserID != "u1" {
		t.Fatalf("userId not in context: %q", gotUserID)
	}
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT(signToken(t, "admin"))
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "admin" {
		t.Fatalf("wrong claims: %+v", claims)
	}

	if _, err := ValidateJWT(""); err == nil {
		t.Fatal("empty token must fail")
	}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("garbage token must fail")
	}
}

func TestOptionalAuth(t *testing.T) {
	var gotUserID string
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	// anonymous requests pass through with no principal
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/x", nil), nil)
	if rec.Code != http.StatusOK || gotUserID != "" {
		t.Fatalf("anonymous: got %d, userId %q", rec.Code, gotUserID)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "guest"))
	handler(rec, req, nil)
	if rec.Code != http.StatusOK || gotUserID != "u1" {
		t.Fatalf("with token: got %d, userId %q", rec.Code, gotUserID)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "guest"))
	handler(rec, req, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("guest: got %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin"))
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: got %d, want 200", rec.Code)
	}
}
