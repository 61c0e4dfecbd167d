package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"aurumdrive/globals"
	"aurumdrive/middleware"
	"aurumdrive/models"
	"aurumdrive/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 12 * time.Hour

// Handlers is the HTTP surface over the identity service. Tokens mirror the
// persisted session record; the record stays authoritative for the core.
type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Name,
		UserID:   user.ID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func sanitize(u models.User) models.User {
	u.Password = ""
	return u
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	log.Printf("auth: registered %s", user.Email)
	utils.SendResponse(w, http.StatusCreated, map[string]any{
		"token": tokenString,
		"user":  sanitize(user),
	}, "Registration successful", nil)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": tokenString,
		"user":  sanitize(user),
	}, "Login successful", nil)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.svc.Logout()
	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

// Me resolves the caller from the token, not from the session record, so a
// token holder never observes whoever logged in last.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok := h.svc.UserByID(utils.GetUserIDFromRequest(r))
	if !ok {
		http.Error(w, ErrLoginRequired.Error(), http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sanitize(user))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.svc.UpdateUser(utils.GetUserIDFromRequest(r), input.Name, input.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sanitize(user))
}
