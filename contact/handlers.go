package contact

import (
	"encoding/json"
	"net/http"

	"aurumdrive/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// POST /api/contact
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	entry := h.svc.Add(input.Name, input.Email, input.Message)
	utils.SendResponse(w, http.StatusCreated, entry, "Message received", nil)
}
