package reviews

import (
	"encoding/json"
	"errors"
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

// POST /api/reviews — anonymous submissions allowed; a token, when present,
// binds the review to its author.
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input AddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}
	input.UserID = utils.GetUserIDFromRequest(r)

	review, err := h.svc.Add(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.SendResponse(w, http.StatusCreated, review, "Review submitted for moderation", nil)
}

// GET /api/reviews — approved only, plus the caller's own pending ones when
// a token is present.
func (h *Handlers) Public(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		utils.RespondWithJSON(w, http.StatusOK, h.svc.VisibleTo(userID))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.svc.Public())
}

// GET /api/reviews/average
func (h *Handlers) Average(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"average": h.svc.Average(),
		"count":   len(h.svc.Public()),
	})
}

// PUT /api/admin/reviews/:reviewid/status
func (h *Handlers) Moderate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	review, err := h.svc.Moderate(ps.ByName("reviewid"), input.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}
