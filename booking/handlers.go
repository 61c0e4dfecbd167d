package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurumdrive/auth"
	"aurumdrive/catalog"
	"aurumdrive/models"
	"aurumdrive/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// POST /api/bookings
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		VehicleID string   `json:"vehicleId"`
		From      string   `json:"from"`
		To        string   `json:"to"`
		Location  string   `json:"location"`
		Extras    []string `json:"extras"`
		Gateway   string   `json:"gateway"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.VehicleID == "" || input.From == "" || input.To == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if input.To <= input.From {
		http.Error(w, "Return date must be after pickup date", http.StatusBadRequest)
		return
	}
	// Availability pre-flight: the engine itself records blindly.
	if !h.svc.catalog.IsAvailable(input.VehicleID, input.From, input.To) {
		http.Error(w, "Vehicle not available for the requested dates", http.StatusConflict)
		return
	}

	// The booking belongs to the token holder, not to the session record.
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	b, err := h.svc.CreateFor(userID, input.VehicleID, models.BookingPayload{
		From:     input.From,
		To:       input.To,
		Location: input.Location,
		Extras:   input.Extras,
		Gateway:  input.Gateway,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrLoginRequired):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, catalog.ErrVehicleNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "Failed to create booking", http.StatusInternalServerError)
		}
		return
	}
	utils.SendResponse(w, http.StatusCreated, b, "Booking confirmed", nil)
}

// GET /api/bookings — the session user's bookings
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.svc.UserBookings(userID))
}

// GET /api/bookings/:bookingid/voucher
func (h *Handlers) Voucher(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	b, ok := h.svc.Get(ps.ByName("bookingid"))
	if !ok {
		http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	if b.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	v, ok := h.svc.catalog.Get(b.VehicleID)
	if !ok {
		http.Error(w, catalog.ErrVehicleNotFound.Error(), http.StatusNotFound)
		return
	}

	// Stamp the voucher with the booking owner's name, which may differ from
	// the caller when an admin downloads it.
	guestName := ""
	if owner, ok := h.svc.identity.UserByID(b.UserID); ok {
		guestName = owner.Name
	}

	pdfBytes, err := RenderVoucher(b, v, guestName)
	if err != nil {
		http.Error(w, "Failed to generate voucher", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=voucher-"+b.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// PUT /api/admin/bookings/:bookingid/status
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	b, err := h.svc.UpdateStatus(ps.ByName("bookingid"), input.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, b)
}
