package compare

import (
	"net/http"

	"aurumdrive/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	tray *Tray
}

func NewHandlers(tray *Tray) *Handlers {
	return &Handlers{tray: tray}
}

// POST /api/compare/:vehicleid
func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vehicleID := ps.ByName("vehicleid")
	if _, ok := h.tray.catalog.Get(vehicleID); !ok {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.tray.Toggle(vehicleID))
}

// DELETE /api/compare
func (h *Handlers) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.tray.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/compare
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.tray.IDs())
}

// GET /api/compare/vehicles
func (h *Handlers) Vehicles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.tray.Vehicles())
}
