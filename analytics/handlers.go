package analytics

import (
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

// GET /api/admin/analytics
func (h *Handlers) Metrics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.svc.Metrics())
}

// GET /api/admin/tables
func (h *Handlers) Tables(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.svc.AdminTables())
}
