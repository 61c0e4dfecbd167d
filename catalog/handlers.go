package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurumdrive/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	cat *Catalog
}

func NewHandlers(cat *Catalog) *Handlers {
	return &Handlers{cat: cat}
}

// GET /api/vehicles?brand=&type=&price=&from=&to=&features=a,b&special=true
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	crit := Criteria{
		Brand:    q.Get("brand"),
		Type:     q.Get("type"),
		Price:    utils.ParseFloat(q.Get("price")),
		From:     q.Get("from"),
		To:       q.Get("to"),
		Features: utils.ParseCSV(q.Get("features")),
		Special:  utils.ParseBool(q.Get("special")),
	}
	utils.RespondWithJSON(w, http.StatusOK, h.cat.Filter(crit))
}

// GET /api/brands
func (h *Handlers) Brands(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.cat.Brands())
}

// GET /api/vehicles/:vehicleid
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	v, ok := h.cat.Get(ps.ByName("vehicleid"))
	if !ok {
		http.Error(w, ErrVehicleNotFound.Error(), http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, v)
}

// GET /api/vehicles/:vehicleid/availability?from=&to=
func (h *Handlers) Availability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	q := r.URL.Query()
	available := h.cat.IsAvailable(ps.ByName("vehicleid"), q.Get("from"), q.Get("to"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// PUT /api/admin/vehicles/:vehicleid/rate
func (h *Handlers) UpdateRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		PricePerDay float64 `json:"pricePerDay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	v, err := h.cat.UpdateRate(ps.ByName("vehicleid"), input.PricePerDay)
	if err != nil {
		if errors.Is(err, ErrInvalidRate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, v)
}
