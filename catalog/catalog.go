package catalog

import (
	"errors"
	"sync"
	"time"

	"aurumdrive/models"
)

const dateLayout = "2006-01-02"

var (
	ErrVehicleNotFound = errors.New("Vehicle not found")
	ErrInvalidRate     = errors.New("Rate must be a positive number")
)

// Criteria are the optional vehicle filters. Zero values mean "not set".
type Criteria struct {
	Brand    string
	Type     string
	Price    float64 // maximum daily rate
	From     string
	To       string
	Features []string // all listed tags must be present
	Special  bool
}

// Catalog holds the fleet. Reads dominate; the only mutation is the admin
// rate override.
type Catalog struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
}

func New() *Catalog {
	vehicles := make([]models.Vehicle, len(seedVehicles))
	copy(vehicles, seedVehicles)
	return &Catalog{vehicles: vehicles}
}

// Vehicles returns the fleet in catalog order.
func (c *Catalog) Vehicles() []models.Vehicle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

func (c *Catalog) Get(vehicleID string) (models.Vehicle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.vehicles {
		if v.ID == vehicleID {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// Brands returns the distinct brands in first-seen catalog order.
func (c *Catalog) Brands() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]bool)
	var brands []string
	for _, v := range c.vehicles {
		if !seen[v.Brand] {
			brands = append(brands, v.Brand)
			seen[v.Brand] = true
		}
	}
	return brands
}

// Filter returns the vehicles matching every set criterion, in catalog
// order. Sorting is the caller's job.
func (c *Catalog) Filter(crit Criteria) []models.Vehicle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Vehicle{}
	for _, v := range c.vehicles {
		if crit.Brand != "" && v.Brand != crit.Brand {
			continue
		}
		if crit.Type != "" && v.Type != crit.Type {
			continue
		}
		if crit.Price > 0 && v.PricePerDay > crit.Price {
			continue
		}
		if crit.Special && !v.IsSpecial {
			continue
		}
		if len(crit.Features) > 0 && !hasAllFeatures(v.Features, crit.Features) {
			continue
		}
		if !withinAvailability(v, crit.From, crit.To) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// IsAvailable runs the same window test for a single vehicle; the booking
// flow uses it as its pre-flight guard.
func (c *Catalog) IsAvailable(vehicleID, from, to string) bool {
	v, ok := c.Get(vehicleID)
	if !ok {
		return false
	}
	return withinAvailability(v, from, to)
}

// UpdateRate is the admin daily-rate override.
func (c *Catalog) UpdateRate(vehicleID string, price float64) (models.Vehicle, error) {
	if price <= 0 {
		return models.Vehicle{}, ErrInvalidRate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.vehicles {
		if c.vehicles[i].ID == vehicleID {
			c.vehicles[i].PricePerDay = price
			return c.vehicles[i], nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

func hasAllFeatures(have, want []string) bool {
	for _, f := range want {
		found := false
		for _, h := range have {
			if h == f {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// withinAvailability is a subset-window test: the requested range must fit
// inside [AvailableFrom, AvailableTo]. It never consults other bookings, so
// it does not prevent two bookings over the same dates.
func withinAvailability(v models.Vehicle, from, to string) bool {
	if from != "" {
		f, err := time.Parse(dateLayout, from)
		if err == nil {
			if af, err2 := time.Parse(dateLayout, v.AvailableFrom); err2 == nil && f.Before(af) {
				return false
			}
		}
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err == nil {
			if at, err2 := time.Parse(dateLayout, v.AvailableTo); err2 == nil && t.After(at) {
				return false
			}
		}
	}
	return true
}
