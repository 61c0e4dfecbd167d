package analytics

import (
	"math"

	"aurumdrive/booking"
	"aurumdrive/catalog"
	"aurumdrive/models"
	"aurumdrive/reviews"
)

// slotsPerVehicle is the notional rental capacity behind the occupancy
// figure: three slots per car.
const slotsPerVehicle = 3

// npsPlaceholder is a fixed constant, not computed from data.
const npsPlaceholder = 78

// Service derives dashboard aggregates from the other components' state.
type Service struct {
	catalog  *catalog.Catalog
	bookings *booking.Service
	reviews  *reviews.Service
}

func NewService(cat *catalog.Catalog, bookings *booking.Service, revs *reviews.Service) *Service {
	return &Service{catalog: cat, bookings: bookings, reviews: revs}
}

// Metrics computes the dashboard headline numbers.
func (s *Service) Metrics() models.Metrics {
	bookings := s.bookings.Bookings()
	vehicles := s.catalog.Vehicles()

	occupancy := 0
	if len(vehicles) > 0 {
		pct := float64(len(bookings)) / float64(len(vehicles)*slotsPerVehicle) * 100
		occupancy = int(math.Min(100, math.Round(pct)))
	}

	ticket := 0
	if len(bookings) > 0 {
		var sum float64
		for _, b := range bookings {
			if v, ok := s.catalog.Get(b.VehicleID); ok {
				sum += v.PricePerDay
			}
		}
		ticket = int(math.Round(sum / float64(len(bookings))))
	}

	return models.Metrics{
		Occupancy: occupancy,
		Ticket:    ticket,
		NPS:       npsPlaceholder,
	}
}

// AdminTables bundles the dashboard tables: the fleet with per-vehicle
// booking counts, every booking, and every review regardless of status.
func (s *Service) AdminTables() models.AdminTables {
	bookings := s.bookings.Bookings()
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.VehicleID]++
	}

	vehicles := s.catalog.Vehicles()
	fleet := make([]models.FleetRow, 0, len(vehicles))
	for _, v := range vehicles {
		fleet = append(fleet, models.FleetRow{Vehicle: v, Bookings: counts[v.ID]})
	}

	return models.AdminTables{
		Fleet:    fleet,
		Bookings: bookings,
		Reviews:  s.reviews.All(),
	}
}
