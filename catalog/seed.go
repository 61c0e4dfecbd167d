package catalog

import "aurumdrive/models"

// seedVehicles is the static fleet. Seeded at startup, never added to or
// removed from; only the daily rate changes, via the admin override.
var seedVehicles = []models.Vehicle{
	{
		ID:            "db11",
		Brand:         "Aston Martin",
		Model:         "DB11 Volante",
		Type:          "convertible",
		PricePerDay:   620,
		Rating:        4.9,
		Seats:         4,
		Transmission:  "ZF 8-speed",
		Power:         "503 hp",
		Acceleration:  "0-60 in 3.7s",
		Features:      []string{"convertible", "grand-tourer", "massage-seats", "chauffeur"},
		AvailableFrom: "2024-11-25",
		AvailableTo:   "2025-12-31",
		IsSpecial:     true,
		Image:         "https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?auto=format&fit=crop&w=1200&q=80",
		Description:   "Open-top grand tourer with handcrafted leather and Bowers & Wilkins audio.",
	},
	{
		ID:            "cayenne-turbo",
		Brand:         "Porsche",
		Model:         "Cayenne Turbo GT",
		Type:          "suv",
		PricePerDay:   540,
		Rating:        4.8,
		Seats:         5,
		Transmission:  "Tiptronic",
		Power:         "631 hp",
		Acceleration:  "0-60 in 3.1s",
		Features:      []string{"suv", "all-wheel-drive", "track-pack"},
		AvailableFrom: "2024-12-02",
		AvailableTo:   "2025-12-31",
		IsSpecial:     false,
		Image:         "https://images.unsplash.com/photo-1617472437084-5dc63b947a88?auto=format&fit=crop&w=1200&q=80",
		Description:   "Sport SUV with adaptive air suspension and Alcantara interior.",
	},
	{
		ID:            "sf90",
		Brand:         "Ferrari",
		Model:         "SF90 Stradale",
		Type:          "sports",
		PricePerDay:   1150,
		Rating:        5,
		Seats:         2,
		Transmission:  "8-speed DCT",
		Power:         "986 hp",
		Acceleration:  "0-60 in 2.0s",
		Features:      []string{"sports", "track-pack"},
		AvailableFrom: "2024-12-10",
		AvailableTo:   "2025-12-31",
		IsSpecial:     true,
		Image:         "https://images.unsplash.com/photo-1511300636408-a63a89df3482?auto=format&fit=crop&w=1200&q=80",
		Description:   "Hybrid supercar with e-boost and carbon-ceramic brakes.",
	},
	{
		ID:            "g63",
		Brand:         "Mercedes-Benz",
		Model:         "G63 AMG",
		Type:          "suv",
		PricePerDay:   480,
		Rating:        4.7,
		Seats:         5,
		Transmission:  "9-speed auto",
		Power:         "577 hp",
		Acceleration:  "0-60 in 3.9s",
		Features:      []string{"suv", "all-wheel-drive", "chauffeur", "massage-seats"},
		AvailableFrom: "2024-11-20",
		AvailableTo:   "2025-12-31",
		IsSpecial:     false,
		Image:         "https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?auto=format&fit=crop&w=1200&q=80&sat=-100",
		Description:   "Iconic silhouette with Burmester sound and diamond-stitched Nappa leather.",
	},
	{
		ID:            "rs6",
		Brand:         "Audi",
		Model:         "RS6 Avant",
		Type:          "grand-tourer",
		PricePerDay:   390,
		Rating:        4.6,
		Seats:         5,
		Transmission:  "8-speed Tiptronic",
		Power:         "591 hp",
		Acceleration:  "0-60 in 3.5s",
		Features:      []string{"grand-tourer", "all-wheel-drive", "massage-seats"},
		AvailableFrom: "2024-11-28",
		AvailableTo:   "2025-12-31",
		IsSpecial:     true,
		Image:         "https://images.unsplash.com/photo-1503736334956-4c8f8e92946d?auto=format&fit=crop&w=1200&q=80&sat=-50",
		Description:   "Avant body with quattro AWD, perfect for alpine escapes.",
	},
	{
		ID:            "ghost",
		Brand:         "Rolls-Royce",
		Model:         "Ghost Black Badge",
		Type:          "sedan",
		PricePerDay:   980,
		Rating:        5,
		Seats:         4,
		Transmission:  "8-speed auto",
		Power:         "591 hp",
		Acceleration:  "0-60 in 4.5s",
		Features:      []string{"sedan", "chauffeur", "massage-seats"},
		AvailableFrom: "2024-12-01",
		AvailableTo:   "2025-12-31",
		IsSpecial:     false,
		Image:         "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=1200&q=80",
		Description:   "Black Badge trim with starlight headliner and rear lounge seating.",
	},
}
