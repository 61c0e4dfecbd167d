package models

// Vehicle is an immutable catalog entry. Only PricePerDay may change, via the
// admin rate override.
type Vehicle struct {
	ID            string   `json:"id"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Type          string   `json:"type"`
	PricePerDay   float64  `json:"pricePerDay"`
	Rating        float64  `json:"rating"`
	Seats         int      `json:"seats"`
	Transmission  string   `json:"transmission"`
	Power         string   `json:"power"`
	Acceleration  string   `json:"acceleration"`
	Features      []string `json:"features"`
	AvailableFrom string   `json:"availableFrom"`
	AvailableTo   string   `json:"availableTo"`
	IsSpecial     bool     `json:"isSpecial"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // digest, never plaintext after migration
	Role     string `json:"role"`               // "guest" or "admin"
}

// Session is the single persisted login record.
type Session struct {
	UserID string `json:"userId"`
}

type Booking struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	VehicleID string   `json:"vehicleId"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Location  string   `json:"location"`
	Extras    []string `json:"extras"`
	Gateway   string   `json:"gateway"`
	Status    string   `json:"status"` // confirmed, in-progress, completed, cancelled
	CreatedAt string   `json:"createdAt"`
}

// BookingPayload carries the caller-supplied booking fields.
type BookingPayload struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Location string   `json:"location"`
	Extras   []string `json:"extras"`
	Gateway  string   `json:"gateway"`
}

type Review struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId,omitempty"` // empty for anonymous submissions
	Name      string  `json:"name"`
	BookingID string  `json:"bookingId"`
	Rating    float64 `json:"rating"`
	Feedback  string  `json:"feedback"`
	Status    string  `json:"status"` // pending, approved, rejected
	CreatedAt string  `json:"createdAt"`
}

type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// Metrics is the admin analytics payload.
type Metrics struct {
	Occupancy int `json:"occupancy"`
	Ticket    int `json:"ticket"`
	NPS       int `json:"nps"`
}

// FleetRow is a catalog entry annotated with its booking count.
type FleetRow struct {
	Vehicle
	Bookings int `json:"bookings"`
}

type AdminTables struct {
	Fleet    []FleetRow `json:"fleet"`
	Bookings []Booking  `json:"bookings"`
	Reviews  []Review   `json:"reviews"`
}
