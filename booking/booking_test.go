package booking

import (
	"testing"

	"aurumdrive/auth"
	"aurumdrive/catalog"
	"aurumdrive/kv"
	"aurumdrive/models"
)

func newTestService(t *testing.T) (*Service, *auth.Service) {
	t.Helper()
	store := kv.NewStore(kv.NewMemoryBackend())
	identity := auth.NewService(store)
	svc := NewService(store, catalog.New(), identity, nil)
	return svc, identity
}

func login(t *testing.T, identity *auth.Service) models.User {
	t.Helper()
	user, err := identity.Register("Ana", "ana@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

func TestCreateBooking(t *testing.T) {
	svc, identity := newTestService(t)
	user := login(t, identity)

	b, err := svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20", Location: "Monaco"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.UserID != user.ID {
		t.Fatalf("booking not bound to session user")
	}
	if b.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %q", b.Status)
	}
	if b.Extras == nil || len(b.Extras) != 0 {
		t.Fatalf("extras must default to an empty set, got %v", b.Extras)
	}
	if b.Gateway != "stripe" {
		t.Fatalf("gateway must default to stripe, got %q", b.Gateway)
	}
	if b.CreatedAt == "" {
		t.Fatalf("createdAt not stamped")
	}

	all := svc.Bookings()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("booking not recorded: %+v", all)
	}
}

// CreateFor binds the booking to the given user even when the session record
// points at whoever logged in last.
func TestCreateForIgnoresSessionUser(t *testing.T) {
	svc, identity := newTestService(t)
	ana := login(t, identity)
	if _, err := identity.Register("Bob", "bob@x.com", "pw2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	b, err := svc.CreateFor(ana.ID, "sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})
	if err != nil {
		t.Fatalf("CreateFor: %v", err)
	}
	if b.UserID != ana.ID {
		t.Fatalf("booking bound to %q, want %q", b.UserID, ana.ID)
	}
}

func TestCreateForRequiresPrincipal(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.CreateFor("", "sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"}); err != auth.ErrLoginRequired {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestCreateBookingRequiresLogin(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"}); err != auth.ErrLoginRequired {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	svc, identity := newTestService(t)
	login(t, identity)
	if _, err := svc.Create("batmobile", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"}); err != catalog.ErrVehicleNotFound {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestBookingIDsAreMonotonic(t *testing.T) {
	svc, identity := newTestService(t)
	login(t, identity)

	first, _ := svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})
	second, _ := svc.Create("ghost", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})

	if first.ID != "BK-100" || second.ID != "BK-101" {
		t.Fatalf("expected BK-100 then BK-101, got %s, %s", first.ID, second.ID)
	}
}

func TestBookingCounterSeededFromStore(t *testing.T) {
	store := kv.NewStore(kv.NewMemoryBackend())
	store.Save(kv.KeyBookings, []models.Booking{
		{ID: "BK-421", UserID: "u1", VehicleID: "sf90", Status: "completed"},
	})

	identity := auth.NewService(store)
	svc := NewService(store, catalog.New(), identity, nil)

	if _, err := identity.Register("Ana", "ana@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	b, err := svc.Create("ghost", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID != "BK-422" {
		t.Fatalf("counter not seeded from persisted bookings, got %s", b.ID)
	}
}

func TestUserBookings(t *testing.T) {
	svc, identity := newTestService(t)
	user := login(t, identity)

	svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})

	own := svc.UserBookings(user.ID)
	if len(own) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(own))
	}
	if got := svc.UserBookings("someone-else"); len(got) != 0 {
		t.Fatalf("expected no bookings for other user, got %d", len(got))
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, identity := newTestService(t)
	login(t, identity)

	b, _ := svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20"})

	updated, err := svc.UpdateStatus(b.ID, "completed")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != "completed" {
		t.Fatalf("status not applied: %q", updated.Status)
	}

	// no terminal-state guard: completed may go back to in-progress
	if _, err := svc.UpdateStatus(b.ID, "in-progress"); err != nil {
		t.Fatalf("re-status out of terminal state: %v", err)
	}

	if _, err := svc.UpdateStatus("BK-999", "cancelled"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(b.ID, "teleported"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRenderVoucher(t *testing.T) {
	svc, identity := newTestService(t)
	login(t, identity)

	b, _ := svc.Create("sf90", models.BookingPayload{From: "2024-12-15", To: "2024-12-20", Location: "Monaco"})
	v, _ := svc.catalog.Get("sf90")

	pdfBytes, err := RenderVoucher(b, v, "Ana")
	if err != nil {
		t.Fatalf("RenderVoucher: %v", err)
	}
	if len(pdfBytes) == 0 || string(pdfBytes[:5]) != "%PDF-" {
		t.Fatalf("expected a PDF document")
	}
}
