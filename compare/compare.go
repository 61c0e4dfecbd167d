package compare

import (
	"sync"

	"aurumdrive/catalog"
	"aurumdrive/kv"
	"aurumdrive/models"
)

// MaxSlots is the tray capacity. A fourth toggle is rejected, not evicting
// the oldest entry.
const MaxSlots = 3

// Tray is the visitor's comparison selection: an ordered set of vehicle ids,
// process-wide and not tied to any user.
type Tray struct {
	mu      sync.Mutex
	store   *kv.Store
	catalog *catalog.Catalog
	ids     []string
}

func NewTray(store *kv.Store, cat *catalog.Catalog) *Tray {
	t := &Tray{store: store, catalog: cat}
	store.Load(kv.KeyCompare, &t.ids, []string{})
	if len(t.ids) > MaxSlots {
		t.ids = t.ids[:MaxSlots]
		store.Save(kv.KeyCompare, t.ids)
	}
	return t
}

// Toggle removes the id when present, adds it when absent and under
// capacity, and returns the resulting selection.
func (t *Tray) Toggle(vehicleID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, id := range t.ids {
		if id == vehicleID {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			t.store.Save(kv.KeyCompare, t.ids)
			return t.idsLocked()
		}
	}
	if len(t.ids) < MaxSlots {
		t.ids = append(t.ids, vehicleID)
		t.store.Save(kv.KeyCompare, t.ids)
	}
	return t.idsLocked()
}

func (t *Tray) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = []string{}
	t.store.Save(kv.KeyCompare, t.ids)
}

func (t *Tray) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.idsLocked()
}

func (t *Tray) idsLocked() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Vehicles resolves the selection against the catalog, skipping ids that no
// longer match a vehicle.
func (t *Tray) Vehicles() []models.Vehicle {
	ids := t.IDs()
	out := []models.Vehicle{}
	for _, id := range ids {
		if v, ok := t.catalog.Get(id); ok {
			out = append(out, v)
		}
	}
	return out
}
