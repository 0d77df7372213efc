package branches

import "fmt"

// Directory is the static registry of servicing locations. The declaration
// order of its entries is significant: distance ties resolve to the branch
// listed first.
type Directory struct {
	entries []Branch
}

// NewDirectory validates the seed entries and builds an immutable directory.
func NewDirectory(entries []Branch) (*Directory, error) {
	seen := make(map[string]struct{}, len(entries))
	for _, b := range entries {
		if b.ID == "" {
			return nil, fmt.Errorf("branch with empty id")
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("duplicate branch id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.DeliveryRadiusKm <= 0 {
			return nil, fmt.Errorf("branch %q: delivery radius must be positive", b.ID)
		}
		if b.BaseDeliveryFee < 0 || b.ExtraFeePerKm < 0 {
			return nil, fmt.Errorf("branch %q: fees must not be negative", b.ID)
		}
		if b.PrepTimeMins < 0 || b.DeliveryTimeMins < 0 {
			return nil, fmt.Errorf("branch %q: prep and delivery minutes must not be negative", b.ID)
		}
		if err := b.Coord.Validate(); err != nil {
			return nil, fmt.Errorf("branch %q: %w", b.ID, err)
		}
	}
	cpy := make([]Branch, len(entries))
	copy(cpy, entries)
	return &Directory{entries: cpy}, nil
}

// All returns every branch in declaration order.
func (d *Directory) All() []Branch {
	cpy := make([]Branch, len(d.entries))
	copy(cpy, d.entries)
	return cpy
}

// Active returns the active branches in declaration order.
func (d *Directory) Active() []Branch {
	var active []Branch
	for _, b := range d.entries {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active
}

// FindByID returns the branch with the given id, or nil when unknown.
func (d *Directory) FindByID(id string) *Branch {
	for i := range d.entries {
		if d.entries[i].ID == id {
			cpy := d.entries[i]
			return &cpy
		}
	}
	return nil
}
