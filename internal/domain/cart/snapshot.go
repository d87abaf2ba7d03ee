package cart

import (
	"leen-studio/internal/domain/catalog"
)

// Snapshot is the persisted shape of a cart. Only line items and saved
// items survive a reload; promo and drawer state are session-lifetime.
type Snapshot struct {
	Cart  []ItemSnapshot    `json:"cart"`
	Saved []ProductSnapshot `json:"saved"`
}

type ProductSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type ItemSnapshot struct {
	ProductSnapshot
	Quantity int `json:"quantity"`
}

func snapshotProduct(p catalog.Product) ProductSnapshot {
	return ProductSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		PriceCents:  p.PriceCents,
		Description: p.Description,
		Image:       p.Image,
		Category:    string(p.Category),
	}
}

func (ps ProductSnapshot) toProduct() catalog.Product {
	return catalog.Product{
		ID:          ps.ID,
		Name:        ps.Name,
		PriceCents:  ps.PriceCents,
		Description: ps.Description,
		Image:       ps.Image,
		Category:    catalog.ProductCategory(ps.Category),
	}
}

func (c *Cart) Snapshot() Snapshot {
	snap := Snapshot{
		Cart:  make([]ItemSnapshot, 0, len(c.items)),
		Saved: make([]ProductSnapshot, 0, len(c.saved)),
	}
	for _, li := range c.items {
		snap.Cart = append(snap.Cart, ItemSnapshot{
			ProductSnapshot: snapshotProduct(li.product),
			Quantity:        li.quantity,
		})
	}
	for _, p := range c.saved {
		snap.Saved = append(snap.Saved, snapshotProduct(p))
	}
	return snap
}

// Restore rebuilds a cart from a snapshot. Entries without an id or with
// a non-positive quantity are dropped rather than rejected; a corrupt
// snapshot must never be fatal.
func Restore(snap Snapshot) *Cart {
	c := New()
	for _, item := range snap.Cart {
		if item.ID == "" || item.Quantity < 1 {
			continue
		}
		c.items = append(c.items, LineItem{
			product:  item.toProduct(),
			quantity: item.Quantity,
		})
	}
	for _, p := range snap.Saved {
		if p.ID == "" {
			continue
		}
		c.saved = append(c.saved, p.toProduct())
	}
	return c
}
