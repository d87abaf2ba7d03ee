package cart

import (
	"leen-studio/internal/domain/catalog"
)

// LineItem is a product in the cart with a quantity of at least 1.
// Identity is the product id.
type LineItem struct {
	product  catalog.Product
	quantity int
}

func (li LineItem) Product() catalog.Product { return li.product }
func (li LineItem) Quantity() int            { return li.quantity }

func (li LineItem) SubtotalCents() int64 {
	return li.product.PriceCents * int64(li.quantity)
}

// Cart is the single source of truth for purchasable-item state in a
// session: line items, saved-for-later items, the active promo and the
// drawer visibility flag. Views mutate it only through these operations,
// so the cart/saved exclusivity invariant cannot be bypassed.
type Cart struct {
	items      []LineItem
	saved      []catalog.Product
	promo      *Promo
	drawerOpen bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem increments the quantity for an existing line item or appends a
// new one with quantity 1. Unless silent, the drawer opens as a side
// effect. There is no quantity cap and no stock check.
func (c *Cart) AddItem(p catalog.Product, silent bool) {
	found := false
	for i := range c.items {
		if c.items[i].product.ID == p.ID {
			c.items[i].quantity++
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, LineItem{product: p, quantity: 1})
	}

	if !silent {
		c.drawerOpen = true
	}
}

// RemoveItem deletes the line item entirely. Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and resets any active promo.
func (c *Cart) Clear() {
	c.items = nil
	c.promo = nil
}

// ToggleSaved bookmarks a product for later, or un-saves it if already
// saved. A product can never be in the cart and saved at the same time:
// saving removes it from the cart first.
func (c *Cart) ToggleSaved(p catalog.Product) {
	for i := range c.saved {
		if c.saved[i].ID == p.ID {
			c.saved = append(c.saved[:i], c.saved[i+1:]...)
			return
		}
	}

	c.RemoveItem(p.ID)
	c.saved = append(c.saved, p)
}

// MoveToCart adds a saved product to the cart (opening the drawer) and
// removes it from the saved list.
func (c *Cart) MoveToCart(p catalog.Product) {
	c.AddItem(p, false)
	for i := range c.saved {
		if c.saved[i].ID == p.ID {
			c.saved = append(c.saved[:i], c.saved[i+1:]...)
			return
		}
	}
}

// ApplyPromo resolves the code against the allow-list and replaces any
// previously active promo. An unknown code leaves state untouched.
func (c *Cart) ApplyPromo(code string) error {
	promo, err := LookupPromo(code)
	if err != nil {
		return err
	}
	c.promo = &promo
	return nil
}

func (c *Cart) RemovePromo() {
	c.promo = nil
}

func (c *Cart) OpenDrawer()  { c.drawerOpen = true }
func (c *Cart) CloseDrawer() { c.drawerOpen = false }

func (c *Cart) DrawerOpen() bool { return c.drawerOpen }

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) SavedItems() []catalog.Product {
	out := make([]catalog.Product, len(c.saved))
	copy(out, c.saved)
	return out
}

func (c *Cart) IsSaved(productID string) bool {
	for _, p := range c.saved {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Count is the sum of line item quantities.
func (c *Cart) Count() int {
	total := 0
	for _, li := range c.items {
		total += li.quantity
	}
	return total
}

func (c *Cart) SavedCount() int {
	return len(c.saved)
}

func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, li := range c.items {
		total += li.SubtotalCents()
	}
	return total
}

// TotalCents is always derived: subtotal × (1 − discount ratio), rounded
// to the cent. Nothing is stored redundantly.
func (c *Cart) TotalCents() int64 {
	if c.promo == nil {
		return c.SubtotalCents()
	}
	return applyRatio(c.SubtotalCents(), c.promo.ratio)
}

func (c *Cart) PromoCode() string {
	if c.promo == nil {
		return ""
	}
	return c.promo.code
}

func (c *Cart) DiscountRatio() float64 {
	if c.promo == nil {
		return 0
	}
	return c.promo.ratio
}
