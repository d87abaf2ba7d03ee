package queries

import (
	"time"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/domain/cart"
	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/membership"

	"github.com/jinzhu/copier"
)

type ProductView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type ServiceView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type TierView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Subtitle         string   `json:"subtitle"`
	PriceCents       int64    `json:"priceCents"`
	Period           string   `json:"period"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
	DaycareCostCents int64    `json:"daycareCostCents"`
	Subscription     bool     `json:"subscription"`
	Highlight        bool     `json:"highlight"`
}

type CartItemView struct {
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
}

type CartView struct {
	Items         []CartItemView `json:"items"`
	Saved         []ProductView  `json:"saved"`
	Count         int            `json:"count"`
	SavedCount    int            `json:"savedCount"`
	SubtotalCents int64          `json:"subtotalCents"`
	TotalCents    int64          `json:"totalCents"`
	PromoCode     string         `json:"promoCode,omitempty"`
	DiscountRatio float64        `json:"discountRatio"`
	DrawerOpen    bool           `json:"drawerOpen"`
}

type AlignmentView struct {
	Mantra         string `json:"mantra"`
	Recommendation string `json:"recommendation"`
}

type ContactView struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Value   string `json:"value"`
}

type BookingView struct {
	Step          string         `json:"step"`
	Service       *ServiceView   `json:"service,omitempty"`
	Alignment     *AlignmentView `json:"alignment,omitempty"`
	Date          string         `json:"date,omitempty"`
	TimeSlot      string         `json:"timeSlot,omitempty"`
	DateWindow    []string       `json:"dateWindow"`
	TimeSlots     []string       `json:"timeSlots"`
	Contact       *ContactView   `json:"contact,omitempty"`
	PromoCode     string         `json:"promoCode,omitempty"`
	DiscountCents int64          `json:"discountCents"`
	Daycare       bool           `json:"daycare"`
	TotalCents    int64          `json:"totalCents"`
	TicketID      string         `json:"ticketId,omitempty"`
}

type MembershipView struct {
	Step          string    `json:"step"`
	Tier          *TierView `json:"tier,omitempty"`
	Daycare       bool      `json:"daycare"`
	Authenticated bool      `json:"authenticated"`
	TotalCents    int64     `json:"totalCents"`
	MemberID      string    `json:"memberId,omitempty"`
}

func NewProductView(p catalog.Product) ProductView {
	var v ProductView
	_ = copier.Copy(&v, &p)
	return v
}

func NewServiceView(s catalog.Service) ServiceView {
	var v ServiceView
	_ = copier.Copy(&v, &s)
	return v
}

func NewTierView(t catalog.Tier) TierView {
	var v TierView
	_ = copier.Copy(&v, &t)
	return v
}

func NewCartView(c *cart.Cart) *CartView {
	view := &CartView{
		Items:         make([]CartItemView, 0, len(c.Items())),
		Saved:         make([]ProductView, 0, c.SavedCount()),
		Count:         c.Count(),
		SavedCount:    c.SavedCount(),
		SubtotalCents: c.SubtotalCents(),
		TotalCents:    c.TotalCents(),
		PromoCode:     c.PromoCode(),
		DiscountRatio: c.DiscountRatio(),
		DrawerOpen:    c.DrawerOpen(),
	}
	for _, li := range c.Items() {
		view.Items = append(view.Items, CartItemView{
			Product:  NewProductView(li.Product()),
			Quantity: li.Quantity(),
		})
	}
	for _, p := range c.SavedItems() {
		view.Saved = append(view.Saved, NewProductView(p))
	}
	return view
}

func NewBookingView(w *booking.Wizard, now time.Time) *BookingView {
	view := &BookingView{
		Step:          w.Step().String(),
		Date:          w.Date(),
		TimeSlot:      w.TimeSlot(),
		DateWindow:    booking.DateWindow(now),
		TimeSlots:     catalog.TimeSlots,
		PromoCode:     w.PromoCode(),
		DiscountCents: w.DiscountCents(),
		Daycare:       w.Daycare(),
		TotalCents:    w.TotalCents(),
		TicketID:      w.TicketID(),
	}
	if s := w.Service(); s != nil {
		v := NewServiceView(*s)
		view.Service = &v
	}
	if a := w.Alignment(); a != nil {
		view.Alignment = &AlignmentView{
			Mantra:         a.Mantra,
			Recommendation: a.Recommendation,
		}
	}
	if c := w.Contact(); c != nil {
		view.Contact = &ContactView{
			Name:    c.Name(),
			Channel: string(c.Channel()),
			Value:   c.Value(),
		}
	}
	return view
}

func NewMembershipView(w *membership.Wizard) *MembershipView {
	view := &MembershipView{
		Step:          w.Step().String(),
		Daycare:       w.Daycare(),
		Authenticated: w.Authenticated(),
		TotalCents:    w.TotalCents(),
		MemberID:      w.MemberID(),
	}
	if t := w.Tier(); t != nil {
		v := NewTierView(*t)
		view.Tier = &v
	}
	return view
}
