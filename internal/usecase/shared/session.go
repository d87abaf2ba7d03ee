package shared

import (
	"leen-studio/internal/domain/booking"
	"leen-studio/internal/domain/cart"
	"leen-studio/internal/domain/membership"

	"github.com/google/uuid"
)

// Session is the per-browser state bag: the cart store and both wizard
// machines. Wizards are process-lifetime; only the cart survives a
// restart via its snapshot.
type Session struct {
	ID         uuid.UUID
	Cart       *cart.Cart
	Booking    *booking.Wizard
	Membership *membership.Wizard
}

func NewSession(id uuid.UUID) *Session {
	return &Session{
		ID:         id,
		Cart:       cart.New(),
		Booking:    booking.NewWizard(),
		Membership: membership.NewWizard(),
	}
}
