package booking

import (
	"time"

	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/payment"
)

// Wizard is the booking flow state machine. All fields accumulate across
// steps and survive backward navigation; only Reset clears them.
type Wizard struct {
	step Step

	service     *catalog.Service
	soulChecked bool
	alignment   *Alignment

	date     string
	timeSlot string

	contact *Contact

	promoCode     string
	discountCents int64
	daycare       bool
	method        payment.Method

	ticketID string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepService}
}

func (w *Wizard) Step() Step { return w.step }

// SelectService picks a catalog service directly and advances to the
// schedule step.
func (w *Wizard) SelectService(s catalog.Service) {
	w.service = &s
	w.step = StepSchedule
}

// RecordAlignment stores a soul-check result and advances. A matched
// service becomes the suggestion-driven selection; no selection is forced
// when the match misses.
func (w *Wizard) RecordAlignment(a Alignment) {
	w.soulChecked = true
	w.alignment = &a
	if matched, ok := MatchRecommendation(a.Recommendation); ok {
		w.service = &matched
	}
	w.step = StepSchedule
}

// SelectSchedule requires a date within the seven-day window and one of
// the fixed time slots. Both are mandatory to advance.
func (w *Wizard) SelectSchedule(now time.Time, date, slot string) error {
	if w.step < StepSchedule {
		return ErrInvalidTransition
	}
	if err := w.gate(StepSchedule); err != nil {
		return err
	}
	if w.service == nil {
		// The soul-check path may land here without a selection; a
		// service must be picked before the schedule locks in.
		return ErrServiceRequired
	}
	if date == "" || slot == "" {
		return ErrScheduleRequired
	}
	if !inDateWindow(now, date) {
		return ErrDateOutOfWindow
	}
	if !catalog.IsValidTimeSlot(slot) {
		return ErrUnknownTimeSlot
	}

	w.date = date
	w.timeSlot = slot
	w.step = StepContact
	return nil
}

// SetContact validates and stores contact details, advancing to the
// offering step.
func (w *Wizard) SetContact(name string, channel ContactChannel, value string) error {
	if w.step < StepContact {
		return ErrInvalidTransition
	}
	if err := w.gate(StepContact); err != nil {
		return err
	}

	contact, err := NewContact(name, channel, value)
	if err != nil {
		return err
	}

	w.contact = &contact
	w.step = StepOffering
	return nil
}

// ApplyPromo applies a flat-amount code at the offering step. An unknown
// code resets the discount to zero and reports failure.
func (w *Wizard) ApplyPromo(code string) error {
	if w.step < StepOffering {
		return ErrInvalidTransition
	}
	normalized, cents, err := LookupPromo(code)
	if err != nil {
		w.promoCode = ""
		w.discountCents = 0
		return err
	}
	w.promoCode = normalized
	w.discountCents = cents
	return nil
}

func (w *Wizard) SetDaycare(add bool) {
	w.daycare = add
}

// TotalCents is the offering-step review total: service price plus the
// daycare flat fee when toggled, minus any promo amount, floored at zero.
func (w *Wizard) TotalCents() int64 {
	if w.service == nil {
		return 0
	}
	total := w.service.PriceCents
	if w.daycare {
		total += DaycareFeeCents
	}
	total -= w.discountCents
	if total < 0 {
		total = 0
	}
	return total
}

// Confirm settles the offering step after processing and issues the
// ticket. The gate requires the accumulated service, schedule and contact
// state, so a ticket can never exist for an incomplete booking.
func (w *Wizard) Confirm(now time.Time, daycare bool, method payment.Method) (string, error) {
	if w.step == StepTicket {
		return "", ErrAlreadyConfirmed
	}
	if w.step != StepOffering {
		return "", ErrInvalidTransition
	}
	if err := w.gate(StepOffering); err != nil {
		return "", err
	}

	w.daycare = daycare
	w.method = method
	w.ticketID = NewTicketID(now)
	w.step = StepTicket
	return w.ticketID, nil
}

// Back moves one step backward. State is retained, never cleared.
func (w *Wizard) Back() error {
	if w.step <= StepService {
		return ErrInvalidTransition
	}
	w.step--
	return nil
}

// Reset returns every field to its initial value.
func (w *Wizard) Reset() {
	*w = Wizard{step: StepService}
}

func (w *Wizard) Service() *catalog.Service {
	if w.service == nil {
		return nil
	}
	s := *w.service
	return &s
}

func (w *Wizard) Alignment() *Alignment {
	if w.alignment == nil {
		return nil
	}
	a := *w.alignment
	return &a
}

func (w *Wizard) Date() string           { return w.date }
func (w *Wizard) TimeSlot() string       { return w.timeSlot }
func (w *Wizard) PromoCode() string      { return w.promoCode }
func (w *Wizard) DiscountCents() int64   { return w.discountCents }
func (w *Wizard) Daycare() bool          { return w.daycare }
func (w *Wizard) Method() payment.Method { return w.method }
func (w *Wizard) TicketID() string       { return w.ticketID }

func (w *Wizard) Contact() *Contact {
	if w.contact == nil {
		return nil
	}
	c := *w.contact
	return &c
}
