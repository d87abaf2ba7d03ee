package booking

import "errors"

var (
	ErrServiceRequired   = errors.New("service selection required")
	ErrScheduleRequired  = errors.New("date and time selection required")
	ErrContactRequired   = errors.New("valid contact details required")
	ErrDateOutOfWindow   = errors.New("date is outside the booking window")
	ErrUnknownTimeSlot   = errors.New("unknown time slot")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidPhone      = errors.New("invalid phone format")
	ErrUnknownChannel    = errors.New("unknown contact channel")
	ErrUnknownPromo      = errors.New("the spirits do not recognize this code")
	ErrAlreadyConfirmed  = errors.New("booking already confirmed")
	ErrInvalidTransition = errors.New("invalid step transition")
)

// Step is the discriminated wizard position. Transitions are linear and
// gated; backward navigation is always allowed and lossless.
type Step int

const (
	StepService Step = iota + 1
	StepSchedule
	StepContact
	StepOffering
	StepTicket
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepSchedule:
		return "schedule"
	case StepContact:
		return "contact"
	case StepOffering:
		return "offering"
	case StepTicket:
		return "ticket"
	default:
		return "unknown"
	}
}

// gate returns the error blocking entry into a step, or nil. Keeping the
// gates in one table makes illegal states (e.g. the offering step without
// a service) unrepresentable through the public operations.
func (w *Wizard) gate(target Step) error {
	switch target {
	case StepService:
		return nil
	case StepSchedule:
		// Reached either by picking a service or by a soul check; the
		// soul-check path may arrive with no selection forced.
		if w.service == nil && !w.soulChecked {
			return ErrServiceRequired
		}
		return nil
	case StepContact:
		if w.service == nil {
			return ErrServiceRequired
		}
		if w.date == "" || w.timeSlot == "" {
			return ErrScheduleRequired
		}
		return nil
	case StepOffering:
		if err := w.gate(StepContact); err != nil {
			return err
		}
		if w.contact == nil {
			return ErrContactRequired
		}
		return nil
	case StepTicket:
		if w.ticketID == "" {
			return ErrInvalidTransition
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}
