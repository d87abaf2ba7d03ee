package membership

import (
	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/payment"
)

// Wizard is the membership flow state machine: tier selection, simulated
// auth, vow/payment, success.
type Wizard struct {
	step Step

	tier    *catalog.Tier
	daycare bool

	credentials   *Credentials
	passwordHash  string
	authenticated bool

	method   payment.Method
	memberID string
}

func NewWizard() *Wizard {
	return &Wizard{step: StepTier}
}

func (w *Wizard) Step() Step { return w.step }

// SelectTier picks a tier, resets any previously chosen daycare add-on and
// advances to the auth step.
func (w *Wizard) SelectTier(t catalog.Tier) {
	w.tier = &t
	w.daycare = false
	w.step = StepAuth
}

// Authenticate marks the session authenticated after the simulated check.
// passwordHash is stored for signups only; nothing is ever verified.
func (w *Wizard) Authenticate(creds Credentials, passwordHash string) error {
	if w.step < StepAuth {
		return ErrTierRequired
	}
	w.credentials = &creds
	w.passwordHash = passwordHash
	w.authenticated = true
	w.step = StepVow
	return nil
}

// SetDaycare toggles the add-on at the vow step. Tiers that include
// daycare (cost zero) have nothing to toggle.
func (w *Wizard) SetDaycare(add bool) error {
	if w.tier == nil {
		return ErrTierRequired
	}
	if w.tier.DaycareCostCents == 0 && add {
		return ErrDaycareIncluded
	}
	w.daycare = add
	return nil
}

// TotalCents is tier price plus the daycare add-on cost when toggled and
// applicable.
func (w *Wizard) TotalCents() int64 {
	if w.tier == nil {
		return 0
	}
	total := w.tier.PriceCents
	if w.daycare {
		total += w.tier.DaycareCostCents
	}
	return total
}

// SealCovenant settles the vow step after processing and issues the
// member id.
func (w *Wizard) SealCovenant(daycare bool, method payment.Method) (string, error) {
	if w.step == StepSuccess {
		return "", ErrAlreadySealed
	}
	if w.step != StepVow {
		return "", ErrInvalidTransition
	}
	if w.tier == nil {
		return "", ErrTierRequired
	}
	if !w.authenticated {
		return "", ErrNotAuthenticated
	}
	if err := w.SetDaycare(daycare); err != nil {
		return "", err
	}

	w.method = method
	w.memberID = NewMemberID()
	w.step = StepSuccess
	return w.memberID, nil
}

// Back moves one step backward without losing state.
func (w *Wizard) Back() error {
	if w.step <= StepTier {
		return ErrInvalidTransition
	}
	w.step--
	return nil
}

// Reset returns tier selection, add-on flag and step to initial values.
func (w *Wizard) Reset() {
	*w = Wizard{step: StepTier}
}

func (w *Wizard) Tier() *catalog.Tier {
	if w.tier == nil {
		return nil
	}
	t := *w.tier
	return &t
}

func (w *Wizard) Credentials() *Credentials {
	if w.credentials == nil {
		return nil
	}
	c := *w.credentials
	return &c
}

func (w *Wizard) Daycare() bool          { return w.daycare }
func (w *Wizard) Authenticated() bool    { return w.authenticated }
func (w *Wizard) Method() payment.Method { return w.method }
func (w *Wizard) MemberID() string       { return w.memberID }
