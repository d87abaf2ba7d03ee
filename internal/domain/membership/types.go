package membership

import "errors"

var (
	ErrTierRequired      = errors.New("tier selection required")
	ErrNotAuthenticated  = errors.New("authentication required")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyPassword     = errors.New("password must not be empty")
	ErrUnknownAuthMode   = errors.New("unknown auth mode")
	ErrDaycareIncluded   = errors.New("daycare is already included in this tier")
	ErrAlreadySealed     = errors.New("covenant already sealed")
	ErrInvalidTransition = errors.New("invalid step transition")
)

// Step is the membership flow position: tier selection, auth, vow/payment,
// success.
type Step int

const (
	StepTier Step = iota
	StepAuth
	StepVow
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepTier:
		return "tier"
	case StepAuth:
		return "auth"
	case StepVow:
		return "vow"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

type AuthMode string

const (
	ModeSignup AuthMode = "signup"
	ModeLogin  AuthMode = "login"
)
