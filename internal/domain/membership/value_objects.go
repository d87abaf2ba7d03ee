package membership

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Credentials are held only for the duration of the flow. They are never
// verified against any backend; any well-formed pair passes.
type Credentials struct {
	mode  AuthMode
	name  string
	email string
}

func NewCredentials(mode AuthMode, name, email, password string) (Credentials, error) {
	switch mode {
	case ModeSignup:
		if strings.TrimSpace(name) == "" {
			return Credentials{}, ErrEmptyName
		}
	case ModeLogin:
		// login has no name field
	default:
		return Credentials{}, ErrUnknownAuthMode
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Credentials{}, ErrInvalidEmail
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}

	return Credentials{mode: mode, name: strings.TrimSpace(name), email: email}, nil
}

func (c Credentials) Mode() AuthMode { return c.mode }
func (c Credentials) Name() string   { return c.name }
func (c Credentials) Email() string  { return c.email }

// NewMemberID issues an identifier of the shape LOC-<0..9999>-25.
func NewMemberID() string {
	return fmt.Sprintf("LOC-%d-25", rand.IntN(10000))
}
