package booking

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
)

type ContactChannel string

const (
	ChannelEmail ContactChannel = "email"
	ChannelPhone ContactChannel = "phone"
)

// Contact is a validated name plus one contact channel (email xor phone).
type Contact struct {
	name    string
	channel ContactChannel
	value   string
}

func NewContact(name string, channel ContactChannel, value string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyName
	}

	value = strings.TrimSpace(value)
	switch channel {
	case ChannelEmail:
		if !emailRegex.MatchString(value) {
			return Contact{}, ErrInvalidEmail
		}
	case ChannelPhone:
		if !phoneRegex.MatchString(value) {
			return Contact{}, ErrInvalidPhone
		}
	default:
		return Contact{}, ErrUnknownChannel
	}

	return Contact{name: name, channel: channel, value: value}, nil
}

func (c Contact) Name() string            { return c.name }
func (c Contact) Channel() ContactChannel { return c.channel }
func (c Contact) Value() string           { return c.value }

// Flat-amount booking promos, independent of the boutique's percentage
// table.
var promoAmounts = map[string]int64{
	"ALIGN":   500,
	"WELCOME": 1000,
	"SPIRIT":  800,
}

func LookupPromo(code string) (string, int64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	cents, ok := promoAmounts[normalized]
	if !ok {
		return "", 0, ErrUnknownPromo
	}
	return normalized, cents, nil
}

// DaycareFeeCents is the flat booking add-on for Little Angels daycare.
const DaycareFeeCents int64 = 500

// DateWindow returns the next seven calendar days (ISO dates) starting
// tomorrow. Weekends and holidays are not excluded.
func DateWindow(now time.Time) []string {
	days := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return days
}

func inDateWindow(now time.Time, date string) bool {
	for _, d := range DateWindow(now) {
		if d == date {
			return true
		}
	}
	return false
}

// NewTicketID issues a confirmation identifier of the shape
// LOC-<0..99999>-<year>.
func NewTicketID(now time.Time) string {
	return fmt.Sprintf("LOC-%d-%d", rand.IntN(100000), now.Year())
}
