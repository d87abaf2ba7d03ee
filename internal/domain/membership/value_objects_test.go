//go:build unit

package membership_test

import (
	"testing"

	"leen-studio/internal/domain/membership"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	cases := []struct {
		name     string
		mode     membership.AuthMode
		fullName string
		email    string
		password string
		errIs    error
	}{
		{name: "signup", mode: membership.ModeSignup, fullName: "Grace", email: "grace@example.com", password: "hallelujah"},
		{name: "login without a name", mode: membership.ModeLogin, fullName: "", email: "grace@example.com", password: "hallelujah"},
		{name: "signup without a name", mode: membership.ModeSignup, fullName: "  ", email: "grace@example.com", password: "x", errIs: membership.ErrEmptyName},
		{name: "malformed email", mode: membership.ModeLogin, fullName: "", email: "not-an-email", password: "x", errIs: membership.ErrInvalidEmail},
		{name: "empty password", mode: membership.ModeLogin, fullName: "", email: "grace@example.com", password: "", errIs: membership.ErrEmptyPassword},
		{name: "unknown mode", mode: "oauth", fullName: "Grace", email: "grace@example.com", password: "x", errIs: membership.ErrUnknownAuthMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := membership.NewCredentials(tc.mode, tc.fullName, tc.email, tc.password)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, c.Mode())
			assert.Equal(t, tc.email, c.Email())
		})
	}
}

func TestNewMemberID(t *testing.T) {
	for range 20 {
		assert.Regexp(t, `^LOC-\d{1,4}-25$`, membership.NewMemberID())
	}
}
