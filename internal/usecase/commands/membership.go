package commands

import (
	"context"

	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/membership"
	"leen-studio/internal/domain/payment"
	"leen-studio/internal/pkg/errs"
	"leen-studio/internal/pkg/jwt"
	"leen-studio/internal/pkg/password"
	"leen-studio/internal/usecase/queries"
	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTierNotFound    = errs.New("tier not found")
	ErrTokenGeneration = errs.New("token generation failed")
)

type AuthResult struct {
	View        *queries.MembershipView
	AccessToken string
}

type MembershipCommands interface {
	SelectTier(ctx context.Context, sessionID uuid.UUID, tierID string) (*queries.MembershipView, error)
	Authenticate(ctx context.Context, sessionID uuid.UUID, mode, name, email, pass string) (*AuthResult, error)
	SetDaycare(ctx context.Context, sessionID uuid.UUID, add bool) (*queries.MembershipView, error)
	SealCovenant(ctx context.Context, sessionID uuid.UUID, daycare bool, method string) (*queries.MembershipView, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*queries.MembershipView, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (*queries.MembershipView, error)
}

type membershipCommandsImpl struct {
	store     shared.SessionStore
	processor shared.Processor
	jwt       *jwt.Service
}

func NewMembershipCommands(store shared.SessionStore, processor shared.Processor, jwtService *jwt.Service) MembershipCommands {
	return &membershipCommandsImpl{
		store:     store,
		processor: processor,
		jwt:       jwtService,
	}
}

func (m *membershipCommandsImpl) mutate(ctx context.Context, sessionID uuid.UUID, fn func(s *shared.Session) error) (*queries.MembershipView, error) {
	var view *queries.MembershipView
	err := m.store.Update(ctx, sessionID, func(s *shared.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = queries.NewMembershipView(s.Membership)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (m *membershipCommandsImpl) SelectTier(ctx context.Context, sessionID uuid.UUID, tierID string) (*queries.MembershipView, error) {
	tier, ok := catalog.FindTier(tierID)
	if !ok {
		return nil, ErrTierNotFound
	}
	return m.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Membership.SelectTier(tier)
		return nil
	})
}

// Authenticate validates the credential shape, runs the simulated delay
// and marks the session authenticated. No backend ever verifies the
// credentials; the issued token only asserts that this step completed.
func (m *membershipCommandsImpl) Authenticate(ctx context.Context, sessionID uuid.UUID, mode, name, email, pass string) (*AuthResult, error) {
	creds, err := membership.NewCredentials(membership.AuthMode(mode), name, email, pass)
	if err != nil {
		return nil, err
	}

	hash := ""
	if creds.Mode() == membership.ModeSignup {
		hash, err = password.HashPassword(pass)
		if err != nil {
			return nil, err
		}
	}

	if err := m.processor.Process(ctx, shared.ProcessAuth); err != nil {
		return nil, err
	}

	token, err := m.jwt.GenerateToken(sessionID, creds.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	view, err := m.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Membership.Authenticate(creds, hash)
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{View: view, AccessToken: token}, nil
}

func (m *membershipCommandsImpl) SetDaycare(ctx context.Context, sessionID uuid.UUID, add bool) (*queries.MembershipView, error) {
	return m.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Membership.SetDaycare(add)
	})
}

func (m *membershipCommandsImpl) SealCovenant(ctx context.Context, sessionID uuid.UUID, daycare bool, method string) (*queries.MembershipView, error) {
	parsed, err := payment.ParseMethod(method)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownPaymentMethod)
	}

	if err := m.processor.Process(ctx, shared.ProcessCovenant); err != nil {
		return nil, err
	}

	return m.mutate(ctx, sessionID, func(s *shared.Session) error {
		_, err := s.Membership.SealCovenant(daycare, parsed)
		return err
	})
}

func (m *membershipCommandsImpl) Back(ctx context.Context, sessionID uuid.UUID) (*queries.MembershipView, error) {
	return m.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Membership.Back()
	})
}

func (m *membershipCommandsImpl) Reset(ctx context.Context, sessionID uuid.UUID) (*queries.MembershipView, error) {
	return m.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Membership.Reset()
		return nil
	})
}
