package queries

import (
	"context"

	"leen-studio/internal/pkg/clock"
	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

// SessionQueries reads session-scoped state without mutating it.
type SessionQueries interface {
	Cart(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
	Booking(ctx context.Context, sessionID uuid.UUID) (*BookingView, error)
	Membership(ctx context.Context, sessionID uuid.UUID) (*MembershipView, error)
}

type sessionQueriesImpl struct {
	store shared.SessionStore
	clock clock.Clock
}

func NewSessionQueries(store shared.SessionStore, clock clock.Clock) SessionQueries {
	return &sessionQueriesImpl{store: store, clock: clock}
}

func (q *sessionQueriesImpl) Cart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	var view *CartView
	err := q.store.Read(ctx, sessionID, func(s *shared.Session) {
		view = NewCartView(s.Cart)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) Booking(ctx context.Context, sessionID uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.store.Read(ctx, sessionID, func(s *shared.Session) {
		view = NewBookingView(s.Booking, q.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) Membership(ctx context.Context, sessionID uuid.UUID) (*MembershipView, error) {
	var view *MembershipView
	err := q.store.Read(ctx, sessionID, func(s *shared.Session) {
		view = NewMembershipView(s.Membership)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
