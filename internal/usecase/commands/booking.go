package commands

import (
	"context"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/domain/payment"
	"leen-studio/internal/pkg/clock"
	"leen-studio/internal/pkg/errs"
	"leen-studio/internal/usecase/queries"
	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound      = errs.New("service not found")
	ErrUnknownPaymentMethod = errs.New("unknown payment method")
)

type BookingCommands interface {
	SelectService(ctx context.Context, sessionID uuid.UUID, serviceID string) (*queries.BookingView, error)
	SoulCheck(ctx context.Context, sessionID uuid.UUID, feeling string) (*queries.BookingView, error)
	SelectSchedule(ctx context.Context, sessionID uuid.UUID, date, slot string) (*queries.BookingView, error)
	SetContact(ctx context.Context, sessionID uuid.UUID, name, channel, value string) (*queries.BookingView, error)
	ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*queries.BookingView, error)
	SetDaycare(ctx context.Context, sessionID uuid.UUID, add bool) (*queries.BookingView, error)
	Confirm(ctx context.Context, sessionID uuid.UUID, daycare bool, method string) (*queries.BookingView, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*queries.BookingView, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	store     shared.SessionStore
	aligner   shared.SoulAligner
	processor shared.Processor
	clock     clock.Clock
}

func NewBookingCommands(
	store shared.SessionStore,
	aligner shared.SoulAligner,
	processor shared.Processor,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:     store,
		aligner:   aligner,
		processor: processor,
		clock:     clock,
	}
}

func (b *bookingCommandsImpl) mutate(ctx context.Context, sessionID uuid.UUID, fn func(s *shared.Session) error) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := b.store.Update(ctx, sessionID, func(s *shared.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = queries.NewBookingView(s.Booking, b.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (b *bookingCommandsImpl) SelectService(ctx context.Context, sessionID uuid.UUID, serviceID string) (*queries.BookingView, error) {
	service, ok := catalog.FindService(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Booking.SelectService(service)
		return nil
	})
}

// SoulCheck resolves the free-text feeling through the aligner. Any
// aligner error degrades to the fixed fallback pair; booking is never
// blocked by the model.
func (b *bookingCommandsImpl) SoulCheck(ctx context.Context, sessionID uuid.UUID, feeling string) (*queries.BookingView, error) {
	alignment, err := b.aligner.Align(ctx, feeling)
	if err != nil {
		alignment = booking.FallbackAlignment
	}
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Booking.RecordAlignment(alignment)
		return nil
	})
}

func (b *bookingCommandsImpl) SelectSchedule(ctx context.Context, sessionID uuid.UUID, date, slot string) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Booking.SelectSchedule(b.clock.Now(), date, slot)
	})
}

func (b *bookingCommandsImpl) SetContact(ctx context.Context, sessionID uuid.UUID, name, channel, value string) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Booking.SetContact(name, booking.ContactChannel(channel), value)
	})
}

func (b *bookingCommandsImpl) ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Booking.ApplyPromo(code)
	})
}

func (b *bookingCommandsImpl) SetDaycare(ctx context.Context, sessionID uuid.UUID, add bool) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Booking.SetDaycare(add)
		return nil
	})
}

// Confirm runs the simulated payment processing, then settles the
// offering step and issues the ticket. The delay happens outside the
// session lock so other requests for the session are not starved.
func (b *bookingCommandsImpl) Confirm(ctx context.Context, sessionID uuid.UUID, daycare bool, method string) (*queries.BookingView, error) {
	parsed, err := payment.ParseMethod(method)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownPaymentMethod)
	}

	if err := b.processor.Process(ctx, shared.ProcessPayment); err != nil {
		return nil, err
	}

	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		_, err := s.Booking.Confirm(b.clock.Now(), daycare, parsed)
		return err
	})
}

func (b *bookingCommandsImpl) Back(ctx context.Context, sessionID uuid.UUID) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		return s.Booking.Back()
	})
}

func (b *bookingCommandsImpl) Reset(ctx context.Context, sessionID uuid.UUID) (*queries.BookingView, error) {
	return b.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Booking.Reset()
		return nil
	})
}
