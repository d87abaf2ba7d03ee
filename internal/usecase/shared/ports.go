package shared

import (
	"context"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/domain/testimonial"
	"leen-studio/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAlignerNotConfigured is returned by SoulAligner implementations that
// have no upstream credential to call with.
var ErrAlignerNotConfigured = errs.New("soul alignment API key not configured")

// SessionStore owns session state and its persistence. Update runs fn
// under the session's lock and, on success, writes the cart snapshot;
// Read runs fn under the lock without touching the snapshot. Unknown ids
// are created on first access, restored from a snapshot when one exists.
type SessionStore interface {
	Read(ctx context.Context, id uuid.UUID, fn func(*Session)) error
	Update(ctx context.Context, id uuid.UUID, fn func(*Session) error) error
}

// SoulAligner resolves a free-text feeling into an alignment. Transport
// and parse failures resolve to the aligner's own fallback pair; an error
// is returned only when the upstream credential is not configured.
type SoulAligner interface {
	Align(ctx context.Context, feeling string) (booking.Alignment, error)
}

type ProcessKind string

const (
	ProcessPayment  ProcessKind = "payment"
	ProcessAuth     ProcessKind = "auth"
	ProcessCovenant ProcessKind = "covenant"
)

// Processor stands in for the payment/auth backends: a fixed-duration
// task with exactly one resolution path. A real integration can replace
// the simulator without changing any state machine contract; callers only
// need "resolved" or a context error.
type Processor interface {
	Process(ctx context.Context, kind ProcessKind) error
}

// TestimonialRepository is the admin-managed testimony list. In-memory by
// design; the original resets on every reload too.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*testimonial.Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error)
	Create(ctx context.Context, t *testimonial.Testimonial) error
	Update(ctx context.Context, t *testimonial.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}
