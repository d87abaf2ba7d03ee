package processing

import (
	"context"
	"time"

	"leen-studio/internal/pkg/config"
	"leen-studio/internal/usecase/shared"
)

// Simulator waits a fixed configured duration per kind and then resolves.
// It always "succeeds"; the only other exit is context cancellation.
type Simulator struct {
	cfg config.ProcessingConfig
}

func NewSimulator(cfg config.ProcessingConfig) *Simulator {
	return &Simulator{cfg: cfg}
}

func (s *Simulator) Process(ctx context.Context, kind shared.ProcessKind) error {
	var d time.Duration
	switch kind {
	case shared.ProcessPayment:
		d = s.cfg.PaymentDelay
	case shared.ProcessAuth:
		d = s.cfg.AuthDelay
	case shared.ProcessCovenant:
		d = s.cfg.CovenantDelay
	}

	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
