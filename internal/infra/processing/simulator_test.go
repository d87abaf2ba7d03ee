//go:build unit

package processing_test

import (
	"context"
	"testing"
	"time"

	"leen-studio/internal/infra/processing"
	"leen-studio/internal/pkg/config"
	"leen-studio/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestProcessZeroDelay(t *testing.T) {
	sim := processing.NewSimulator(config.ProcessingConfig{})

	for _, kind := range []shared.ProcessKind{shared.ProcessPayment, shared.ProcessAuth, shared.ProcessCovenant} {
		assert.NoError(t, sim.Process(context.Background(), kind))
	}
}

func TestProcessCancellation(t *testing.T) {
	sim := processing.NewSimulator(config.ProcessingConfig{PaymentDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Process(ctx, shared.ProcessPayment)
	assert.ErrorIs(t, err, context.Canceled)
}
