package components

import (
	"leen-studio/internal/infra/processing"
	"leen-studio/internal/infra/sessionstore"
	"leen-studio/internal/infra/soulalign"
	"leen-studio/internal/infra/testimonialstore"
	"leen-studio/internal/pkg/config"
	"leen-studio/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSnapshotDir,
		fx.Annotate(
			sessionstore.New,
			fx.As(new(shared.SessionStore)),
		),
		fx.Annotate(
			NewSoulAlignClient,
			fx.As(new(shared.SoulAligner)),
		),
		fx.Annotate(
			NewProcessingSimulator,
			fx.As(new(shared.Processor)),
		),
		fx.Annotate(
			testimonialstore.New,
			fx.As(new(shared.TestimonialRepository)),
		),
	),
)

func NewSnapshotDir(cfg config.Config) (*sessionstore.SnapshotDir, error) {
	return sessionstore.NewSnapshotDir(cfg.Store.SnapshotDir)
}

func NewSoulAlignClient(cfg config.Config) *soulalign.Client {
	return soulalign.NewClient(cfg.SoulAlign)
}

func NewProcessingSimulator(cfg config.Config) *processing.Simulator {
	return processing.NewSimulator(cfg.Processing)
}
