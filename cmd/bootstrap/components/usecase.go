package components

import (
	"leen-studio/internal/pkg/clock"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewBookingCommands,
		commands.NewMembershipCommands,
		commands.NewTestimonialCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewSessionQueries,
		queries.NewDashboardQueries,
		queries.NewTestimonialQueries,
		queries.NewSoulAlignQueries,
	),
)
