package components

import (
	"stay-pricing/internal/infra/readstore"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/infra/uow"
	"stay-pricing/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Pricing (calculation inputs)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PricingReadQueries)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		// Property pricing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyPricingReadQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyPricingReadStore,
			fx.As(new(queries.PropertyPricingReadStore)),
		),
		// Room availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomAvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomAvailabilityReadStore,
			fx.As(new(queries.RoomAvailabilityReadStore)),
		),
		// Peak season rates
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PeakSeasonRateReadQueries)),
		),
		fx.Annotate(
			readstore.NewPeakSeasonRateReadStore,
			fx.As(new(queries.PeakSeasonRateReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
