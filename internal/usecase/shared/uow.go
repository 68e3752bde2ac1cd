package shared

import (
	"context"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	sqlc "stay-pricing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	PropertyPricing() PropertyPricingRepository
	RoomAvailability() RoomAvailabilityRepository
	PeakSeasonRates() PeakSeasonRateRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TargetByID(ctx context.Context, kind pricing.TargetKind, id uuid.UUID) (*TargetSnapshot, error)
	PriceOverrideByID(ctx context.Context, id uuid.UUID) (*rates.PriceOverride, error)
	AvailabilityBlockByID(ctx context.Context, id uuid.UUID) (*rates.AvailabilityBlock, error)
	PeakSeasonRateByID(ctx context.Context, id uuid.UUID) (*rates.PeakSeasonRate, error)
}

type PropertyPricingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, o *rates.PriceOverride) (*rates.PriceOverride, error)
	Update(ctx context.Context, tx sqlc.DBTX, o *rates.PriceOverride) (*rates.PriceOverride, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type RoomAvailabilityRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, b *rates.AvailabilityBlock) (*rates.AvailabilityBlock, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *rates.AvailabilityBlock) (*rates.AvailabilityBlock, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type PeakSeasonRateRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rates.PeakSeasonRate) (*rates.PeakSeasonRate, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *rates.PeakSeasonRate) (*rates.PeakSeasonRate, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}
