//go:build unit || e2e

package builder

import (
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	reqdto "stay-pricing/internal/handler/dto/request"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/pgconv"
	"stay-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ================================================================================
// Price override (property_pricing)
// ================================================================================

type PriceOverrideBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Date       pricing.Date
	Price      int64
	PriceType  pricing.PriceType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewPriceOverrideBuilder() *PriceOverrideBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &PriceOverrideBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Date:       pricing.MustParseDate("2025-04-01"),
		Price:      640000,
		PriceType:  pricing.PriceTypeBestDeal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *PriceOverrideBuilder) With(mutate func(*PriceOverrideBuilder)) *PriceOverrideBuilder {
	mutate(b)
	return b
}

func (b *PriceOverrideBuilder) BuildDomain() *rates.PriceOverride {
	return rates.ReconstructPriceOverride(b.ID, b.PropertyID, b.Date, b.Price, b.PriceType, b.CreatedAt, b.UpdatedAt)
}

func (b *PriceOverrideBuilder) BuildView() *queries.PriceOverrideView {
	return &queries.PriceOverrideView{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		Date:       b.Date,
		Price:      b.Price,
		PriceType:  b.PriceType,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *PriceOverrideBuilder) BuildInfra() sqlc.PropertyPricing {
	return sqlc.PropertyPricing{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		Date:       pgconv.DateToPgtype(b.Date.Time()),
		Price:      b.Price,
		PriceType:  b.PriceType.String(),
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *PriceOverrideBuilder) BuildUpsertRequestDTO() reqdto.UpsertPriceOverrideRequest {
	return reqdto.UpsertPriceOverrideRequest{
		PropertyID: b.PropertyID,
		Date:       b.Date.String(),
		Price:      b.Price,
		PriceType:  b.PriceType.String(),
	}
}

// ================================================================================
// Availability block (room_availability)
// ================================================================================

type AvailabilityBuilder struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	Date        pricing.Date
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &AvailabilityBuilder{
		ID:          uuid.New(),
		RoomID:      uuid.New(),
		Date:        pricing.MustParseDate("2025-04-02"),
		IsAvailable: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(b)
	return b
}

func (b *AvailabilityBuilder) BuildDomain() *rates.AvailabilityBlock {
	return rates.ReconstructAvailabilityBlock(b.ID, b.RoomID, b.Date, b.IsAvailable, b.CreatedAt, b.UpdatedAt)
}

func (b *AvailabilityBuilder) BuildView() *queries.AvailabilityView {
	return &queries.AvailabilityView{
		ID:          b.ID,
		RoomID:      b.RoomID,
		Date:        b.Date,
		IsAvailable: b.IsAvailable,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *AvailabilityBuilder) BuildInfra() sqlc.RoomAvailability {
	return sqlc.RoomAvailability{
		ID:          b.ID,
		RoomID:      b.RoomID,
		Date:        pgconv.DateToPgtype(b.Date.Time()),
		IsAvailable: b.IsAvailable,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *AvailabilityBuilder) BuildUpsertRequestDTO() reqdto.UpsertAvailabilityRequest {
	isAvailable := b.IsAvailable
	return reqdto.UpsertAvailabilityRequest{
		RoomID:      b.RoomID,
		Date:        b.Date.String(),
		IsAvailable: &isAvailable,
	}
}

// ================================================================================
// Peak season rate
// ================================================================================

type PeakSeasonRateBuilder struct {
	ID                 uuid.UUID
	PropertyID         *uuid.UUID
	RoomID             *uuid.UUID
	Name               string
	StartDate          pricing.Date
	EndDate            pricing.Date
	PriceIncrease      int64
	PercentageIncrease *float64
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPeakSeasonRateBuilder targets a property by default.
func NewPeakSeasonRateBuilder() *PeakSeasonRateBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	propertyID := uuid.New()
	return &PeakSeasonRateBuilder{
		ID:            uuid.New(),
		PropertyID:    &propertyID,
		Name:          "Golden Week",
		StartDate:     pricing.MustParseDate("2025-04-29"),
		EndDate:       pricing.MustParseDate("2025-05-05"),
		PriceIncrease: 200000,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *PeakSeasonRateBuilder) With(mutate func(*PeakSeasonRateBuilder)) *PeakSeasonRateBuilder {
	mutate(b)
	return b
}

// ForRoom switches the target to a room.
func (b *PeakSeasonRateBuilder) ForRoom(roomID uuid.UUID) *PeakSeasonRateBuilder {
	b.PropertyID = nil
	b.RoomID = &roomID
	return b
}

func (b *PeakSeasonRateBuilder) BuildDomain() *rates.PeakSeasonRate {
	return rates.ReconstructPeakSeasonRate(
		b.ID, b.PropertyID, b.RoomID, b.Name, b.StartDate, b.EndDate,
		b.PriceIncrease, b.PercentageIncrease, b.IsActive, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *PeakSeasonRateBuilder) BuildSpec() rates.PeakSeasonRateSpec {
	return rates.PeakSeasonRateSpec{
		PropertyID:         b.PropertyID,
		RoomID:             b.RoomID,
		Name:               b.Name,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		PriceIncrease:      b.PriceIncrease,
		PercentageIncrease: b.PercentageIncrease,
		IsActive:           b.IsActive,
	}
}

func (b *PeakSeasonRateBuilder) BuildView() *queries.PeakSeasonRateView {
	return &queries.PeakSeasonRateView{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		RoomID:             b.RoomID,
		Name:               b.Name,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		PriceIncrease:      b.PriceIncrease,
		PercentageIncrease: b.PercentageIncrease,
		IsActive:           b.IsActive,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *PeakSeasonRateBuilder) BuildInfra() sqlc.PeakSeasonRates {
	return sqlc.PeakSeasonRates{
		ID:                 b.ID,
		PropertyID:         pgconv.UUIDPtrToPgtype(b.PropertyID),
		RoomID:             pgconv.UUIDPtrToPgtype(b.RoomID),
		Name:               b.Name,
		StartDate:          pgconv.DateToPgtype(b.StartDate.Time()),
		EndDate:            pgconv.DateToPgtype(b.EndDate.Time()),
		PriceIncrease:      b.PriceIncrease,
		PercentageIncrease: pgconv.Float64PtrToPgtype(b.PercentageIncrease),
		IsActive:           b.IsActive,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *PeakSeasonRateBuilder) BuildCreateRequestDTO() reqdto.CreatePeakSeasonRateRequest {
	isActive := b.IsActive
	return reqdto.CreatePeakSeasonRateRequest{
		PropertyID:         b.PropertyID,
		RoomID:             b.RoomID,
		Name:               b.Name,
		StartDate:          b.StartDate.String(),
		EndDate:            b.EndDate.String(),
		PriceIncrease:      b.PriceIncrease,
		PercentageIncrease: b.PercentageIncrease,
		IsActive:           &isActive,
	}
}
