package readstore

import (
	"context"
	"fmt"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/infra"
	sqlc "stay-pricing/internal/infra/sqlc/generated"
	"stay-pricing/internal/pkg/pgconv"
	"stay-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingReadQueries interface {
	GetPropertyTarget(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyTargetRow, error)
	GetRoomTarget(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomTargetRow, error)
	ListPropertyPricingInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertyPricingInRangeParams) ([]sqlc.PropertyPricing, error)
	ListRoomAvailabilityInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomAvailabilityInRangeParams) ([]sqlc.RoomAvailability, error)
	ListActivePeakSeasonRatesForProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivePeakSeasonRatesForPropertyParams) ([]sqlc.PeakSeasonRates, error)
	ListActivePeakSeasonRatesForRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivePeakSeasonRatesForRoomParams) ([]sqlc.PeakSeasonRates, error)
}

// PricingReadStore loads the layers the resolver merges. Every query is bounded to the requested range.
type PricingReadStore struct {
	queries PricingReadQueries
	db      sqlc.DBTX
}

func NewPricingReadStore(queries PricingReadQueries, db sqlc.DBTX) *PricingReadStore {
	return &PricingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PricingReadStore) FindTarget(ctx context.Context, kind pricing.TargetKind, id uuid.UUID) (*queries.TargetView, error) {
	switch kind {
	case pricing.TargetProperty:
		row, err := r.queries.GetPropertyTarget(ctx, r.db, id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to get property target", err)
		}
		return &queries.TargetView{
			ID:                row.ID,
			Kind:              pricing.TargetProperty,
			PropertyID:        row.ID,
			HostID:            row.HostID,
			BasePricePerNight: pgconv.Int64PtrFromPgtype(row.BasePricePerNight),
		}, nil
	case pricing.TargetRoom:
		row, err := r.queries.GetRoomTarget(ctx, r.db, id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to get room target", err)
		}
		return &queries.TargetView{
			ID:                row.ID,
			Kind:              pricing.TargetRoom,
			PropertyID:        row.PropertyID,
			HostID:            row.HostID,
			BasePricePerNight: pgconv.Int64PtrFromPgtype(row.BasePricePerNight),
		}, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", kind)
	}
}

func (r *PricingReadStore) ListOverrides(ctx context.Context, propertyID uuid.UUID, rng pricing.Range) ([]pricing.Override, error) {
	rows, err := r.queries.ListPropertyPricingInRange(ctx, r.db, sqlc.ListPropertyPricingInRangeParams{
		PropertyID: propertyID,
		StartDate:  dateToPg(rng.Start),
		EndDate:    dateToPg(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list property pricing", err)
	}
	out := make([]pricing.Override, len(rows))
	for i, row := range rows {
		out[i] = mapPriceOverride(row).ToOverride()
	}
	return out, nil
}

func (r *PricingReadStore) ListAvailability(ctx context.Context, roomID uuid.UUID, rng pricing.Range) ([]pricing.AvailabilityBlock, error) {
	rows, err := r.queries.ListRoomAvailabilityInRange(ctx, r.db, sqlc.ListRoomAvailabilityInRangeParams{
		RoomID:    roomID,
		StartDate: dateToPg(rng.Start),
		EndDate:   dateToPg(rng.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room availability", err)
	}
	out := make([]pricing.AvailabilityBlock, len(rows))
	for i, row := range rows {
		out[i] = mapAvailability(row).ToBlock()
	}
	return out, nil
}

// ListActiveRules returns active rules whose inclusive span intersects [rng.Start, rng.End).
func (r *PricingReadStore) ListActiveRules(ctx context.Context, target pricing.Target, rng pricing.Range) ([]pricing.PeakSeasonRule, error) {
	var (
		rows []sqlc.PeakSeasonRates
		err  error
	)
	switch target.Kind {
	case pricing.TargetProperty:
		rows, err = r.queries.ListActivePeakSeasonRatesForProperty(ctx, r.db, sqlc.ListActivePeakSeasonRatesForPropertyParams{
			PropertyID: target.ID,
			EndDate:    dateToPg(rng.End),
			StartDate:  dateToPg(rng.Start),
		})
	case pricing.TargetRoom:
		rows, err = r.queries.ListActivePeakSeasonRatesForRoom(ctx, r.db, sqlc.ListActivePeakSeasonRatesForRoomParams{
			RoomID:    target.ID,
			EndDate:   dateToPg(rng.End),
			StartDate: dateToPg(rng.Start),
		})
	default:
		return nil, fmt.Errorf("unknown target kind %q", target.Kind)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active peak season rates", err)
	}

	out := make([]pricing.PeakSeasonRule, 0, len(rows))
	for _, row := range rows {
		v, err := mapPeakSeasonRate(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map peak season rate", err, infra.KindDBFailure)
		}
		out = append(out, v.ToRule())
	}
	return out, nil
}
