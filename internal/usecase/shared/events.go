package shared

import (
	"context"
	"time"

	"stay-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

type EventName string

const (
	EventOverrideUpserted     EventName = "pricing.override.upserted"
	EventOverrideDeleted      EventName = "pricing.override.deleted"
	EventAvailabilityUpserted EventName = "pricing.availability.upserted"
	EventAvailabilityDeleted  EventName = "pricing.availability.deleted"
	EventPeakSeasonChanged    EventName = "pricing.peak_season.changed"
	EventPeakSeasonDeleted    EventName = "pricing.peak_season.deleted"
)

// RatesChanged tells caches that nights of a target in [StartDate, EndDate) may resolve differently.
type RatesChanged struct {
	ID         uuid.UUID          `json:"id"`
	Name       EventName          `json:"name"`
	TargetKind pricing.TargetKind `json:"target_kind"`
	TargetID   uuid.UUID          `json:"target_id"`
	StartDate  pricing.Date       `json:"start_date"`
	EndDate    pricing.Date       `json:"end_date"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, evt RatesChanged) error
}
