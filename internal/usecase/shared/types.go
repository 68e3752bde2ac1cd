package shared

import (
	"stay-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

// TargetSnapshot is what a write needs to know about its property or room.
type TargetSnapshot struct {
	ID         uuid.UUID
	Kind       pricing.TargetKind
	PropertyID uuid.UUID
	HostID     uuid.UUID
}
