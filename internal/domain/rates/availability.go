package rates

import (
	"time"

	"stay-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

type AvailabilityBlock struct {
	id          uuid.UUID
	roomID      uuid.UUID
	date        pricing.Date
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAvailabilityBlock(roomID uuid.UUID, date pricing.Date, isAvailable bool) *AvailabilityBlock {
	return &AvailabilityBlock{
		id:          uuid.New(),
		roomID:      roomID,
		date:        date,
		isAvailable: isAvailable,
	}
}

func NewAvailabilityBlocksForRange(roomID uuid.UUID, r pricing.Range, isAvailable bool) ([]*AvailabilityBlock, error) {
	dates := r.Dates()
	if len(dates) == 0 {
		return nil, ErrEmptyRange
	}
	out := make([]*AvailabilityBlock, 0, len(dates))
	for _, d := range dates {
		out = append(out, NewAvailabilityBlock(roomID, d, isAvailable))
	}
	return out, nil
}

func ReconstructAvailabilityBlock(id, roomID uuid.UUID, date pricing.Date, isAvailable bool, createdAt, updatedAt time.Time) *AvailabilityBlock {
	return &AvailabilityBlock{
		id:          id,
		roomID:      roomID,
		date:        date,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *AvailabilityBlock) SetAvailable(v bool) { b.isAvailable = v }

func (b *AvailabilityBlock) ID() uuid.UUID        { return b.id }
func (b *AvailabilityBlock) RoomID() uuid.UUID    { return b.roomID }
func (b *AvailabilityBlock) Date() pricing.Date   { return b.date }
func (b *AvailabilityBlock) IsAvailable() bool    { return b.isAvailable }
func (b *AvailabilityBlock) CreatedAt() time.Time { return b.createdAt }
func (b *AvailabilityBlock) UpdatedAt() time.Time { return b.updatedAt }

func (b *AvailabilityBlock) ToBlock() pricing.AvailabilityBlock {
	return pricing.AvailabilityBlock{Date: b.date, IsAvailable: b.isAvailable}
}
