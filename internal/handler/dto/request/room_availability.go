package request

import (
	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertAvailabilityRequest struct {
	RoomID      uuid.UUID `json:"roomId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	IsAvailable *bool     `json:"isAvailable" binding:"required"`
}

func (r *UpsertAvailabilityRequest) ToCommand() (commands.UpsertAvailabilityRequest, error) {
	date, err := pricing.ParseDate(r.Date)
	if err != nil {
		return commands.UpsertAvailabilityRequest{}, err
	}
	return commands.UpsertAvailabilityRequest{
		RoomID:      r.RoomID,
		Date:        date,
		IsAvailable: *r.IsAvailable,
	}, nil
}

type BulkUpsertAvailabilityRequest struct {
	RoomID      uuid.UUID `json:"roomId" binding:"required"`
	StartDate   string    `json:"startDate" binding:"required"`
	EndDate     string    `json:"endDate" binding:"required"`
	IsAvailable *bool     `json:"isAvailable" binding:"required"`
}

func (r *BulkUpsertAvailabilityRequest) ToCommand() (commands.BulkUpsertAvailabilityRequest, error) {
	rng, err := pricing.ParseRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.BulkUpsertAvailabilityRequest{}, err
	}
	return commands.BulkUpsertAvailabilityRequest{
		RoomID:      r.RoomID,
		Range:       rng,
		IsAvailable: *r.IsAvailable,
	}, nil
}

type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func (r *UpdateAvailabilityRequest) ToCommand() commands.UpdateAvailabilityRequest {
	return commands.UpdateAvailabilityRequest{IsAvailable: *r.IsAvailable}
}
