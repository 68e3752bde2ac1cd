package rates

import (
	"errors"
	"fmt"
	"time"

	"stay-pricing/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	ErrEmptyRange       = errors.New("date range contains no nights")
)

// PriceOverride is a per-date price record for a property. At most one exists per (property, date).
type PriceOverride struct {
	id         uuid.UUID
	propertyID uuid.UUID
	date       pricing.Date
	price      int64
	priceType  pricing.PriceType
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPriceOverride(propertyID uuid.UUID, date pricing.Date, price int64, priceType pricing.PriceType) (*PriceOverride, error) {
	if err := validateOverride(price, priceType); err != nil {
		return nil, err
	}
	return &PriceOverride{
		id:         uuid.New(),
		propertyID: propertyID,
		date:       date,
		price:      price,
		priceType:  priceType,
	}, nil
}

// NewPriceOverridesForRange builds one override per night of r.
func NewPriceOverridesForRange(propertyID uuid.UUID, r pricing.Range, price int64, priceType pricing.PriceType) ([]*PriceOverride, error) {
	dates := r.Dates()
	if len(dates) == 0 {
		return nil, ErrEmptyRange
	}
	out := make([]*PriceOverride, 0, len(dates))
	for _, d := range dates {
		o, err := NewPriceOverride(propertyID, d, price, priceType)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func ReconstructPriceOverride(
	id, propertyID uuid.UUID,
	date pricing.Date,
	price int64,
	priceType pricing.PriceType,
	createdAt, updatedAt time.Time,
) *PriceOverride {
	return &PriceOverride{
		id:         id,
		propertyID: propertyID,
		date:       date,
		price:      price,
		priceType:  priceType,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update applies the non-nil fields.
func (o *PriceOverride) Update(price *int64, priceType *pricing.PriceType) error {
	newPrice, newType := o.price, o.priceType
	if price != nil {
		newPrice = *price
	}
	if priceType != nil {
		newType = *priceType
	}
	if err := validateOverride(newPrice, newType); err != nil {
		return err
	}
	o.price, o.priceType = newPrice, newType
	return nil
}

func validateOverride(price int64, priceType pricing.PriceType) error {
	if price <= 0 {
		return fmt.Errorf("%w: %w", pricing.ErrInvalidOverride, ErrNonPositivePrice)
	}
	if !priceType.IsValid() {
		return fmt.Errorf("%w: %w", pricing.ErrInvalidOverride, pricing.ErrInvalidPriceType)
	}
	return nil
}

func (o *PriceOverride) ID() uuid.UUID                { return o.id }
func (o *PriceOverride) PropertyID() uuid.UUID        { return o.propertyID }
func (o *PriceOverride) Date() pricing.Date           { return o.date }
func (o *PriceOverride) Price() int64                 { return o.price }
func (o *PriceOverride) PriceType() pricing.PriceType { return o.priceType }
func (o *PriceOverride) CreatedAt() time.Time         { return o.createdAt }
func (o *PriceOverride) UpdatedAt() time.Time         { return o.updatedAt }

func (o *PriceOverride) ToOverride() pricing.Override {
	return pricing.Override{Date: o.date, Price: o.price, PriceType: o.priceType}
}
