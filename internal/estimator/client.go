package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultClientTimeout = 10 * time.Second

type CalculationClient interface {
	CalculateForProperty(ctx context.Context, propertyID uuid.UUID, r pricing.Range) (pricing.Summary, error)
	CalculateForRoom(ctx context.Context, roomID uuid.UUID, r pricing.Range) (pricing.Summary, error)
}

// APIError is a non-2xx answer from the calculation service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calculation service: %d %s: %s", e.Status, e.Code, e.Message)
}

type HTTPCalculationClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPCalculationClient(baseURL string, httpClient *http.Client) *HTTPCalculationClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	return &HTTPCalculationClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type nightPayload struct {
	Date      pricing.Date      `json:"date"`
	Price     *int64            `json:"price"`
	PriceType pricing.PriceType `json:"priceType"`
}

type calculationPayload struct {
	Nights          int            `json:"nights"`
	BaseNights      int            `json:"baseNights"`
	PeakNights      int            `json:"peakNights"`
	BestDealNights  int            `json:"bestDealNights"`
	SoldOutNights   int            `json:"soldOutNights"`
	TotalPrice      int64          `json:"totalPrice"`
	AveragePerNight int64          `json:"averagePerNight"`
	Breakdown       []nightPayload `json:"breakdown"`
}

type roomCalculationPayload struct {
	Nights          int   `json:"nights"`
	PricePerNight   int64 `json:"pricePerNight"`
	TotalPrice      int64 `json:"totalPrice"`
	AveragePerNight int64 `json:"averagePerNight"`
	SoldOutNights   int   `json:"soldOutNights"`
}

type errorPayload struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *HTTPCalculationClient) CalculateForProperty(ctx context.Context, propertyID uuid.UUID, r pricing.Range) (pricing.Summary, error) {
	var payload calculationPayload
	if err := c.getJSON(ctx, c.calculationURL("properties", propertyID, r), &payload); err != nil {
		return pricing.Summary{}, err
	}
	return payload.toSummary(), nil
}

// CalculateForRoom returns the room totals. The room endpoint has no per-night breakdown,
// so only Nights, TotalPrice, AveragePerNight and Counts.SoldOut are set.
func (c *HTTPCalculationClient) CalculateForRoom(ctx context.Context, roomID uuid.UUID, r pricing.Range) (pricing.Summary, error) {
	var payload roomCalculationPayload
	if err := c.getJSON(ctx, c.calculationURL("rooms", roomID, r), &payload); err != nil {
		return pricing.Summary{}, err
	}
	return pricing.Summary{
		Nights:          payload.Nights,
		TotalPrice:      payload.TotalPrice,
		AveragePerNight: payload.AveragePerNight,
		Counts:          pricing.Counts{SoldOut: payload.SoldOutNights},
	}, nil
}

func (c *HTTPCalculationClient) calculationURL(collection string, id uuid.UUID, r pricing.Range) string {
	q := url.Values{}
	q.Set("startDate", r.Start.String())
	q.Set("endDate", r.End.String())
	return fmt.Sprintf("%s/%s/%s/pricing-calculation?%s", c.baseURL, collection, id, q.Encode())
}

func (c *HTTPCalculationClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.Wrap(err, "build pricing request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "call pricing service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload errorPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{
			Status:  resp.StatusCode,
			Code:    payload.Error.Code,
			Message: payload.Error.Message,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode pricing response")
	}
	return nil
}

type overridePayload struct {
	Date      pricing.Date      `json:"date"`
	Price     int64             `json:"price"`
	PriceType pricing.PriceType `json:"priceType"`
}

// ListOverrides fetches the stored overrides of a property in r, the input OverrideCache.Fill expects.
func (c *HTTPCalculationClient) ListOverrides(ctx context.Context, propertyID uuid.UUID, r pricing.Range) ([]pricing.Override, error) {
	q := url.Values{}
	q.Set("propertyId", propertyID.String())
	q.Set("startDate", r.Start.String())
	q.Set("endDate", r.End.String())

	var payload []overridePayload
	if err := c.getJSON(ctx, c.baseURL+"/property-pricing?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	overrides := make([]pricing.Override, len(payload))
	for i, o := range payload {
		overrides[i] = pricing.Override{Date: o.Date, Price: o.Price, PriceType: o.PriceType}
	}
	return overrides, nil
}

func (p calculationPayload) toSummary() pricing.Summary {
	breakdown := make([]pricing.ResolvedNight, len(p.Breakdown))
	for i, n := range p.Breakdown {
		breakdown[i] = pricing.ResolvedNight{Date: n.Date, Price: n.Price, Status: n.PriceType}
	}
	return pricing.Summary{
		Nights:          p.Nights,
		TotalPrice:      p.TotalPrice,
		AveragePerNight: p.AveragePerNight,
		Counts: pricing.Counts{
			Available:  p.BaseNights,
			BestDeal:   p.BestDealNights,
			PeakSeason: p.PeakNights,
			SoldOut:    p.SoldOutNights,
		},
		Breakdown: breakdown,
	}
}
