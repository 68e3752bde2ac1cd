//go:build e2e

package rates_test

import (
	"net/http"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/handler/dto/request"
	"stay-pricing/internal/handler/dto/response"
	"stay-pricing/internal/usecase/shared"
	"stay-pricing/tests/common/authtest"
	"stay-pricing/tests/common/builder"
	"stay-pricing/tests/common/dbtest"
	"stay-pricing/tests/common/httptest"
	"stay-pricing/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	propertyPricingURL  = "/property-pricing"
	roomAvailabilityURL = "/room-availability"
	peakSeasonRatesURL  = "/peak-season-rates"
)

type RatesSuite struct {
	e2e.SharedSuite
}

func (s *RatesSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRatesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RatesSuite))
}

func i64(v int64) *int64 { return &v }

func (s *RatesSuite) hostWithProperty(t *testing.T) (token string, propertyID uuid.UUID) {
	t.Helper()
	hostID := uuid.New()
	propertyID = dbtest.CreateTestProperty(t, s.DB, hostID, "Harbor House", i64(500000))
	token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, hostID, user.RoleHost)
	return token, propertyID
}

// =============================================================================
// TestPropertyPricing
// =============================================================================

func (s *RatesSuite) TestPropertyPricing() {
	s.Run("Normal case: upsert on the same date keeps the row id", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)

		b := builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID })

		var first response.PriceOverrideResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL, b.BuildUpsertRequestDTO(), token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		b.Price = 700000
		b.PriceType = pricing.PriceTypePeakSeason
		var second response.PriceOverrideResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL, b.BuildUpsertRequestDTO(), token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &second)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, int64(700000), second.Price)
		assert.Equal(t, pricing.PriceTypePeakSeason, second.PriceType)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "property_pricing", "property_id", propertyID))

		published := s.Events.Named(shared.EventOverrideUpserted)
		require.Len(t, published, 2)
		assert.Equal(t, pricing.TargetProperty, published[1].TargetKind)
		assert.Equal(t, propertyID, published[1].TargetID)
		assert.Equal(t, b.Date, published[1].StartDate)
		assert.Equal(t, b.Date.AddDays(1), published[1].EndDate)
	})

	s.Run("Normal case: bulk upsert writes one row per night", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)

		req := request.BulkUpsertPriceOverridesRequest{
			PropertyID: propertyID,
			StartDate:  "2025-04-01",
			EndDate:    "2025-04-04",
			Price:      450000,
			PriceType:  "best_deal",
		}
		var saved []response.PriceOverrideResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL+"/bulk", req, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &saved)

		require.Len(t, saved, 3)
		assert.Equal(t, pricing.MustParseDate("2025-04-03"), saved[2].Date)
		assert.Equal(t, 3, dbtest.CountRows(t, s.DB, "property_pricing", "property_id", propertyID))

		var listed []response.PriceOverrideResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			propertyPricingURL+"?propertyId="+propertyID.String()+"&startDate=2025-04-02&endDate=2025-04-10", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		assert.Len(t, listed, 2)
	})

	s.Run("Normal case: delete then get returns not found", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)

		var saved response.PriceOverrideResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildUpsertRequestDTO(), token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &saved)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, propertyPricingURL+"/"+saved.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, propertyPricingURL+"/"+saved.ID.String(), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("Error case: another host cannot write", func() {
		t := s.T()
		_, propertyID := s.hostWithProperty(t)
		intruder := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), user.RoleHost)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildUpsertRequestDTO(), intruder)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "OWNERSHIP_VIOLATION")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "property_pricing", "property_id", propertyID))
	})

	s.Run("Normal case: admin may write any property", func() {
		t := s.T()
		_, propertyID := s.hostWithProperty(t)
		admin := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildUpsertRequestDTO(), admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown property", func() {
		t := s.T()
		token, _ := s.hostWithProperty(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().BuildUpsertRequestDTO(), token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TARGET_NOT_FOUND")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()
		_, propertyID := s.hostWithProperty(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildUpsertRequestDTO(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		hostID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Expired", i64(500000))
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, hostID, user.RoleHost)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, propertyPricingURL,
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildUpsertRequestDTO(), expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRoomAvailability
// =============================================================================

func (s *RatesSuite) TestRoomAvailability() {
	s.Run("Normal case: bulk block then reopen one night", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)
		roomID := dbtest.CreateTestRoom(t, s.DB, propertyID, "Suite", i64(250000))

		closed := false
		var saved []response.AvailabilityResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomAvailabilityURL+"/bulk",
			request.BulkUpsertAvailabilityRequest{RoomID: roomID, StartDate: "2025-04-01", EndDate: "2025-04-03", IsAvailable: &closed}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &saved)
		require.Len(t, saved, 2)

		open := true
		var updated response.AvailabilityResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, roomAvailabilityURL+"/"+saved[0].ID.String(),
			request.UpdateAvailabilityRequest{IsAvailable: &open}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.True(t, updated.IsAvailable)
		assert.Equal(t, saved[0].Date, updated.Date)
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()
		token, _ := s.hostWithProperty(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, roomAvailabilityURL,
			builder.NewAvailabilityBuilder().BuildUpsertRequestDTO(), token)
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TARGET_NOT_FOUND")
	})
}

// =============================================================================
// TestPeakSeasonRates
// =============================================================================

func (s *RatesSuite) TestPeakSeasonRates() {
	s.Run("Normal case: create, update and list by property", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)

		var created response.PeakSeasonRateResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, peakSeasonRatesURL,
			builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) { b.PropertyID = &propertyID }).BuildCreateRequestDTO(), token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		name := "Obon"
		var updated response.PeakSeasonRateResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, peakSeasonRatesURL+"/"+created.ID.String(),
			request.UpdatePeakSeasonRateRequest{Name: &name}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.Equal(t, "Obon", updated.Name)
		assert.Equal(t, created.StartDate, updated.StartDate)

		var listed []response.PeakSeasonRateResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, peakSeasonRatesURL+"?propertyId="+propertyID.String(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		assert.Equal(t, created.ID, listed[0].ID)
	})

	s.Run("Error case: both targets set", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)
		roomID := dbtest.CreateTestRoom(t, s.DB, propertyID, "Loft", i64(250000))

		req := builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) { b.PropertyID = &propertyID }).BuildCreateRequestDTO()
		req.RoomID = &roomID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, peakSeasonRatesURL, req, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: inverted season", func() {
		t := s.T()
		token, propertyID := s.hostWithProperty(t)

		req := builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) {
			b.PropertyID = &propertyID
			b.StartDate, b.EndDate = b.EndDate, b.StartDate
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, peakSeasonRatesURL, req, token)
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: list without a filter", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, peakSeasonRatesURL, nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}
