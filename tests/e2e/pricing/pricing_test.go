//go:build e2e

package pricing_test

import (
	"fmt"
	"net/http"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/handler/dto/response"
	"stay-pricing/tests/common/authtest"
	"stay-pricing/tests/common/builder"
	"stay-pricing/tests/common/dbtest"
	"stay-pricing/tests/common/httptest"
	"stay-pricing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	propertyCalcURL = "/properties/%s/pricing-calculation?startDate=%s&endDate=%s"
	roomCalcURL     = "/rooms/%s/pricing-calculation?startDate=%s&endDate=%s"
)

type PricingSuite struct {
	e2e.SharedSuite
}

func (s *PricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func i64(v int64) *int64 { return &v }

// =============================================================================
// TestPropertyCalculation
// =============================================================================

func (s *PricingSuite) TestPropertyCalculation() {
	s.Run("Normal case: every layer contributes to the stay", func() {
		t := s.T()

		hostID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Seaside Villa", i64(500000))
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, hostID, user.RoleHost)

		// 04-01 best deal
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/property-pricing",
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) {
				b.PropertyID = propertyID
				b.Price = 400000
			}).BuildUpsertRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 04-04 sold out
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/property-pricing",
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) {
				b.PropertyID = propertyID
				b.Date = pricing.MustParseDate("2025-04-04")
				b.PriceType = pricing.PriceTypeSoldOut
			}).BuildUpsertRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 04-01..04-03 peak season, shadowed on 04-01 by the override
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/peak-season-rates",
			builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) {
				b.PropertyID = &propertyID
				b.StartDate = pricing.MustParseDate("2025-04-01")
				b.EndDate = pricing.MustParseDate("2025-04-03")
				b.PriceIncrease = 100000
			}).BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, propertyID, "2025-04-01", "2025-04-06"), nil, "")

		var actual response.PropertyCalculationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		expected := response.PropertyCalculationResponse{
			PropertyID:      propertyID,
			StartDate:       pricing.MustParseDate("2025-04-01"),
			EndDate:         pricing.MustParseDate("2025-04-06"),
			Nights:          4,
			BaseNights:      1,
			PeakNights:      2,
			BestDealNights:  1,
			SoldOutNights:   1,
			TotalPrice:      400000 + 600000 + 600000 + 500000,
			AveragePerNight: 525000,
			Breakdown: []response.NightResponse{
				{Date: pricing.MustParseDate("2025-04-01"), Price: i64(400000), PriceType: pricing.PriceTypeBestDeal},
				{Date: pricing.MustParseDate("2025-04-02"), Price: i64(600000), PriceType: pricing.PriceTypePeakSeason},
				{Date: pricing.MustParseDate("2025-04-03"), Price: i64(600000), PriceType: pricing.PriceTypePeakSeason},
				{Date: pricing.MustParseDate("2025-04-04"), Price: nil, PriceType: pricing.PriceTypeSoldOut},
				{Date: pricing.MustParseDate("2025-04-05"), Price: i64(500000), PriceType: pricing.PriceTypeAvailable},
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("calculation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: inactive rules are ignored", func() {
		t := s.T()

		hostID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Mountain Lodge", i64(300000))
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, hostID, user.RoleHost)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/peak-season-rates",
			builder.NewPeakSeasonRateBuilder().With(func(b *builder.PeakSeasonRateBuilder) {
				b.PropertyID = &propertyID
				b.IsActive = false
			}).BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, propertyID, "2025-04-30", "2025-05-02"), nil, "")

		var actual response.PropertyCalculationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		assert.Equal(t, int64(600000), actual.TotalPrice)
		assert.Equal(t, 0, actual.PeakNights)
	})

	s.Run("Error case: unknown property", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, uuid.New(), "2025-04-01", "2025-04-03"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "TARGET_NOT_FOUND")
	})

	s.Run("Error case: property without a base price", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, uuid.New(), "Unpriced", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, propertyID, "2025-04-01", "2025-04-03"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "INVALID_TARGET")
	})

	s.Run("Error case: reversed range", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, uuid.New(), "Reversed", i64(100000))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, propertyID, "2025-04-03", "2025-04-01"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})

	s.Run("Error case: malformed date", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, uuid.New(), "Malformed", i64(100000))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(propertyCalcURL, propertyID, "2025/04/01", "2025-04-03"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_DATE_FORMAT")
	})
}

// =============================================================================
// TestRoomCalculation
// =============================================================================

func (s *PricingSuite) TestRoomCalculation() {
	s.Run("Normal case: blocks and percentage rules on a room", func() {
		t := s.T()

		hostID := uuid.New()
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "City Hotel", i64(800000))
		roomID := dbtest.CreateTestRoom(t, s.DB, propertyID, "Twin", i64(300000))
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, hostID, user.RoleHost)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/room-availability",
			builder.NewAvailabilityBuilder().With(func(b *builder.AvailabilityBuilder) {
				b.RoomID = roomID
				b.Date = pricing.MustParseDate("2025-04-04")
			}).BuildUpsertRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		pct := 10.0
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/peak-season-rates",
			builder.NewPeakSeasonRateBuilder().ForRoom(roomID).With(func(b *builder.PeakSeasonRateBuilder) {
				b.StartDate = pricing.MustParseDate("2025-04-02")
				b.EndDate = pricing.MustParseDate("2025-04-03")
				b.PercentageIncrease = &pct
			}).BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomCalcURL, roomID, "2025-04-01", "2025-04-05"), nil, "")

		var actual response.RoomCalculationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		expected := response.RoomCalculationResponse{
			RoomID:          roomID,
			Nights:          3,
			PricePerNight:   300000,
			TotalPrice:      300000 + 330000 + 330000,
			AveragePerNight: 320000,
			SoldOutNights:   1,
		}
		opts := cmpopts.IgnoreFields(response.RoomCalculationResponse{}, "StartDate", "EndDate")
		if diff := cmp.Diff(expected, actual, opts); diff != "" {
			t.Errorf("calculation mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: room without a base price", func() {
		t := s.T()

		propertyID := dbtest.CreateTestProperty(t, s.DB, uuid.New(), "Hostel", i64(100000))
		roomID := dbtest.CreateTestRoom(t, s.DB, propertyID, "Dorm", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(roomCalcURL, roomID, "2025-04-01", "2025-04-03"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "INVALID_TARGET")
	})
}
