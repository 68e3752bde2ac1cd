//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/domain/rates"
	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/handler/api"
	resdto "stay-pricing/internal/handler/dto/response"
	"stay-pricing/internal/handler/httperr"
	"stay-pricing/internal/pkg/errs"
	"stay-pricing/internal/usecase/commands"
	"stay-pricing/internal/usecase/queries"
	"stay-pricing/tests/common/builder"
	"stay-pricing/tests/common/httptest"
	"stay-pricing/tests/common/testutil"
	commandsmock "stay-pricing/tests/mock/commands"
	queriesmock "stay-pricing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyPricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPropertyPricingCommands
	mockQueries  *queriesmock.MockRatesQueries
	actor        user.Actor
}

func (s *PropertyPricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPropertyPricingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRatesQueries(s.mockCtrl)
	h := api.NewPropertyPricingHandler(s.mockCommands, s.mockQueries)

	s.actor = hostActor()
	auth := fakeAuth(s.actor)

	s.router.POST("/property-pricing", auth, h.Upsert)
	s.router.POST("/property-pricing/bulk", auth, h.BulkUpsert)
	s.router.PUT("/property-pricing/:id", auth, h.Update)
	s.router.DELETE("/property-pricing/:id", auth, h.Delete)
	s.router.GET("/property-pricing/:id", h.Get)
	s.router.GET("/property-pricing", h.List)
}

func (s *PropertyPricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyPricingHandlerTestSuite))
}

type testCaseRates struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestUpsert
// ================================================================================

func (s *PropertyPricingHandlerTestSuite) TestUpsert() {
	url := "/property-pricing"
	b := builder.NewPriceOverrideBuilder()
	reqBody := b.BuildUpsertRequestDTO()
	saved := b.BuildDomain()

	s.Run("success: returns 201 with the stored override", func() {
		want := commands.UpsertPriceOverrideRequest{
			PropertyID: b.PropertyID,
			Date:       b.Date,
			Price:      b.Price,
			PriceType:  b.PriceType,
		}
		s.mockCommands.EXPECT().Upsert(gomock.Any(), s.actor, want).Return(saved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.PriceOverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(saved.ID(), resp.ID)
		s.Equal(b.Date, resp.Date)
		s.Equal(pricing.PriceTypeBestDeal, resp.PriceType)
	})

	s.Run("unauthenticated: returns 401 without calling the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("validation: malformed JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, httptest.RawJSON(`{"propertyId":`), "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	validation := []testCaseRates{
		{name: "missing field: propertyId", mutate: testutil.Field("propertyId", nil), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeInvalidRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeInvalidRequest},
		{name: "missing field: price", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeInvalidRequest},
		{name: "missing field: priceType", mutate: testutil.Field("priceType", nil), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeInvalidRequest},
		{name: "malformed date", mutate: testutil.Field("date", "01/04/2025"), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeInvalidDateFormat},
		{name: "unknown price type", mutate: testutil.Field("priceType", "flash_sale"), expectCode: http.StatusBadRequest, expectInBody: httperr.CodeValidation},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		errCode    string
	}{
		{name: "negative price", err: pricing.ErrInvalidOverride, expectCode: http.StatusBadRequest, errCode: httperr.CodeValidation},
		{name: "not the owner", err: errs.ErrOwnership, expectCode: http.StatusForbidden, errCode: httperr.CodeOwnershipViolation},
		{name: "unknown property", err: errs.ErrTargetNotFound, expectCode: http.StatusNotFound, errCode: httperr.CodeTargetNotFound},
		{name: "database failure", err: errors.New("boom"), expectCode: http.StatusInternalServerError, errCode: httperr.CodeInternal},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.errCode)
		})
	}
}

// ================================================================================
// TestBulkUpsert
// ================================================================================

func (s *PropertyPricingHandlerTestSuite) TestBulkUpsert() {
	url := "/property-pricing/bulk"
	propertyID := uuid.New()
	body := map[string]any{
		"propertyId": propertyID.String(),
		"startDate":  "2025-04-01",
		"endDate":    "2025-04-04",
		"price":      450000,
		"priceType":  "best_deal",
	}

	s.Run("success: returns one override per night", func() {
		saved := make([]*rates.PriceOverride, 0, 3)
		for i := 0; i < 3; i++ {
			saved = append(saved, builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) {
				b.PropertyID = propertyID
				b.Date = pricing.MustParseDate("2025-04-01").AddDays(i)
				b.Price = 450000
			}).BuildDomain())
		}
		s.mockCommands.EXPECT().BulkUpsert(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Actor, req commands.BulkUpsertPriceOverridesRequest) ([]*rates.PriceOverride, error) {
				s.Equal(3, req.Range.Nights())
				s.Equal(int64(450000), req.Price)
				return saved, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp []resdto.PriceOverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Len(resp, 3)
		s.Equal("2025-04-03", resp[2].Date.String())
	})

	s.Run("validation: start after end", func() {
		bad := testutil.DtoMap(s.T(), body, testutil.Field("startDate", "2025-04-10"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidDateRange)
	})

	s.Run("error: empty range", func() {
		s.mockCommands.EXPECT().BulkUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rates.ErrEmptyRange).Times(1)
		empty := testutil.DtoMap(s.T(), body, testutil.Field("endDate", "2025-04-01"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, empty, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidDateRange)
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *PropertyPricingHandlerTestSuite) TestUpdate() {
	b := builder.NewPriceOverrideBuilder()
	url := "/property-pricing/" + b.ID.String()

	s.Run("success: partial update keeps other fields", func() {
		newPrice := int64(700000)
		updated := b.With(func(b *builder.PriceOverrideBuilder) { b.Price = newPrice }).BuildDomain()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), s.actor, b.ID, commands.UpdatePriceOverrideRequest{Price: &newPrice}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"price": newPrice}, "bearer-token")

		var resp resdto.PriceOverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(newPrice, resp.Price)
	})

	s.Run("input: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/property-pricing/xyz", map[string]any{"price": 1}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	s.Run("error: record not found", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).Return(nil, errs.ErrRecordNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"priceType": "available"}, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *PropertyPricingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/property-pricing/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: not the owner", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, id).Return(errs.ErrOwnership).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeOwnershipViolation)
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *PropertyPricingHandlerTestSuite) TestGet() {
	view := builder.NewPriceOverrideBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetPriceOverride(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/property-pricing/"+view.ID.String(), nil, "")

		var resp resdto.PriceOverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.Price, resp.Price)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetPriceOverride(gomock.Any(), view.ID).Return(nil, errs.ErrRecordNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/property-pricing/"+view.ID.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *PropertyPricingHandlerTestSuite) TestList() {
	propertyID := uuid.New()
	r := pricing.Range{Start: pricing.MustParseDate("2025-04-01"), End: pricing.MustParseDate("2025-05-01")}

	s.Run("success: lists overrides inside the range", func() {
		views := []*queries.PriceOverrideView{
			builder.NewPriceOverrideBuilder().With(func(b *builder.PriceOverrideBuilder) { b.PropertyID = propertyID }).BuildView(),
		}
		s.mockQueries.EXPECT().ListPriceOverrides(gomock.Any(), propertyID, r).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/property-pricing?propertyId="+propertyID.String()+"&startDate=2025-04-01&endDate=2025-05-01", nil, "")

		var resp []resdto.PriceOverrideResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal(propertyID, resp[0].PropertyID)
	})

	s.Run("input: missing propertyId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/property-pricing?startDate=2025-04-01&endDate=2025-05-01", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}
