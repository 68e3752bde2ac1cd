//go:build unit

package estimator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stay-pricing/internal/domain/pricing"
	"stay-pricing/internal/estimator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCalculationClient_CalculateForProperty(t *testing.T) {
	propertyID := uuid.New()

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantStatus int
		wantCode   string
		check      func(t *testing.T, got pricing.Summary)
	}{
		{
			name:   "decodes the calculation",
			status: http.StatusOK,
			body: `{"propertyId":"` + propertyID.String() + `","startDate":"2025-04-01","endDate":"2025-04-03",
				"nights":1,"baseNights":0,"peakNights":0,"bestDealNights":1,"soldOutNights":1,
				"totalPrice":640000,"averagePerNight":640000,
				"breakdown":[{"date":"2025-04-01","price":640000,"priceType":"best_deal"},{"date":"2025-04-02","price":null,"priceType":"sold_out"}]}`,
			check: func(t *testing.T, got pricing.Summary) {
				assert.Equal(t, 1, got.Nights)
				assert.Equal(t, int64(640000), got.TotalPrice)
				assert.Equal(t, pricing.Counts{BestDeal: 1, SoldOut: 1}, got.Counts)
				require.Len(t, got.Breakdown, 2)
				assert.Equal(t, pricing.PriceTypeSoldOut, got.Breakdown[1].Status)
				assert.Nil(t, got.Breakdown[1].Price)
			},
		},
		{
			name:       "maps error envelope",
			status:     http.StatusNotFound,
			body:       `{"error":{"message":"Property or room not found","code":"TARGET_NOT_FOUND"}}`,
			wantErr:    true,
			wantStatus: http.StatusNotFound,
			wantCode:   "TARGET_NOT_FOUND",
		},
		{
			name:       "non json error body",
			status:     http.StatusBadGateway,
			body:       `bad gateway`,
			wantErr:    true,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/properties/"+propertyID.String()+"/pricing-calculation", r.URL.Path)
				assert.Equal(t, "2025-04-01", r.URL.Query().Get("startDate"))
				assert.Equal(t, "2025-04-03", r.URL.Query().Get("endDate"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := estimator.NewHTTPCalculationClient(srv.URL+"/", nil)
			got, err := client.CalculateForProperty(context.Background(), propertyID, rng("2025-04-01", "2025-04-03"))

			if tt.wantErr {
				var apiErr *estimator.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantStatus, apiErr.Status)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestHTTPCalculationClient_CalculateForRoom(t *testing.T) {
	roomID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/"+roomID.String()+"/pricing-calculation", r.URL.Path)
		assert.Equal(t, "2025-04-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2025-04-05", r.URL.Query().Get("endDate"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roomId":"` + roomID.String() + `","startDate":"2025-04-01","endDate":"2025-04-05",
			"nights":3,"pricePerNight":300000,"totalPrice":960000,"averagePerNight":320000,"soldOutNights":1}`))
	}))
	defer srv.Close()

	client := estimator.NewHTTPCalculationClient(srv.URL, nil)
	got, err := client.CalculateForRoom(context.Background(), roomID, rng("2025-04-01", "2025-04-05"))

	require.NoError(t, err)
	assert.Equal(t, pricing.Summary{
		Nights:          3,
		TotalPrice:      960000,
		AveragePerNight: 320000,
		Counts:          pricing.Counts{SoldOut: 1},
	}, got)
}

func TestHTTPCalculationClient_ListOverrides(t *testing.T) {
	propertyID := uuid.New()

	t.Run("sends the window and decodes price types", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/property-pricing", r.URL.Path)
			assert.Equal(t, propertyID.String(), r.URL.Query().Get("propertyId"))
			assert.Equal(t, "2025-04-01", r.URL.Query().Get("startDate"))
			assert.Equal(t, "2025-05-01", r.URL.Query().Get("endDate"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"` + uuid.NewString() + `","propertyId":"` + propertyID.String() + `","date":"2025-04-01","price":640000,"priceType":"best_deal"},
				{"id":"` + uuid.NewString() + `","propertyId":"` + propertyID.String() + `","date":"2025-04-04","price":1,"priceType":"sold_out"}
			]`))
		}))
		defer srv.Close()

		client := estimator.NewHTTPCalculationClient(srv.URL, nil)
		got, err := client.ListOverrides(context.Background(), propertyID, rng("2025-04-01", "2025-05-01"))

		require.NoError(t, err)
		assert.Equal(t, []pricing.Override{
			{Date: day("2025-04-01"), Price: 640000, PriceType: pricing.PriceTypeBestDeal},
			{Date: day("2025-04-04"), Price: 1, PriceType: pricing.PriceTypeSoldOut},
		}, got)
	})

	t.Run("malformed date fails decoding", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"date":"04/01/2025","price":1,"priceType":"available"}]`))
		}))
		defer srv.Close()

		client := estimator.NewHTTPCalculationClient(srv.URL, nil)
		_, err := client.ListOverrides(context.Background(), propertyID, rng("2025-04-01", "2025-05-01"))

		assert.Error(t, err)
	})
}
