// internal/wellsai/client_test.go

package wellsai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/forecast"
	"alphawell/internal/wellsai"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *wellsai.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return wellsai.New(wellsai.Config{BaseURL: srv.URL + "/", APIKey: "k-123", Timeout: 2 * time.Second})
}

func TestAnalyzeSendsPayloadAndKey(t *testing.T) {
	var got wellsai.AnalyzeRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analysis/analyze", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "k-123", r.Header.Get("x-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"production_data": []map[string]any{
				{"time": 1, "gross_production_oil_bbls": 100, "gross_production_wh_gas_mcf": 200, "gross_production_water_bbls": 10},
			},
			"financial_metrics": map[string]any{"npv": 1.5e6},
		})
	})

	resp, err := c.Analyze(context.Background(), wellsai.BuildAnalyzeRequest(forecast.DefaultInputs()))
	require.NoError(t, err)
	require.Len(t, resp.ProductionData, 1)
	assert.Equal(t, 1.5e6, resp.FinancialMetrics.NPV)

	assert.Equal(t, 180, got.WellParams.PredictionHorizon)
	assert.InDelta(t, 10, got.EconomicParams.DiscountFactor, 1e-9)
	assert.InDelta(t, 10_000, got.EconomicParams.FixedOPEX, 1e-9)
	assert.InDelta(t, 75, got.EconomicParams.WorkingInterestOil, 1e-9)
	assert.InDelta(t, 2, got.CarbonParams.FlaringPercentage, 1e-9)
	assert.True(t, got.IncludeConfidence)
}

func TestAnalyzeErrorCarriesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "bad horizon"})
	})

	_, err := c.Analyze(context.Background(), wellsai.AnalyzeRequest{})
	require.Error(t, err)
	var apiErr *wellsai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "bad horizon", apiErr.Detail)
}

func TestNeighborhoodDefaultsRadius(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req wellsai.NeighborhoodRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 5.0, req.RadiusMi)
		writeJSON(w, http.StatusOK, map[string]any{
			"wells": []map[string]any{{"well_id": "N-1", "distance_mi": 1.234, "cumulative_oil": 400000}},
			"neighborhood_production_metrics": map[string]any{"avg_carbon_intensity": []float64{40, 44}},
		})
	})

	resp, err := c.Neighborhood(context.Background(), wellsai.NeighborhoodRequest{Formation: "WOLFCAMP"})
	require.NoError(t, err)
	wells := wellsai.AdaptNeighbors(resp, "WOLFCAMP")
	require.Len(t, wells, 1)
	assert.Equal(t, "N-1", wells[0].ID)
	assert.Equal(t, "WOLFCAMP", wells[0].Formation)
	assert.Equal(t, "ACTIVE", wells[0].Status)
	assert.Equal(t, 1.23, wells[0].Distance)
	assert.Equal(t, 42.0, wells[0].CarbonIntensity)
}

func TestReportsRoundTrip(t *testing.T) {
	var saved wellsai.Report
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/reports/save/u-1":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
			writeJSON(w, http.StatusOK, map[string]any{"report_id": "r-1"})
		case r.URL.Path == "/api/reports/list/u-1":
			writeJSON(w, http.StatusOK, map[string]any{"reports": []map[string]any{{"report_id": "r-1"}}})
		case r.URL.Path == "/api/reports/load/u-1/r-1":
			writeJSON(w, http.StatusOK, saved)
		default:
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not Found"})
		}
	})
	ctx := context.Background()
	res := forecast.Run(forecast.DefaultInputs())

	out, err := c.SaveReport(ctx, "u-1", wellsai.BuildReport(res))
	require.NoError(t, err)
	assert.Equal(t, "r-1", out.ReportID)
	assert.Len(t, saved.ProductionData, len(res.Production))

	list, err := c.ListReports(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	rep, err := c.LoadReport(ctx, "u-1", "r-1")
	require.NoError(t, err)
	s := wellsai.Adapt(rep)
	require.Len(t, s.Production, len(res.Production))
	last := len(res.Production) - 1
	assert.InDelta(t, res.Production[last].CumulativeOil, s.Production[last].CumulativeOil, 1e-3)

	_, err = c.LoadReport(ctx, "u-1", "missing")
	var apiErr *wellsai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
