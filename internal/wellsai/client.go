// internal/wellsai/client.go
// Client resty untuk service forecasting Wells AI (header x-api-key)

package wellsai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultRadiusMi = 5.0

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if cfg.APIKey != "" {
		rc.SetHeader("x-api-key", cfg.APIKey)
	}
	return &Client{http: rc}
}

// APIError adalah respons HTTP >= 400 dari Wells AI.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("wells ai error: status=%d", e.Status)
	}
	return fmt.Sprintf("wells ai error: status=%d, detail=%s", e.Status, e.Detail)
}

// FastAPI: {"detail": "..."} atau {"detail": [...]}
type errorBody struct {
	Detail any `json:"detail"`
}

func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	if err := c.do(ctx, http.MethodPost, "/api/analysis/analyze", nil, req, out); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return out, nil
}

func (c *Client) Neighborhood(ctx context.Context, req NeighborhoodRequest) (*NeighborhoodResponse, error) {
	if req.RadiusMi <= 0 {
		req.RadiusMi = DefaultRadiusMi
	}
	out := new(NeighborhoodResponse)
	if err := c.do(ctx, http.MethodPost, "/api/neighborhood/analyze", nil, req, out); err != nil {
		return nil, fmt.Errorf("neighborhood: %w", err)
	}
	return out, nil
}

func (c *Client) SaveReport(ctx context.Context, userID string, rep Report) (*SaveReportResponse, error) {
	out := new(SaveReportResponse)
	params := map[string]string{"user": userID}
	if err := c.do(ctx, http.MethodPost, "/api/reports/save/{user}", params, rep, out); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return out, nil
}

func (c *Client) ListReports(ctx context.Context, userID string) ([]ReportSummary, error) {
	var out struct {
		Reports []ReportSummary `json:"reports"`
	}
	params := map[string]string{"user": userID}
	if err := c.do(ctx, http.MethodGet, "/api/reports/list/{user}", params, nil, &out); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if out.Reports == nil {
		return []ReportSummary{}, nil
	}
	return out.Reports, nil
}

func (c *Client) LoadReport(ctx context.Context, userID, reportID string) (*Report, error) {
	out := new(Report)
	params := map[string]string{"user": userID, "id": reportID}
	if err := c.do(ctx, http.MethodGet, "/api/reports/load/{user}/{id}", params, nil, out); err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, pathParams map[string]string, body, result any) error {
	apiErr := new(errorBody)
	r := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr)
	if pathParams != nil {
		r.SetPathParams(pathParams)
	}
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		e := &APIError{Status: resp.StatusCode()}
		if apiErr.Detail != nil {
			e.Detail = fmt.Sprint(apiErr.Detail)
		}
		return e
	}
	return nil
}
