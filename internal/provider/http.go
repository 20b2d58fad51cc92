package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/tlcpharma/dashboard-backend/internal/analytics"
	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

// HTTPProvider fetches metric data from the pharmacy data service over
// its JSON API:
//
//	GET /api/series/{metric}/{start}/{end}  → {"days":[{"date":"YYYY-MM-DD","value":n}, ...]}
//	GET /api/total/{metric}/{start}/{end}   → {"value":n}
//	GET /api/latest_date_with_data          → {"date":"YYYY-MM-DD"}
//
// The pharmacy is carried in the X-Pharmacy header on every call.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryConfig
	log        *zap.Logger
}

// NewHTTPProvider creates a provider for the data service at baseURL.
func NewHTTPProvider(baseURL string, timeout time.Duration, retry RetryConfig, log *zap.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retry:      retry,
		log:        log,
	}
}

type seriesResponse struct {
	Days []struct {
		Date  string  `json:"date"`
		Value float64 `json:"value"`
	} `json:"days"`
}

type totalResponse struct {
	Value float64 `json:"value"`
}

type latestDateResponse struct {
	Date string `json:"date"`
}

// FetchSeries implements Provider.
func (p *HTTPProvider) FetchSeries(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) ([]analytics.MetricSample, error) {
	endpoint := fmt.Sprintf("/api/series/%s/%s/%s",
		url.PathEscape(string(metric)), dateutil.FormatDate(start), dateutil.FormatDate(end))

	var resp seriesResponse
	if err := p.getJSON(ctx, pharmacyID, endpoint, &resp); err != nil {
		return nil, err
	}

	samples := make([]analytics.MetricSample, 0, len(resp.Days))
	for _, d := range resp.Days {
		date, err := dateutil.ParseDate(d.Date)
		if err != nil {
			// One malformed day should not sink the whole series.
			p.log.Warn("skipping malformed sample date",
				zap.String("metric", string(metric)), zap.String("date", d.Date))
			continue
		}
		samples = append(samples, analytics.MetricSample{Date: date, Value: d.Value})
	}
	return samples, nil
}

// FetchTotal implements Provider.
func (p *HTTPProvider) FetchTotal(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) (float64, error) {
	endpoint := fmt.Sprintf("/api/total/%s/%s/%s",
		url.PathEscape(string(metric)), dateutil.FormatDate(start), dateutil.FormatDate(end))

	var resp totalResponse
	if err := p.getJSON(ctx, pharmacyID, endpoint, &resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

// LatestDateWithData implements Provider.
func (p *HTTPProvider) LatestDateWithData(ctx context.Context, pharmacyID string) (time.Time, error) {
	var resp latestDateResponse
	if err := p.getJSON(ctx, pharmacyID, "/api/latest_date_with_data", &resp); err != nil {
		return time.Time{}, err
	}
	return dateutil.ParseDate(resp.Date)
}

func (p *HTTPProvider) getJSON(ctx context.Context, pharmacyID, endpoint string, out any) error {
	_, err := withRetry(ctx, p.retry, func(ctx context.Context) (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+endpoint, nil)
		if err != nil {
			return struct{}{}, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Pharmacy", pharmacyID)

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return struct{}{}, &UpstreamError{Endpoint: endpoint, Retryable: true, Cause: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return struct{}{}, &UpstreamError{
				StatusCode: resp.StatusCode,
				Endpoint:   endpoint,
				// Server-side failures and throttling are worth another
				// attempt; anything else in 4xx is a caller bug.
				Retryable: resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
			}
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return struct{}{}, &UpstreamError{Endpoint: endpoint, Retryable: false, Cause: fmt.Errorf("decode response: %w", err)}
		}
		return struct{}{}, nil
	})
	return err
}
