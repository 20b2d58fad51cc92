package provider

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tlcpharma/dashboard-backend/internal/analytics"
	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

// MemoryProvider implements Provider with in-memory sample storage. It
// backs local development and tests; production talks to the data
// service through HTTPProvider.
type MemoryProvider struct {
	mu sync.RWMutex

	// pharmacy → metric → date label → value
	samples map[string]map[Metric]map[string]float64
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		samples: make(map[string]map[Metric]map[string]float64),
	}
}

// Put records one day's value for a metric, replacing any existing value
// for that day.
func (p *MemoryProvider) Put(pharmacyID string, metric Metric, date time.Time, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metrics, ok := p.samples[pharmacyID]
	if !ok {
		metrics = make(map[Metric]map[string]float64)
		p.samples[pharmacyID] = metrics
	}
	days, ok := metrics[metric]
	if !ok {
		days = make(map[string]float64)
		metrics[metric] = days
	}
	days[dateutil.FormatDate(date)] = value
}

// FetchSeries implements Provider.
func (p *MemoryProvider) FetchSeries(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) ([]analytics.MetricSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	days := p.samples[pharmacyID][metric]
	var samples []analytics.MetricSample
	for label, value := range days {
		date, err := dateutil.ParseDate(label)
		if err != nil {
			continue
		}
		if date.Before(dateutil.Day(start)) || date.After(dateutil.Day(end)) {
			continue
		}
		samples = append(samples, analytics.MetricSample{Date: date, Value: value})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Date.Before(samples[j].Date) })
	return samples, nil
}

// FetchTotal implements Provider. Rate metrics average across observed
// days; flow metrics sum, matching the data service's aggregation.
func (p *MemoryProvider) FetchTotal(ctx context.Context, pharmacyID string, metric Metric, start, end time.Time) (float64, error) {
	samples, err := p.FetchSeries(ctx, pharmacyID, metric, start, end)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, nil
	}
	var sum float64
	for _, s := range samples {
		sum += s.Value
	}
	if isRateMetric(metric) {
		return sum / float64(len(samples)), nil
	}
	return sum, nil
}

// LatestDateWithData implements Provider.
func (p *MemoryProvider) LatestDateWithData(ctx context.Context, pharmacyID string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	var latest time.Time
	for _, days := range p.samples[pharmacyID] {
		for label := range days {
			date, err := dateutil.ParseDate(label)
			if err != nil {
				continue
			}
			if date.After(latest) {
				latest = date
			}
		}
	}
	if latest.IsZero() {
		return time.Time{}, &UpstreamError{Endpoint: "latest_date_with_data", StatusCode: 404}
	}
	return latest, nil
}

// isRateMetric reports whether a metric aggregates by averaging rather
// than summing over a window.
func isRateMetric(metric Metric) bool {
	switch metric {
	case MetricGrossProfitPercent, MetricAvgBasket, MetricAvgBasketSize,
		MetricOpeningStock, MetricClosingStock, MetricTurnoverRatio:
		return true
	}
	return false
}
