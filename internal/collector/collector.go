package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"SwingScope/internal/calculator"
	"SwingScope/internal/model"
	"SwingScope/internal/strategy"
)

// ErrNoData means the provider has no price history for the symbol.
var ErrNoData = errors.New("no technical data for symbol")

// ErrInsufficientData means history exists but is too short for the signal
// voter, which inspects the latest and prior bar.
var ErrInsufficientData = errors.New("insufficient price history for analysis")

// defaultSuffix is appended to symbols that carry no exchange suffix.
const defaultSuffix = ".NS"

// NormalizeSymbol upper-cases the input and appends the default exchange
// suffix when the symbol carries none.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return s
	}
	if !strings.Contains(s, ".") {
		s += defaultSuffix
	}
	return s
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

// GenerateBars produces a deterministic drifting series for development.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Analyzer orchestrates the full per-request pipeline: normalize the symbol,
// fetch history, annotate with indicators, derive pivots, and reduce the
// latest two bars to a recommendation. Stateless; every call is independent
// and idempotent for identical input data.
type Analyzer struct {
	Fetcher Fetcher
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(fetcher Fetcher) *Analyzer {
	return &Analyzer{Fetcher: fetcher}
}

// Analyze runs the pipeline for one symbol. An empty provider result maps to
// ErrNoData; fewer than two bars maps to ErrInsufficientData; transport and
// provider failures are wrapped and surfaced distinctly.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (*model.Analysis, error) {
	sym := NormalizeSymbol(symbol)

	bars, err := a.Fetcher.FetchDailyBars(ctx, sym)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", sym, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", sym, ErrNoData)
	}
	if len(bars) < 2 {
		return nil, fmt.Errorf("%s: %w", sym, ErrInsufficientData)
	}

	annotated, err := calculator.Annotate(bars)
	if err != nil {
		return nil, fmt.Errorf("annotate %s: %w", sym, err)
	}

	latest := annotated[len(annotated)-1]
	prev := annotated[len(annotated)-2]

	return &model.Analysis{
		Symbol:         sym,
		Bars:           annotated,
		Recommendation: strategy.Evaluate(latest, prev),
		Pivots:         calculator.Pivots(latest.Bar),
		FetchedAt:      time.Now(),
	}, nil
}
