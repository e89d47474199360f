package collector

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SwingScope/internal/model"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reliance", "RELIANCE.NS"},
		{"TCS", "TCS.NS"},
		{"  infy ", "INFY.NS"},
		{"TATAMOTORS.BO", "TATAMOTORS.BO"},
		{"AAPL.US", "AAPL.US"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSymbol(tt.in), "input %q", tt.in)
	}
}

func TestAnalyze_NoData(t *testing.T) {
	a := NewAnalyzer(&MockFetcher{})
	_, err := a.Analyze(context.Background(), "GHOST")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAnalyze_InsufficientData(t *testing.T) {
	a := NewAnalyzer(&MockFetcher{Bars: GenerateBars(100, 1)})
	_, err := a.Analyze(context.Background(), "TINY")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestAnalyze_ProviderErrorIsDistinct(t *testing.T) {
	boom := errors.New("connection refused")
	a := NewAnalyzer(&MockFetcher{Err: boom})
	_, err := a.Analyze(context.Background(), "RELIANCE")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	a := NewAnalyzer(&MockFetcher{Bars: GenerateBars(100, 126)})

	analysis, err := a.Analyze(context.Background(), "reliance")
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE.NS", analysis.Symbol)
	assert.Len(t, analysis.Bars, 126)
	require.NotNil(t, analysis.Recommendation)
	assert.Contains(t, []model.SignalType{model.SignalBuy, model.SignalSell, model.SignalHold},
		analysis.Recommendation.Signal)
	assert.LessOrEqual(t, analysis.Recommendation.BuyVotes+analysis.Recommendation.SellVotes, 5)

	// Pivot symmetry on whatever the latest bar was.
	p := analysis.Pivots
	assert.InDelta(t, 2*p.Pivot, p.R1+p.S1, 1e-9)
	assert.InDelta(t, 2*p.Pivot, p.R2+p.S2, 1e-9)
	assert.InDelta(t, 2*p.Pivot, p.R3+p.S3, 1e-9)
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := NewAnalyzer(&MockFetcher{Bars: GenerateBars(250, 126)})

	first, err := a.Analyze(context.Background(), "TCS")
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), "TCS")
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first.Recommendation, second.Recommendation),
		"recommendation must be identical across runs on identical input")
	assert.Equal(t, first.Pivots, second.Pivots)
}
