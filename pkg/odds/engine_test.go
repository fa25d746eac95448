package odds

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertOdds(t *testing.T, expected []string, actual []decimal.Decimal) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i, want := range expected {
		assert.True(t, d(want).Equal(actual[i]), "option %d: expected %s, got %s", i, want, actual[i].String())
	}
}

// TestRecompute_NoBets tests that an untouched market keeps its initial prices
func TestRecompute_NoBets(t *testing.T) {
	initial := []decimal.Decimal{d("2.00"), d("3.00"), d("1.50")}

	result, err := Recompute(0, []int{0, 0, 0}, initial)

	require.NoError(t, err)
	assertOdds(t, []string{"2.00", "3.00", "1.50"}, result)
}

// TestRecompute_FirstBet tests the first bet of a two-option event
func TestRecompute_FirstBet(t *testing.T) {
	result, err := Recompute(1, []int{1, 0}, []decimal.Decimal{d("2.00"), d("3.00")})

	require.NoError(t, err)
	assertOdds(t, []string{"1.00", "3.00"}, result)
}

// TestRecompute_EvenSplit tests that options with equal share get equal odds
func TestRecompute_EvenSplit(t *testing.T) {
	result, err := Recompute(2, []int{1, 1}, []decimal.Decimal{d("2.00"), d("3.00")})

	require.NoError(t, err)
	assertOdds(t, []string{"2.00", "2.00"}, result)
}

// TestRecompute_UntouchedOptionRisesWithMarket tests the 2*T branch
func TestRecompute_UntouchedOptionRisesWithMarket(t *testing.T) {
	result, err := Recompute(5, []int{3, 2, 0}, []decimal.Decimal{d("2.00"), d("3.00"), d("4.00")})

	require.NoError(t, err)
	assertOdds(t, []string{"1.67", "2.50", "10.00"}, result)
}

// TestRecompute_UntouchedOptionFloor tests that an untouched option never drops below its initial price
func TestRecompute_UntouchedOptionFloor(t *testing.T) {
	result, err := Recompute(2, []int{2, 0}, []decimal.Decimal{d("1.10"), d("7.25")})

	require.NoError(t, err)
	assertOdds(t, []string{"1.00", "7.25"}, result)
}

func TestRecompute_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		perOpt   []int
		expected []string
	}{
		{name: "exact halves", total: 3, perOpt: []int{2, 1}, expected: []string{"1.50", "3.00"}},
		{name: "two thirds round up", total: 5, perOpt: []int{3, 2}, expected: []string{"1.67", "2.50"}},
		{name: "half rounds up", total: 9, perOpt: []int{8, 1}, expected: []string{"1.13", "9.00"}},
		{name: "sevenths", total: 7, perOpt: []int{6, 1}, expected: []string{"1.17", "7.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recompute(tt.total, tt.perOpt, []decimal.Decimal{d("2.00"), d("2.00")})
			require.NoError(t, err)
			assertOdds(t, tt.expected, result)
		})
	}
}

// TestRecompute_Deterministic tests that replaying the same distribution gives identical odds
func TestRecompute_Deterministic(t *testing.T) {
	initial := []decimal.Decimal{d("2.00"), d("3.00"), d("5.00")}
	sequence := []int{0, 1, 1, 2, 0, 0, 1}

	replay := func() [][]decimal.Decimal {
		counts := make([]int, len(initial))
		var history [][]decimal.Decimal
		for i, option := range sequence {
			counts[option]++
			result, err := Recompute(i+1, counts, initial)
			require.NoError(t, err)
			history = append(history, result)
		}
		return history
	}

	first := replay()
	second := replay()

	require.Len(t, second, len(first))
	for step := range first {
		for i := range first[step] {
			assert.True(t, first[step][i].Equal(second[step][i]), "step %d option %d differs", step, i)
		}
	}
}

func TestRecompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perOpt  []int
		initial []decimal.Decimal
	}{
		{name: "length mismatch", total: 1, perOpt: []int{1}, initial: []decimal.Decimal{d("2.00"), d("3.00")}},
		{name: "negative total", total: -1, perOpt: []int{0, 0}, initial: []decimal.Decimal{d("2.00"), d("3.00")}},
		{name: "negative count", total: 0, perOpt: []int{1, -1}, initial: []decimal.Decimal{d("2.00"), d("3.00")}},
		{name: "sum mismatch", total: 3, perOpt: []int{1, 1}, initial: []decimal.Decimal{d("2.00"), d("3.00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recompute(tt.total, tt.perOpt, tt.initial)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}

// TestRecompute_NonPositiveSeed tests that bad seed data is reported rather than priced
func TestRecompute_NonPositiveSeed(t *testing.T) {
	result, err := Recompute(0, []int{0, 0}, []decimal.Decimal{d("2.00"), d("0.00")})

	assert.ErrorIs(t, err, ErrNonPositiveOdds)
	assert.Nil(t, result)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "2.35", Normalize(d("2.345")).StringFixed(Places))
	assert.Equal(t, "2.34", Normalize(d("2.344")).StringFixed(Places))
	assert.Equal(t, "3.00", Normalize(d("3")).StringFixed(Places))
}
