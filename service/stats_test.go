package service

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salaryRows() []map[string]any {
	return []map[string]any{
		{"name": "Alice Johnson", "salary": 75000.0},
		{"name": "Bob Smith", "salary": 65000.0},
		{"name": "Carol Martinez", "salary": 80000.0},
		{"name": "David Lee", "salary": 60000.0},
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(salaryRows(), []string{"name", "salary"})

	require.Contains(t, stats, "salary")
	assert.NotContains(t, stats, "name")

	salary := stats["salary"]
	assert.Equal(t, 4, salary.Count)
	assert.Equal(t, 280000.0, salary.Sum)
	assert.Equal(t, 70000.0, salary.Average)
	assert.Equal(t, 60000.0, salary.Min)
	assert.Equal(t, 80000.0, salary.Max)
	assert.Equal(t, 20000.0, salary.Range)
}

func TestComputeStatsRounding(t *testing.T) {
	rows := []map[string]any{
		{"score": 1.0},
		{"score": 2.0},
		{"score": 2.0},
	}

	stats := ComputeStats(rows, []string{"score"})
	require.Contains(t, stats, "score")
	assert.Equal(t, 1.67, stats["score"].Average)
}

func TestComputeStatsMixedColumnSkipped(t *testing.T) {
	rows := []map[string]any{
		{"value": 10.0},
		{"value": "n/a"},
	}

	stats := ComputeStats(rows, []string{"value"})
	assert.Empty(t, stats)
}

func TestComputeStatsNumericStrings(t *testing.T) {
	rows := []map[string]any{
		{"count": "3"},
		{"count": "7"},
	}

	stats := ComputeStats(rows, []string{"count"})
	require.Contains(t, stats, "count")
	assert.Equal(t, 5.0, stats["count"].Average)
}

func TestComputeStatsNonFiniteValuesSkipped(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]any
	}{
		{
			name: "nan string",
			rows: []map[string]any{{"x": "NaN"}, {"x": "1"}},
		},
		{
			name: "inf string",
			rows: []map[string]any{{"x": "Inf"}, {"x": "-Inf"}},
		},
		{
			name: "nan float",
			rows: []map[string]any{{"x": math.NaN()}, {"x": 1.0}},
		},
		{
			name: "inf float",
			rows: []map[string]any{{"x": math.Inf(1)}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := ComputeStats(tc.rows, []string{"x"})
			assert.Empty(t, stats)

			// The response must stay JSON-serializable.
			_, err := json.Marshal(stats)
			assert.NoError(t, err)
		})
	}
}

func TestTrendAnalysisNonFiniteValue(t *testing.T) {
	rows := []map[string]any{
		{"day": "2024-01-01", "revenue": "NaN"},
	}

	_, err := TrendAnalysis(rows, "day", "revenue")
	assert.ErrorContains(t, err, "not numeric")
}

func TestComputeStatsNullsIgnored(t *testing.T) {
	rows := []map[string]any{
		{"salary": 100.0},
		{"salary": nil},
		{"salary": 200.0},
	}

	stats := ComputeStats(rows, []string{"salary"})
	require.Contains(t, stats, "salary")
	assert.Equal(t, 2, stats["salary"].Count)
	assert.Equal(t, 150.0, stats["salary"].Average)
}

func TestComputeStatsDerivesColumns(t *testing.T) {
	stats := ComputeStats(salaryRows(), nil)
	assert.Contains(t, stats, "salary")
}

func TestPercentageAnalysisNumeric(t *testing.T) {
	rows := []map[string]any{
		{"amount": 25.0},
		{"amount": 75.0},
	}

	out, err := PercentageAnalysis(rows, []string{"amount"}, "amount")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 25.0, out[0].Percentage)
	assert.Equal(t, 25.0, out[0].Cumulative)
	assert.Equal(t, 75.0, out[1].Percentage)
	assert.Equal(t, 100.0, out[1].Cumulative)
}

func TestPercentageAnalysisCategorical(t *testing.T) {
	rows := []map[string]any{
		{"dept": "Engineering"},
		{"dept": "Engineering"},
		{"dept": "Sales"},
		{"dept": "HR"},
	}

	out, err := PercentageAnalysis(rows, []string{"dept"}, "dept")
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Engineering", out[0].Value)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, 50.0, out[0].Percentage)
}

func TestPercentageAnalysisUnknownColumn(t *testing.T) {
	_, err := PercentageAnalysis(salaryRows(), []string{"name", "salary"}, "bonus")
	assert.ErrorContains(t, err, "not found")
}

func TestTrendAnalysis(t *testing.T) {
	rows := []map[string]any{
		{"day": "2024-03-01", "revenue": 150.0},
		{"day": "2024-01-01", "revenue": 100.0},
		{"day": "2024-02-01", "revenue": 120.0},
	}

	out, err := TrendAnalysis(rows, "day", "revenue")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", out.StartDate)
	assert.Equal(t, "2024-03-01", out.EndDate)
	assert.Equal(t, 3, out.TotalRecords)
	assert.Equal(t, 100.0, out.FirstValue)
	assert.Equal(t, 150.0, out.LastValue)
	require.NotNil(t, out.GrowthRate)
	assert.Equal(t, 50.0, *out.GrowthRate)
}

func TestTrendAnalysisBadDates(t *testing.T) {
	rows := []map[string]any{
		{"day": "not a date", "revenue": 1.0},
	}

	_, err := TrendAnalysis(rows, "day", "revenue")
	assert.ErrorContains(t, err, "dates")
}

func TestTrendAnalysisEmpty(t *testing.T) {
	_, err := TrendAnalysis(nil, "day", "revenue")
	assert.ErrorContains(t, err, "no rows")
}
