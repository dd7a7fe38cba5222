package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"datasense/models"
)

// ComputeStats derives per-column statistics from a result set. A column
// participates iff every non-null value in it is numeric; all figures are
// rounded to two decimal places.
func ComputeStats(results []map[string]any, columns []string) map[string]models.ColumnStats {
	if len(columns) == 0 {
		columns = CollectColumns(results)
	}

	stats := make(map[string]models.ColumnStats)

	for _, col := range columns {
		values, ok := numericColumn(results, col)
		if !ok || len(values) == 0 {
			continue
		}

		sum := 0.0
		min := values[0]
		max := values[0]
		for _, v := range values {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		stats[col] = models.ColumnStats{
			Count:   len(values),
			Sum:     round2(sum),
			Average: round2(sum / float64(len(values))),
			Min:     round2(min),
			Max:     round2(max),
			Range:   round2(max - min),
		}
	}

	return stats
}

// PercentageAnalysis mirrors the column against its total. Numeric columns
// get per-row share and cumulative share; other columns get a value
// distribution.
func PercentageAnalysis(results []map[string]any, columns []string, column string) ([]models.PercentageRow, error) {
	if len(columns) == 0 {
		columns = CollectColumns(results)
	}
	if !containsColumn(columns, column) {
		return nil, fmt.Errorf("column %q not found", column)
	}

	if values, ok := numericColumn(results, column); ok && len(values) > 0 {
		total := 0.0
		for _, v := range values {
			total += v
		}
		if total == 0 {
			return nil, fmt.Errorf("column %q sums to zero", column)
		}

		rows := make([]models.PercentageRow, len(values))
		cumulative := 0.0
		for i, v := range values {
			pct := v / total * 100
			cumulative += pct
			rows[i] = models.PercentageRow{
				Value:      v,
				Percentage: round2(pct),
				Cumulative: round2(cumulative),
			}
		}
		return rows, nil
	}

	// Categorical distribution, most frequent first.
	counts := make(map[string]int)
	var order []string
	for _, row := range results {
		key := fmt.Sprintf("%v", row[column])
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rows := make([]models.PercentageRow, len(order))
	for i, key := range order {
		rows[i] = models.PercentageRow{
			Value:      key,
			Count:      counts[key],
			Percentage: round2(float64(counts[key]) / float64(len(results)) * 100),
		}
	}
	return rows, nil
}

// TrendAnalysis orders the rows by date and reports the series with its
// overall growth rate.
func TrendAnalysis(results []map[string]any, dateColumn, valueColumn string) (*models.TrendAnalysis, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no rows to analyze")
	}

	type point struct {
		at    time.Time
		value float64
	}

	var points []point
	for _, row := range results {
		rawDate, ok := row[dateColumn]
		if !ok {
			return nil, fmt.Errorf("column %q not found", dateColumn)
		}
		at, err := parseDate(fmt.Sprintf("%v", rawDate))
		if err != nil {
			return nil, fmt.Errorf("column %q cannot be interpreted as dates: %w", dateColumn, err)
		}

		rawValue, ok := row[valueColumn]
		if !ok {
			return nil, fmt.Errorf("column %q not found", valueColumn)
		}
		value, numeric := numericValue(rawValue)
		if !numeric {
			return nil, fmt.Errorf("column %q is not numeric", valueColumn)
		}

		points = append(points, point{at: at, value: value})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].at.Before(points[j].at)
	})

	analysis := &models.TrendAnalysis{
		StartDate:    points[0].at.Format("2006-01-02"),
		EndDate:      points[len(points)-1].at.Format("2006-01-02"),
		TotalRecords: len(points),
		FirstValue:   points[0].value,
		LastValue:    points[len(points)-1].value,
	}

	for _, p := range points {
		analysis.Points = append(analysis.Points, models.TrendPoint{
			Date:  p.at.Format("2006-01-02"),
			Value: p.value,
		})
	}

	if analysis.FirstValue != 0 {
		growth := round2((analysis.LastValue - analysis.FirstValue) / analysis.FirstValue * 100)
		analysis.GrowthRate = &growth
	}

	return analysis, nil
}

// CollectColumns derives a stable column list from the union of row keys,
// for callers that did not receive an explicit column order.
func CollectColumns(results []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range results {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}

func containsColumn(columns []string, column string) bool {
	for _, c := range columns {
		if c == column {
			return true
		}
	}
	return false
}

// numericColumn returns the column's non-null values as floats, or false if
// any value is non-numeric.
func numericColumn(results []map[string]any, column string) ([]float64, bool) {
	var values []float64
	for _, row := range results {
		raw, ok := row[column]
		if !ok || raw == nil {
			continue
		}
		v, numeric := numericValue(raw)
		if !numeric {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// numericValue never reports NaN or infinity as numeric: those values are
// not representable in a JSON response.
func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !isFinite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseDate(raw string) (time.Time, error) {
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
