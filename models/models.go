package models

type QueryRequest struct {
	Prompt string `json:"prompt"`
}

type QueryResponse struct {
	SQLQuery string           `json:"sql_query"`
	Results  []map[string]any `json:"results"`
	Columns  []string         `json:"columns"`
	RowCount int              `json:"row_count"`
	Error    string           `json:"error,omitempty"`
}

type SchemaResponse struct {
	Schema string `json:"schema"`
}

// QueryResult is the immutable product of one SQL execution.
// RowCount always equals len(Rows) and every row is keyed by Columns.
type QueryResult struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
}

type ExportRequest struct {
	Results []map[string]any `json:"results"`
	Columns []string         `json:"columns,omitempty"`
	Format  string           `json:"format,omitempty"` // "csv" (default) or "excel"
}

type ExportResponse struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type StatsRequest struct {
	Results []map[string]any `json:"results"`
	Columns []string         `json:"columns,omitempty"`
}

// ColumnStats holds the derived statistics for one all-numeric column.
// Every value is rounded to two decimal places.
type ColumnStats struct {
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Range   float64 `json:"range"`
}

type PercentageRequest struct {
	Results []map[string]any `json:"results"`
	Columns []string         `json:"columns,omitempty"`
	Column  string           `json:"column"`
}

type PercentageRow struct {
	Value      any     `json:"value"`
	Count      int     `json:"count,omitempty"`
	Percentage float64 `json:"percentage"`
	Cumulative float64 `json:"cumulative_percentage,omitempty"`
}

type TrendRequest struct {
	Results     []map[string]any `json:"results"`
	DateColumn  string           `json:"date_column"`
	ValueColumn string           `json:"value_column"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type TrendAnalysis struct {
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	TotalRecords int          `json:"total_records"`
	FirstValue   float64      `json:"first_value"`
	LastValue    float64      `json:"last_value"`
	GrowthRate   *float64     `json:"growth_rate,omitempty"`
	Points       []TrendPoint `json:"trend_data"`
}

type HistoryEntry struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	SQLQuery  string `json:"sql_query"`
	RowCount  int    `json:"row_count"`
	Timestamp string `json:"timestamp"`
}

type ResultFile struct {
	Filename  string           `json:"filename"`
	Query     string           `json:"query,omitempty"`
	Timestamp string           `json:"timestamp"`
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	RowCount  int              `json:"row_count"`
}

type ResultFileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	Format   string `json:"format"`
}

type GenerateHTMLRequest struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}
