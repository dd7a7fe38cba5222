package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"datasense/models"
)

// ResultsStorage persists exported query results (CSV/JSON) under the
// outputs directory and generated HTML pages under the sites directory.
type ResultsStorage struct {
	outputsDir string
	sitesDir   string
}

func NewResultsStorage(outputsDir string, sitesDir string) (*ResultsStorage, error) {
	if err := os.MkdirAll(outputsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create outputs directory: %w", err)
	}

	if err := os.MkdirAll(sitesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sites directory: %w", err)
	}

	return &ResultsStorage{
		outputsDir: outputsDir,
		sitesDir:   sitesDir,
	}, nil
}

// GenerateFileName creates a unique timestamped filename.
func (r *ResultsStorage) GenerateFileName(format string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("export_%s_%s.%s", timestamp, uuid.NewString()[:8], format)
}

// SaveResultAsCSV writes the result set as a CSV file: header row first,
// then one record per row in column order, nil rendered as empty string.
func (r *ResultsStorage) SaveResultAsCSV(result *models.QueryResult) (string, error) {
	filename := r.GenerateFileName("csv")
	filePath := filepath.Join(r.outputsDir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(result.Columns); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range result.Rows {
		record := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			if val, ok := row[col]; ok && val != nil {
				record[i] = fmt.Sprintf("%v", val)
			}
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return filename, nil
}

// SaveResultAsExcel writes the result set as an xlsx workbook with the same
// layout as the CSV export: header row first, then one row per record.
func (r *ResultsStorage) SaveResultAsExcel(result *models.QueryResult) (string, error) {
	filename := r.GenerateFileName("xlsx")
	filePath := filepath.Join(r.outputsDir, filename)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range result.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, row := range result.Rows {
		for i, col := range result.Columns {
			val, ok := row[col]
			if !ok || val == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			if err != nil {
				return "", fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return "", fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return filename, nil
}

// SaveResultAsJSON writes the result set plus metadata as a JSON file.
func (r *ResultsStorage) SaveResultAsJSON(result *models.QueryResult, query string) (string, error) {
	filename := r.GenerateFileName("json")
	filePath := filepath.Join(r.outputsDir, filename)

	resultData := models.ResultFile{
		Filename:  filename,
		Query:     query,
		Timestamp: time.Now().Format(time.RFC3339),
		Columns:   result.Columns,
		Rows:      result.Rows,
		RowCount:  len(result.Rows),
	}

	data, err := json.MarshalIndent(resultData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filename, nil
}

// GetResultFile reads back an exported file, converting CSV and Excel
// exports to the same shape as JSON ones.
func (r *ResultsStorage) GetResultFile(filename string) (*models.ResultFile, error) {
	filePath := filepath.Join(r.outputsDir, filepath.Base(filename))

	switch filepath.Ext(filename) {
	case ".json":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		var result models.ResultFile
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		return &result, nil

	case ".csv":
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		return recordsToResultFile(filename, records), nil

	case ".xlsx":
		f, err := excelize.OpenFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("Excel file has no sheets")
		}

		records, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read Excel rows: %w", err)
		}

		return recordsToResultFile(filename, records), nil
	}

	return nil, fmt.Errorf("unsupported file format")
}

// recordsToResultFile converts a header-plus-rows record grid (CSV or Excel)
// into the same shape as a JSON export.
func recordsToResultFile(filename string, records [][]string) *models.ResultFile {
	result := &models.ResultFile{
		Filename:  filename,
		Columns:   []string{},
		Rows:      []map[string]any{},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if len(records) == 0 {
		return result
	}

	result.Columns = records[0]
	for _, record := range records[1:] {
		row := make(map[string]any, len(result.Columns))
		for i, col := range result.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	result.RowCount = len(result.Rows)

	return result
}

// ListResultFiles returns metadata for every exported CSV/JSON/Excel file.
func (r *ResultsStorage) ListResultFiles() ([]models.ResultFileInfo, error) {
	files, err := os.ReadDir(r.outputsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs directory: %w", err)
	}

	var resultFiles []models.ResultFileInfo
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := filepath.Ext(file.Name())
		if ext != ".json" && ext != ".csv" && ext != ".xlsx" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		resultFiles = append(resultFiles, models.ResultFileInfo{
			Filename: file.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Format(time.RFC3339),
			Format:   ext[1:],
		})
	}

	return resultFiles, nil
}

// SaveHTMLFile stores a generated HTML page in the sites directory.
func (r *ResultsStorage) SaveHTMLFile(filename string, content []byte) (string, error) {
	if filepath.Ext(filename) != ".html" {
		filename += ".html"
	}

	filePath := filepath.Join(r.sitesDir, filepath.Base(filename))

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}

	return filepath.Base(filename), nil
}

// GetHTMLFilePath returns the on-disk path for a generated HTML page.
func (r *ResultsStorage) GetHTMLFilePath(filename string) string {
	if filepath.Ext(filename) != ".html" {
		filename += ".html"
	}
	return filepath.Join(r.sitesDir, filepath.Base(filename))
}
