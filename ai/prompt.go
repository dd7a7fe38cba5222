package ai

import (
	"fmt"
	"strings"

	"datasense/models"
)

// BuildSQLPrompt constructs the generation prompt from the schema snapshot
// and the user's natural-language question.
func BuildSQLPrompt(userPrompt string, schemaInfo string) string {
	var b strings.Builder
	b.WriteString("You are a SQL query generator. Convert natural language questions into valid SQL queries.\n\n")
	b.WriteString("Database Schema:\n")
	b.WriteString(schemaInfo)
	b.WriteString("\n\nRULES:\n")
	b.WriteString("1. Generate ONLY the SQL query, no explanations\n")
	b.WriteString("2. Use standard SQL syntax\n")
	b.WriteString("3. Return only SELECT statements for safety\n")
	b.WriteString("4. Support JOIN operations for multi-table queries\n")
	b.WriteString("5. Use aggregate functions (SUM, AVG, COUNT, etc.) when needed\n")
	b.WriteString("6. Do NOT use markdown or code blocks\n")
	b.WriteString("7. Do NOT include semicolon\n")
	b.WriteString("8. Return ONLY the raw SQL query\n\n")
	b.WriteString("User Question: ")
	b.WriteString(userPrompt)
	b.WriteString("\n\nSQL Query:")

	return b.String()
}

// BuildHTMLPagePrompt constructs a prompt asking the model for a
// self-contained HTML page visualizing a saved result file.
func BuildHTMLPagePrompt(resultFile *models.ResultFile, title string) string {
	var b strings.Builder
	b.WriteString("You are a professional web developer. Generate a beautiful, modern HTML page to display the following query result.\n\n")

	if title != "" {
		b.WriteString(fmt.Sprintf("Page Title: %s\n\n", title))
	}

	b.WriteString("Data Structure:\n")
	b.WriteString(fmt.Sprintf("Columns: %v\n", resultFile.Columns))
	b.WriteString(fmt.Sprintf("Total Rows: %d\n\n", resultFile.RowCount))

	b.WriteString("Data (all rows):\n")
	for i, row := range resultFile.Rows {
		b.WriteString(fmt.Sprintf("Row %d:", i+1))
		for _, col := range resultFile.Columns {
			b.WriteString(fmt.Sprintf(" %s=%v", col, row[col]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nRequirements:\n")
	b.WriteString("1. Create a professional, modern HTML page with a clean design\n")
	b.WriteString("2. Use a responsive table to display ALL the data rows provided above\n")
	b.WriteString("3. Include proper styling with CSS (embedded in <style> tag)\n")
	b.WriteString("4. Add a header with the title and a metadata section with row count and column names\n")
	b.WriteString("5. If the data has one label-like column and one numeric column, also render a simple bar chart using styled divs\n")
	b.WriteString("6. Make it mobile-friendly with proper table scrolling on small screens\n")
	b.WriteString("7. Add alternating row colors and hover effects on table rows\n")
	b.WriteString("\nReturn ONLY the complete HTML code, including <!DOCTYPE html>, <html>, <head>, and <body> tags. Do not include any markdown code blocks or explanations. The HTML must be self-contained.")

	return b.String()
}
