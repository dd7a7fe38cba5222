package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"datasense/cache"
	"datasense/models"
)

const defaultModel = "gemini-1.5-flash"

type AIService struct {
	apiKey                string
	modelName             string
	cache                 *cache.Cache
	httpClient            *http.Client
	httpClientLongTimeout *http.Client // For HTML page generation
	baseURL               string
	lastRequestTime       time.Time
	requestMutex          sync.Mutex
	minRequestInterval    time.Duration
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

type modelListResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func New(apiKey string, modelName string, appCache *cache.Cache) (*AIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	a := &AIService{
		apiKey:                apiKey,
		modelName:             modelName,
		cache:                 appCache,
		httpClient:            &http.Client{Timeout: 30 * time.Second},
		httpClientLongTimeout: &http.Client{Timeout: 300 * time.Second},
		baseURL:               "https://generativelanguage.googleapis.com/v1",
		minRequestInterval:    500 * time.Millisecond,
	}

	if a.modelName == "" {
		a.modelName = a.discoverModel()
	}

	return a, nil
}

func (a *AIService) Close() error {
	// HTTP clients don't require explicit closing
	return nil
}

func (a *AIService) ModelName() string {
	return a.modelName
}

// discoverModel picks a preferred model from the provider's list endpoint,
// falling back to the default when the call fails.
func (a *AIService) discoverModel() string {
	listURL := fmt.Sprintf("%s/models?key=%s", a.baseURL, a.apiKey)

	resp, err := a.httpClient.Get(listURL)
	if err != nil {
		return defaultModel
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return defaultModel
	}

	var list modelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return defaultModel
	}

	var available []string
	for _, m := range list.Models {
		name := strings.TrimPrefix(m.Name, "models/")
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				available = append(available, name)
				break
			}
		}
	}

	preferred := []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro"}
	for _, p := range preferred {
		for _, name := range available {
			if strings.Contains(name, p) {
				return name
			}
		}
	}

	if len(available) > 0 {
		return available[0]
	}
	return defaultModel
}

// rateLimit ensures a minimum interval between requests to avoid burst
// rate errors from the provider.
func (a *AIService) rateLimit() {
	a.requestMutex.Lock()
	defer a.requestMutex.Unlock()

	now := time.Now()
	sinceLast := now.Sub(a.lastRequestTime)

	if sinceLast < a.minRequestInterval {
		time.Sleep(a.minRequestInterval - sinceLast)
	}

	a.lastRequestTime = time.Now()
}

func (a *AIService) callGemini(ctx context.Context, prompt string) (string, error) {
	return a.callGeminiWithClient(ctx, prompt, a.httpClient)
}

func (a *AIService) callGeminiWithClient(ctx context.Context, prompt string, client *http.Client) (string, error) {
	a.rateLimit()

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	reqBody.GenerationConfig.Temperature = 0
	reqBody.GenerationConfig.MaxOutputTokens = 500

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", a.baseURL, a.modelName, a.apiKey)

	// Retry with exponential backoff for rate limit and transient errors
	maxRetries := 3
	baseDelay := 2 * time.Second

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseDelay * time.Duration(1<<uint(attempt-1))
			log.Printf("Retrying Gemini request after %v (attempt %d/%d)", delay, attempt, maxRetries)
			time.Sleep(delay)
			a.rateLimit()
		}

		req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(jsonData))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			if attempt < maxRetries {
				continue // Retry on network errors
			}
			return "", fmt.Errorf("failed to send request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			if attempt < maxRetries {
				continue
			}
			return "", fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt < maxRetries {
				continue
			}
			return "", fmt.Errorf("API returned status %d: %s (max retries exceeded)", resp.StatusCode, string(body))
		}

		if resp.StatusCode != http.StatusOK {
			var errResp geminiResponse
			if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
				return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, errResp.Error.Message)
			}
			return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}

		var geminiResp geminiResponse
		if err := json.Unmarshal(body, &geminiResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal response: %w", err)
		}

		if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("no response generated")
		}

		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("max retries exceeded")
}

// GenerateSQL turns a natural-language question into a single SQL statement,
// using the schema snapshot as grounding. Results are cached per prompt.
func (a *AIService) GenerateSQL(ctx context.Context, userPrompt string, schemaInfo string) (string, error) {
	cacheKey := fmt.Sprintf("prompt:%s", userPrompt)
	if cached, found := a.cache.Get(cacheKey); found {
		return cached.(string), nil
	}

	prompt := BuildSQLPrompt(userPrompt, schemaInfo)

	response, err := a.callGemini(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	sql := extractSQL(response)

	a.cache.SetDefault(cacheKey, sql)

	return sql, nil
}

// extractSQL cleans a raw model reply down to the bare statement: markdown
// fences and surrounding quotes go, everything before the first SELECT goes,
// and a trailing semicolon goes. Replies that open with a CTE are kept
// whole, since cutting to the first SELECT would strip the WITH clause.
func extractSQL(raw string) string {
	sql := strings.TrimSpace(raw)
	sql = strings.TrimPrefix(sql, "```sql")
	sql = strings.TrimPrefix(sql, "```SQL")
	sql = strings.TrimPrefix(sql, "```")
	sql = strings.TrimSuffix(sql, "```")
	sql = strings.TrimSpace(sql)
	sql = strings.Trim(sql, `"'`)

	upper := strings.ToUpper(sql)
	if !strings.HasPrefix(upper, "WITH") {
		if idx := strings.Index(upper, "SELECT"); idx > 0 {
			sql = sql[idx:]
		}
	}

	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sql), ";"))
}

// GenerateHTMLPage asks the model for a self-contained HTML page rendering
// a saved result file. Uses the long-timeout client.
func (a *AIService) GenerateHTMLPage(resultFile *models.ResultFile, title string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
	defer cancel()

	prompt := BuildHTMLPagePrompt(resultFile, title)

	response, err := a.callGeminiWithClient(ctx, prompt, a.httpClientLongTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to generate HTML: %w", err)
	}

	html := strings.TrimSpace(response)
	html = strings.TrimPrefix(html, "```html")
	html = strings.TrimPrefix(html, "```HTML")
	html = strings.TrimPrefix(html, "```")
	html = strings.TrimSuffix(html, "```")

	return strings.TrimSpace(html), nil
}
