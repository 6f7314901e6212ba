package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"doclens/internal/analyzer"
	"doclens/internal/config"
	"doclens/internal/domain"
	"doclens/internal/port"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// Low-variance extraction; the backend should behave near-deterministically.
	generationTemperature = 0.2
)

func init() {
	analyzer.RegisterProvider("gemini", func(cfg *config.AnalyzerConfig) (port.DocumentAnalyzer, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.DocumentAnalyzer against Google's Gemini API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed document analyzer.
func NewClient(cfg *config.AnalyzerConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.AnalyzerConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.AnalyzerConfig, endpoint string) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Analyze sends the file and the extraction prompt in a single user turn and
// returns the raw reply text. The credential is checked before any network
// I/O so a misconfigured deployment fails fast.
func (c *Client) Analyze(ctx context.Context, input port.AnalyzeInput) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrAPIKeyMissing
	}

	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"text": analyzer.BuildSystemPrompt(),
					},
					{
						"text": analyzer.BuildUserPrompt(input.Filename),
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": input.ContentType,
							"data":      encoded,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": generationTemperature,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	// The Gemini API takes the credential as a query parameter.
	reqURL := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return replyText(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// replyText joins the text segments of the first candidate's content parts
// with newlines. When the envelope carries no text segments at all, the full
// response body is returned instead so the caller still has something to
// inspect.
func replyText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	var segments []string
	if len(resp.Candidates) > 0 {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				segments = append(segments, part.Text)
			}
		}
	}
	if len(segments) == 0 {
		return string(body), nil
	}

	return strings.Join(segments, "\n"), nil
}
