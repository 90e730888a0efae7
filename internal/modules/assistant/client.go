package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	// Model is pinned; the prompt and the parser are tuned to its output.
	Model = "gemini-2.5-flash-preview-04-17"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Client is a minimal Gemini generateContent caller. No retry: a failed
// call surfaces as the fixed fallback text upstream, never as a crash.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

// ClientFromEnv returns nil when GEMINI_API_KEY is unset. A nil client is
// a valid state: the assistant runs disabled with deterministic fallbacks.
func ClientFromEnv() *Client {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil
	}
	return NewClient(key, os.Getenv("GEMINI_BASE_URL"))
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// generate posts one generateContent call and returns the concatenated
// text parts of the first candidate.
func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, Model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assistant: send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("assistant: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if json.Unmarshal(respBody, &ae) == nil && ae.Error.Message != "" {
			return "", fmt.Errorf("assistant: api status %d: %s", resp.StatusCode, ae.Error.Message)
		}
		return "", fmt.Errorf("assistant: api status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("assistant: parse response: %w", err)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("assistant: no candidates in response")
	}

	var text string
	for _, p := range gr.Candidates[0].Content.Parts {
		text += p.Text
	}
	if text == "" {
		return "", fmt.Errorf("assistant: empty candidate text")
	}
	return text, nil
}
