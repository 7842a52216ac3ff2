package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiOption configures the Gemini client.
type GeminiOption func(*geminiClient)

// WithGeminiBaseURL overrides the default API base URL.
func WithGeminiBaseURL(u string) GeminiOption {
	return func(c *geminiClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithGeminiHTTPClient overrides the default http.Client.
func WithGeminiHTTPClient(hc *http.Client) GeminiOption {
	return func(c *geminiClient) {
		c.http = hc
	}
}

type geminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewGemini creates a Client that calls the Gemini generateContent endpoint.
func NewGemini(apiKey, model string, opts ...GeminiOption) Client {
	c := &geminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	// Gemini's REST surface takes one flattened prompt here; fold the system
	// instruction and the question into a single part.
	prompt := systemPrompt + "\n\nUser question: " + userMessage

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", eris.Wrap(err, "ai: marshal gemini request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "ai: create gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "ai: send gemini request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "ai: read gemini response")
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", eris.Wrapf(err, "ai: unmarshal gemini response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", eris.Errorf("ai: gemini status %d: %s", resp.StatusCode, result.Error.Message)
		}
		return "", eris.Errorf("ai: gemini unexpected status %d", resp.StatusCode)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
