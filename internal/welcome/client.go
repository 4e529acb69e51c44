package welcome

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client calls the external text-generation service for the dashboard
// greeting. One round-trip per dashboard visit, no retry; every fault is
// absorbed into the fallback sentence so the dashboard never fails on it.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     config.APIURL,
		apiKey:     config.APIKey,
		model:      config.Model,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateRequest struct {
	Model    string `json:"model"`
	Contents string `json:"contents"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate returns a one-sentence welcome for the staff member, or the
// fallback on any fault. It never returns an error.
func (c *Client) Generate(ctx context.Context, name, department, position string) string {
	if c.apiURL == "" {
		return Fallback(name, position)
	}

	text, err := c.generate(ctx, name, department, position)
	if err != nil {
		c.logger.Warn("welcome text generation failed, using fallback",
			"employee", name, "error", err)
		return Fallback(name, position)
	}
	return text
}

func (c *Client) generate(ctx context.Context, name, department, position string) (string, error) {
	prompt := fmt.Sprintf(
		"Write one warm, professional welcome sentence for %s, %s of the %s at Gordon Hospital. Keep a tone that respects their position.",
		name, position, department)

	payload := generateRequest{
		Model:    c.model,
		Contents: prompt,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var generated generateResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		return "", fmt.Errorf("malformed generation response: %w", err)
	}

	text := strings.TrimSpace(generated.Text)
	if text == "" {
		return "", fmt.Errorf("generation response contained no text")
	}
	return text, nil
}

// Fallback is the deterministic substitute sentence. It always embeds the
// name and position.
func Fallback(name, position string) string {
	return fmt.Sprintf("Have a wonderful day, %s %s!", name, position)
}
