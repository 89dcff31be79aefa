// Package ollama provides Ollama integration for local AI inference.
// It implements the TextPolisher port: rewording reasoning prose
// without touching scores, tiers or facts.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const systemPrompt = `You are an editor for a nutrition advisory service. Rewrite the given text so it reads naturally and warmly for a client. Keep every fact, food name and number exactly as given. Do not add recommendations, foods or claims that are not in the text. Respond with only the rewritten text.`

// Config carries the client settings.
type Config struct {
	BaseURL        string
	Model          string
	Temperature    float64
	RequestTimeout time.Duration
}

// Client implements the TextPolisher interface using the Ollama API
type Client struct {
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Ollama client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.2:3b"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	logger.Info("Ollama client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.RequestTimeout))

	return &Client{
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger.Named("ollama-client"),
	}
}

// Ollama API structures
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string                 `json:"model"`
	Messages []ChatMessage          `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ChatResponse struct {
	Model   string      `json:"model"`
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// HealthCheck verifies the Ollama service is available
func (c *Client) HealthCheck(ctx context.Context) error {
	endpoint := c.baseURL + "/api/tags"

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama health check failed with status %d", resp.StatusCode)
	}

	return nil
}

// Polish rewords reasoning text. Errors propagate so the caller can
// fall back to the deterministic template text.
func (c *Client) Polish(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to polish")
	}

	response, err := c.generateChatCompletion(ctx, systemPrompt, text)
	if err != nil {
		return "", err
	}

	polished := strings.TrimSpace(response)
	if polished == "" {
		return "", fmt.Errorf("empty response from ollama")
	}

	c.logger.Debug("Reasoning text polished",
		zap.Int("input_len", len(text)),
		zap.Int("output_len", len(polished)))

	return polished, nil
}

// generateChatCompletion uses Ollama's chat API
func (c *Client) generateChatCompletion(ctx context.Context, system, user string) (string, error) {
	endpoint := c.baseURL + "/api/chat"

	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Options: map[string]interface{}{
			"temperature": c.temperature,
			"num_predict": 1000,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !chatResp.Done {
		return "", fmt.Errorf("incomplete response from Ollama")
	}

	return chatResp.Message.Content, nil
}
