package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AIDefinitionClient talks to an OpenAI-compatible chat completions
// endpoint (OpenRouter in production) to build dictionary-style
// definitions.
type AIDefinitionClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

var ErrAIDisabled = errors.New("ai definition service is not configured")

func NewAIDefinitionClient(baseURL, apiKey string) *AIDefinitionClient {
	return &AIDefinitionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   "openai/gpt-4.1-mini",
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *AIDefinitionClient) Enabled() bool {
	return c.baseURL != "" && c.apiKey != ""
}

const definitionPrompt = `You are an AI-powered dictionary.

Provide a detailed definition for the word: "%s"

Please include:
1. The part of speech (noun, verb, adjective, etc.)
2. A clear, beginner-friendly explanation
3. One example sentence using the word
4. (Optional) Related synonyms or antonyms`

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Definition returns the definition text plus the raw response body
// (kept for the cache table).
func (c *AIDefinitionClient) Definition(ctx context.Context, word string) (string, []byte, error) {
	if !c.Enabled() {
		return "", nil, ErrAIDisabled
	}

	payload := chatRequest{
		Model:       c.model,
		Temperature: 0.5,
		MaxTokens:   500,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(definitionPrompt, word)},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("ai definition api returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", nil, err
	}
	if len(parsed.Choices) == 0 {
		return "", nil, errors.New("ai definition api returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), raw, nil
}
