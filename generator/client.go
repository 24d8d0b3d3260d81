package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.supermeme.ai/v1"
	generatorType  = "memes"

	statusCompleted = "COMPLETED"
)

// Generator produces a hosted asset URL for a prompt. Satisfied by *Client;
// handlers and the scheduler depend on this so they can be tested without a
// live service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client talks to the generative-media service over its REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client for the generation service. httpClient may be
// nil, in which case http.DefaultClient is used.
func NewClient(token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

type generateRequest struct {
	Generator string         `json:"generator"`
	Style     generateStyle  `json:"style"`
	WebSearch generateToggle `json:"websearch"`
	Process   bool           `json:"process"`
}

type generateStyle struct {
	Topic string `json:"topic"`
}

type generateToggle struct {
	Enabled bool `json:"enabled"`
}

type generateResponse struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Downloads []struct {
		URL string `json:"url"`
	} `json:"downloads"`
}

// Generate submits a meme job for the given topic and waits for the service
// to finish rendering it. It is a single best-effort attempt: no retry, and
// no timeout beyond whatever the underlying http.Client enforces. On success
// the first downloadable asset's URL is returned.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Generator: generatorType,
		Style:     generateStyle{Topic: prompt},
		WebSearch: generateToggle{Enabled: false},
		Process:   true,
	})
	if err != nil {
		return "", fmt.Errorf("encoding generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling generation service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decoding generation response: %w", err)
	}

	if result.Status != statusCompleted {
		log.WithFields(log.Fields{
			"status": result.Status,
			"error":  result.Error,
		}).Warn("Generation job did not complete")
		return "", fmt.Errorf("generation failed with status %s: %s", result.Status, result.Error)
	}
	if len(result.Downloads) == 0 {
		return "", fmt.Errorf("generation completed but returned no downloadable assets")
	}

	return result.Downloads[0].URL, nil
}
