// Package embedding wraps the external embedding capability and scores text
// similarity. Embedding failures are absorbed into absent (nil) vectors so a
// single bad document never aborts a ranking run.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-embedding-001"

// Config selects the embedding backend. APIKey takes the Gemini API backend;
// otherwise Project/Location select Vertex AI.
type Config struct {
	APIKey   string
	Project  string
	Location string
	Model    string
}

// Client generates embedding vectors for text via the Google GenAI API.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates an embedding client. Either an API key or a Google Cloud
// project must be configured.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	clientCfg := &genai.ClientConfig{}

	switch {
	case strings.TrimSpace(cfg.APIKey) != "":
		clientCfg.APIKey = strings.TrimSpace(cfg.APIKey)
		clientCfg.Backend = genai.BackendGeminiAPI
	case strings.TrimSpace(cfg.Project) != "":
		clientCfg.Project = strings.TrimSpace(cfg.Project)
		clientCfg.Location = cfg.Location
		clientCfg.Backend = genai.BackendVertexAI
	default:
		return nil, fmt.Errorf("embedding requires an api key or a google cloud project")
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &Client{client: client, model: model, logger: logger}, nil
}

// Embed returns the embedding vector for text, or nil when the text is empty
// after trimming or the provider fails. Callers treat nil as a zero score
// contribution and continue.
func (c *Client) Embed(ctx context.Context, text string) []float32 {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return nil
	}

	resp, err := c.client.Models.EmbedContent(ctx, c.model, genai.Text(text), nil)
	if err != nil {
		c.logger.Warn("embedding request failed", zap.Error(err))
		return nil
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		c.logger.Warn("embedding response was empty")
		return nil
	}

	return resp.Embeddings[0].Values
}
