package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultOllamaHost is the standard local Ollama endpoint.
const DefaultOllamaHost = "http://localhost:11434"

const defaultOllamaTimeout = 120 * time.Second

// OllamaProvider implements Provider against a local Ollama host. Idle-mode
// agents run on it to keep provider spend at zero.
type OllamaProvider struct {
	host         string
	defaultModel string
	client       *http.Client
}

// NewOllama builds a provider for the given host. Empty host uses the local
// default.
func NewOllama(host, defaultModel string) (*OllamaProvider, error) {
	if defaultModel == "" {
		return nil, errors.New("default model is required")
	}
	if host == "" {
		host = DefaultOllamaHost
	}
	return &OllamaProvider{
		host:         host,
		defaultModel: defaultModel,
		client:       &http.Client{Timeout: defaultOllamaTimeout},
	}, nil
}

// Name implements Provider.
func (p *OllamaProvider) Name() string { return "ollama" }

// Close implements Provider.
func (p *OllamaProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	DoneReason      string `json:"done_reason"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	Error           string `json:"error"`
}

func (p *OllamaProvider) buildRequest(req Request, stream bool) *ollamaRequest {
	modelID := req.Model
	if modelID == "" {
		modelID = p.defaultModel
	}
	body := &ollamaRequest{
		Model:  modelID,
		Prompt: req.Prompt,
		System: req.System,
		Stream: stream,
	}
	opts := map[string]any{}
	if req.Temperature > 0 {
		opts["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		opts["num_predict"] = req.MaxTokens
	}
	if len(opts) > 0 {
		body.Options = opts
	}
	return body
}

func (p *OllamaProvider) post(ctx context.Context, body *ollamaRequest) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ollama request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}
	return resp, nil
}

// Generate implements Provider.
func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := p.post(ctx, p.buildRequest(req, false))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", out.Error)
	}
	return &Response{
		Content:    out.Response,
		Model:      out.Model,
		StopReason: out.DoneReason,
		Usage: Usage{
			InputTokens:  out.PromptEvalCount,
			OutputTokens: out.EvalCount,
			TotalTokens:  out.PromptEvalCount + out.EvalCount,
		},
	}, nil
}

// Stream implements Provider. Ollama streams newline-delimited JSON objects.
func (p *OllamaProvider) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	resp, err := p.post(ctx, p.buildRequest(req, true))
	if err != nil {
		return nil, err
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		defer func() { _ = resp.Body.Close() }()

		dec := json.NewDecoder(resp.Body)
		for {
			var out ollamaResponse
			if err := dec.Decode(&out); err != nil {
				if errors.Is(err, io.EOF) {
					ch <- Chunk{Done: true}
				} else {
					ch <- Chunk{Err: err, Done: true}
				}
				return
			}
			if out.Error != "" {
				ch <- Chunk{Err: fmt.Errorf("ollama error: %s", out.Error), Done: true}
				return
			}
			if out.Response != "" {
				select {
				case ch <- Chunk{Content: out.Response}:
				case <-ctx.Done():
					return
				}
			}
			if out.Done {
				ch <- Chunk{Done: true}
				return
			}
		}
	}()
	return ch, nil
}
