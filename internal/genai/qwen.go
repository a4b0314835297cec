package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/abirabbas/portfolio-api/internal/config"
)

// maxErrorBodyBytes caps how much of a provider error body is logged.
const maxErrorBodyBytes = 2048

// Qwen calls a DashScope-compatible chat completions endpoint. DashScope
// wraps the message list in an "input" object and returns the reply under
// output.choices, so this client speaks that envelope directly instead of
// going through an OpenAI-shaped SDK.
type Qwen struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float32
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewQwen(cfg *config.Config, logger *zap.Logger) *Qwen {
	return &Qwen{
		apiKey:      cfg.QwenAPIKey,
		baseURL:     strings.TrimRight(cfg.QwenAPIBase, "/"),
		model:       cfg.QwenModel,
		temperature: cfg.QwenTemperature,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      logger,
	}
}

func (q *Qwen) Provider() string {
	return "qwen"
}

type qwenMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type qwenRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []qwenMessage `json:"messages"`
	} `json:"input"`
	Parameters struct {
		Temperature float32 `json:"temperature"`
	} `json:"parameters"`
}

type qwenResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

func (q *Qwen) Generate(ctx context.Context, messages []Message) string {
	if q.apiKey == "" {
		return ""
	}

	payload := qwenRequest{Model: q.model}
	payload.Parameters.Temperature = q.temperature
	for _, msg := range messages {
		payload.Input.Messages = append(payload.Input.Messages, qwenMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		q.logger.Error("failed to encode qwen request", zap.Error(err))
		return ""
	}

	endpoint := q.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		q.logger.Error("failed to build qwen request", zap.Error(err))
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+q.apiKey)
	req.Header.Set("X-DashScope-Token", q.apiKey)

	resp, err := q.httpClient.Do(req)
	if err != nil {
		q.logger.Error("failed to invoke qwen model", zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		q.logger.Error("qwen responded with a non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(excerpt)),
		)
		return ""
	}

	var parsed qwenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		q.logger.Error("failed to decode qwen response", zap.Error(err))
		return ""
	}

	if len(parsed.Output.Choices) == 0 || parsed.Output.Choices[0].Message.Content == "" {
		q.logger.Error("qwen payload missing expected content shape")
		return ""
	}

	return parsed.Output.Choices[0].Message.Content
}
