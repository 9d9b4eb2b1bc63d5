package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sh5080/quickvest-go/pkg/configs"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/sh5080/quickvest-go/pkg/utils"
	"google.golang.org/genai"
)

const geminiAPIName = "gemini"

// ErrEmptyReply is returned when the model answers with no text parts.
var ErrEmptyReply = errors.New("gemini returned no text")

// GeminiClient talks to the Gemini generateContent API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ _interface.InferenceClient = (*GeminiClient)(nil)

// NewGeminiClient creates a client bound to the configured model.
func NewGeminiClient(ctx context.Context, config *configs.EnvConfig) (*GeminiClient, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  config.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: config.Gemini.Timeout,
		},
	}
	if config.Gemini.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.Gemini.BaseURL}
	}

	c, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client: c,
		model:  config.Gemini.Model,
	}, nil
}

// Generate sends the prompt, plus the image when present, as a single user turn.
func (c *GeminiClient) Generate(ctx context.Context, req model.InferenceRequest) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Image.Data, req.Image.MimeType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var genConfig *genai.GenerateContentConfig
	if req.JSONResponse {
		genConfig = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, genConfig)
	utils.RecordApiCall(geminiAPIName, err, time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyReply, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyReply
	}

	return text, nil
}
