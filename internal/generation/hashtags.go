package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"content-planner/internal/apperrors"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.0-flash"

	hashtagService = "hashtag generation"
	hashtagPrompt  = "Generate 5-10 relevant hashtags for the following social media post. " +
		"Return only the hashtags, separated by spaces, without any additional text or explanation:\n\n"
)

// HashtagClient drafts hashtags through the Gemini generateContent endpoint.
type HashtagClient struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateHashtags returns space separated hashtags for description, trimmed.
func (c *HashtagClient) GenerateHashtags(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", apperrors.Invalid("description", "description is required")
	}
	if c == nil || c.APIKey == "" {
		return "", &apperrors.ConfigError{Service: hashtagService, Setting: "GEMINI_API_KEY"}
	}

	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultGeminiBaseURL
	}
	model := c.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", base, model)

	body := geminiRequest{Contents: []geminiContent{{
		Role:  "user",
		Parts: []geminiPart{{Text: hashtagPrompt + description}},
	}}}

	resp, err := postJSON(ctx, hashtagService, url, map[string]string{"x-goog-api-key": c.APIKey}, body, c.Timeout)
	if err != nil {
		return "", err
	}

	var out geminiResponse
	decodeErr := json.Unmarshal(resp.Body, &out)

	if !ok(resp.Status) {
		msg := "Failed to generate hashtags"
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &apperrors.RemoteError{Service: hashtagService, Status: resp.Status, Message: msg}
	}
	if decodeErr != nil {
		return "", &apperrors.RemoteError{Service: hashtagService, Status: resp.Status, Message: "unreadable response", Err: decodeErr}
	}

	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &apperrors.RemoteError{Service: hashtagService, Status: resp.Status, Message: "Failed to generate hashtags"}
	}
	return text, nil
}
