package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"content-planner/internal/apperrors"
)

const (
	DefaultHuggingFaceBaseURL = "https://api-inference.huggingface.co"
	DefaultImageModel         = "black-forest-labs/FLUX.1-dev"

	imageService = "image generation"

	inferenceSteps = 30
	guidanceScale  = 7.5
)

// Image is raw generated image data.
type Image struct {
	Data        []byte
	ContentType string
}

// ImageClient renders prompts through the Hugging Face inference API.
type ImageClient struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type imageParameters struct {
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

type imageRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters imageParameters `json:"parameters"`
}

func (c *ImageClient) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return Image{}, apperrors.Invalid("prompt", "prompt is required")
	}
	if c == nil || c.APIKey == "" {
		return Image{}, &apperrors.ConfigError{Service: imageService, Setting: "HUGGINGFACE_API_KEY"}
	}

	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultHuggingFaceBaseURL
	}
	model := c.Model
	if model == "" {
		model = DefaultImageModel
	}
	url := fmt.Sprintf("%s/models/%s", base, model)

	body := imageRequest{
		Inputs:     prompt,
		Parameters: imageParameters{NumInferenceSteps: inferenceSteps, GuidanceScale: guidanceScale},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.APIKey}

	resp, err := postJSON(ctx, imageService, url, headers, body, c.Timeout)
	if err != nil {
		return Image{}, err
	}

	if !ok(resp.Status) {
		msg := "Failed to generate image"
		var upstream struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(resp.Body, &upstream) == nil && upstream.Error != "" {
			msg = upstream.Error
		}
		return Image{}, &apperrors.RemoteError{Service: imageService, Status: resp.Status, Message: msg}
	}
	if len(resp.Body) == 0 {
		return Image{}, &apperrors.RemoteError{Service: imageService, Status: resp.Status, Message: "empty image"}
	}

	ctype := resp.ContentType
	if !strings.HasPrefix(ctype, "image/") {
		ctype = http.DetectContentType(resp.Body)
	}
	return Image{Data: resp.Body, ContentType: ctype}, nil
}
