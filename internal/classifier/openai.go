package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cybercyclones/oceanscan/internal/config"
	"github.com/cybercyclones/oceanscan/pkg/clients"
	"go.uber.org/zap"
)

type OpenAI struct {
	url    string
	model  string
	apiKey string
	client clients.HTTPClientI
}

func NewOpenAI(cfg *config.Config, client clients.HTTPClientI) *OpenAI {
	return &OpenAI{
		url:    cfg.OpenAIURL,
		model:  cfg.OpenAIModel,
		apiKey: cfg.OpenAIAPIKey,
		client: client,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify posts the guidelines prompt and the photo to the chat-completions
// endpoint and returns the trimmed label.
func (o *OpenAI) Classify(ctx context.Context, encodedImage string) (string, error) {
	payload := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemRole},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: identifyPrompt},
				{Type: "image_url", ImageURL: &imageURL{
					URL: "data:image/jpeg;base64," + encodedImage,
				}},
			}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+o.apiKey)

	statusCode, respBody, err := o.client.Post(ctx, o.url, headers, body)
	if err != nil {
		zap.L().Error("classification request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("classification provider returned error", zap.Int("status", statusCode))
		return "", fmt.Errorf("%w: unexpected status %d", ErrClassification, statusCode)
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassification, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no content in response", ErrClassification)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
