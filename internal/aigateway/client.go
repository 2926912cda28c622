package aigateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adsgenie-backend/internal/backend"
)

// ErrNoImage is returned when the gateway answered without an image.
var ErrNoImage = errors.New("no image in gateway response")

type Client struct {
	url   string
	model string
	http  *backend.Client
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

type ChatRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Modalities []string  `json:"modalities"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Images  []struct {
				Type     string   `json:"type"`
				ImageURL ImageURL `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(url, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		url:   url,
		model: model,
		http:  backend.NewClient(backend.BearerAuth(apiKey), timeout),
	}
}

// GenerateImage sends the prompt together with the source image and returns
// the first generated image URL.
func (c *Client) GenerateImage(ctx context.Context, prompt, imageURL string) (string, error) {
	req := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &ImageURL{URL: imageURL}},
				},
			},
		},
		Modalities: []string{"image", "text"},
	}

	var resp ChatResponse
	if err := c.http.PostJSON(ctx, c.url, req, &resp); err != nil {
		return "", fmt.Errorf("failed to generate image: %w", err)
	}

	url := resp.FirstImageURL()
	if url == "" {
		return "", ErrNoImage
	}
	return url, nil
}

// FirstImageURL returns choices[0].message.images[0].image_url.url or "".
func (r *ChatResponse) FirstImageURL() string {
	if len(r.Choices) == 0 {
		return ""
	}
	images := r.Choices[0].Message.Images
	if len(images) == 0 {
		return ""
	}
	return images[0].ImageURL.URL
}
