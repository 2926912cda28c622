package aigateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adsgenie-backend/internal/aigateway"
	"adsgenie-backend/internal/backend"
	"adsgenie-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ services.ImageGenerator = (*aigateway.Client)(nil)

func TestClient_GenerateImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gateway-key", r.Header.Get("Authorization"))

		var req aigateway.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google/gemini-2.5-flash-image", req.Model)
		assert.Equal(t, []string{"image", "text"}, req.Modalities)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		require.Len(t, req.Messages[0].Content, 2)
		assert.Equal(t, "text", req.Messages[0].Content[0].Type)
		assert.Equal(t, "hero shot", req.Messages[0].Content[0].Text)
		assert.Equal(t, "image_url", req.Messages[0].Content[1].Type)
		assert.Equal(t, "data:image/png;base64,AAAA", req.Messages[0].Content[1].ImageURL.URL)

		w.Write([]byte(`{"choices":[{"message":{"content":"here","images":[
			{"type":"image_url","image_url":{"url":"data:image/png;base64,GEN1"}},
			{"type":"image_url","image_url":{"url":"data:image/png;base64,GEN2"}}]}}]}`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "gateway-key", "google/gemini-2.5-flash-image", 5*time.Second)
	url, err := client.GenerateImage(context.Background(), "hero shot", "data:image/png;base64,AAAA")

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,GEN1", url)
}

func TestClient_GenerateImage_NoImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"I cannot do that"}}]}`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "gateway-key", "model", 5*time.Second)
	_, err := client.GenerateImage(context.Background(), "prompt", "data:image/png;base64,AAAA")

	assert.ErrorIs(t, err, aigateway.ErrNoImage)
}

func TestClient_GenerateImage_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"credits exhausted"}}`))
	}))
	defer server.Close()

	client := aigateway.NewClient(server.URL, "gateway-key", "model", 5*time.Second)
	_, err := client.GenerateImage(context.Background(), "prompt", "data:image/png;base64,AAAA")

	apiErr, ok := backend.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, "credits exhausted", apiErr.Message)
}

func TestChatResponse_FirstImageURL(t *testing.T) {
	var empty aigateway.ChatResponse
	assert.Equal(t, "", empty.FirstImageURL())
}
