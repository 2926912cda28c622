package imagekit_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adsgenie-backend/internal/imagekit"
	"adsgenie-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ services.ObjectStore    = (*imagekit.Client)(nil)
	_ services.VideoGenerator = (*imagekit.Client)(nil)
)

// base64("private_key:")
const basicHeader = "Basic cHJpdmF0ZV9rZXk6"

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, basicHeader, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "ad-1.png", r.FormValue("fileName"))
		assert.Equal(t, "/ads-genie/", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte("png-bytes"), data)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Write([]byte(`{"fileId":"f1","name":"ad-1.png","url":"https://ik.imagekit.io/demo/ads-genie/ad-1.png","filePath":"/ads-genie/ad-1.png"}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("private_key", "https://ik.imagekit.io/demo", server.URL, server.URL, 5*time.Second)
	asset, err := client.Upload(context.Background(), []byte("png-bytes"), "image/png", "ad-1.png", "/ads-genie/")

	require.NoError(t, err)
	assert.Equal(t, "f1", asset.FileID)
	assert.Equal(t, "https://ik.imagekit.io/demo/ads-genie/ad-1.png", asset.PublicURL)
}

func TestClient_UploadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, basicHeader, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "https://gateway.example/generated/ad-1.png", r.FormValue("file"))
		assert.Equal(t, "ad-3.png", r.FormValue("fileName"))
		assert.Equal(t, "/ads-genie/", r.FormValue("folder"))
		assert.Empty(t, r.MultipartForm.File)

		w.Write([]byte(`{"fileId":"f3","url":"https://ik.imagekit.io/demo/ads-genie/ad-3.png"}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("private_key", "https://ik.imagekit.io/demo", server.URL, server.URL, 5*time.Second)
	asset, err := client.UploadFromURL(context.Background(), "https://gateway.example/generated/ad-1.png", "ad-3.png", "/ads-genie/")

	require.NoError(t, err)
	assert.Equal(t, "f3", asset.FileID)
	assert.Equal(t, "https://ik.imagekit.io/demo/ads-genie/ad-3.png", asset.PublicURL)
}

func TestClient_Upload_BuildsURLFromEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fileId":"f2","filePath":"/ads-genie/ad-2.png"}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("private_key", "https://ik.imagekit.io/demo/", server.URL, server.URL, 5*time.Second)
	asset, err := client.Upload(context.Background(), []byte("x"), "image/png", "ad-2.png", "/ads-genie/")

	require.NoError(t, err)
	assert.Equal(t, "https://ik.imagekit.io/demo/ads-genie/ad-2.png", asset.PublicURL)
}

func TestClient_Upload_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Your account cannot be authenticated."}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("bad", "", server.URL, server.URL, 5*time.Second)
	_, err := client.Upload(context.Background(), []byte("x"), "image/png", "ad.png", "/ads-genie/")

	assert.ErrorContains(t, err, "Your account cannot be authenticated.")
}

func TestClient_GenerateVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, basicHeader, r.Header.Get("Authorization"))

		var req imagekit.VideoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "image", req.Input.Type)
		assert.Equal(t, "https://cdn/x.png", req.Input.URL)
		assert.Equal(t, "animate it", req.Transformation.Prompt)
		assert.Equal(t, 5, req.Transformation.Duration)

		w.Write([]byte(`{"id":"t1","status":"processing"}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("private_key", "", server.URL, server.URL, 5*time.Second)
	task, err := client.GenerateVideo(context.Background(), "https://cdn/x.png", "animate it", 5)

	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "processing", task.Status)
	assert.Empty(t, task.VideoURL)
}

func TestClient_GenerateVideo_TaskIDAndOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"taskId":"t2","status":"completed","output":{"url":"https://cdn/x.mp4"}}`))
	}))
	defer server.Close()

	client := imagekit.NewClient("private_key", "", server.URL, server.URL, 5*time.Second)
	task, err := client.GenerateVideo(context.Background(), "https://cdn/x.png", "animate it", 5)

	require.NoError(t, err)
	assert.Equal(t, "t2", task.ID)
	assert.Equal(t, "https://cdn/x.mp4", task.VideoURL)
}
