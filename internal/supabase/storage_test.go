package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"adsgenie-backend/internal/middleware"
	"adsgenie-backend/internal/config"
	"adsgenie-backend/internal/services"
	"adsgenie-backend/internal/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ services.ObjectStore     = (*supabase.StorageClient)(nil)
	_ services.HistoryStore    = (*supabase.DatabaseClient)(nil)
	_ middleware.TokenVerifier = (*supabase.Client)(nil)
)

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "key", "ad-assets")
	require.NoError(t, err)

	assert.Equal(t,
		"https://project.supabase.co/storage/v1/object/public/ad-assets/ads-genie/ad-1.png",
		client.GetPublicURL("ads-genie/ad-1.png"))
}

func TestNewStorageClient_RequiresURL(t *testing.T) {
	_, err := supabase.NewStorageClient("", "key", "ad-assets")
	assert.Error(t, err)
}

func TestStoragePath(t *testing.T) {
	assert.Equal(t, "ads-genie/ad-1.png", supabase.StoragePath("/ads-genie/", "ad-1.png"))
	assert.Equal(t, "a/b/ad-1.png", supabase.StoragePath("a/b", "ad-1.png"))
	assert.Equal(t, "ad-1.png", supabase.StoragePath("/", "ad-1.png"))
}

func TestStorageClient_Upload_BoundedByContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := supabase.NewStorageClient(server.URL, "key", "ad-assets")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Upload(ctx, []byte("png-bytes"), "image/png", "ad-1.png", "/ads-genie/")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStorageClient_UploadFromURL(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer source.Close()

	var uploadPath atomic.Value
	storageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploadPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Key":"ad-assets/ads-genie/ad-1.png"}`))
	}))
	defer storageServer.Close()

	client, err := supabase.NewStorageClient(storageServer.URL, "key", "ad-assets")
	require.NoError(t, err)

	asset, err := client.UploadFromURL(context.Background(), source.URL+"/generated/ad.png", "ad-1.png", "/ads-genie/")

	require.NoError(t, err)
	assert.Equal(t, "ads-genie/ad-1.png", asset.FileID)
	assert.Equal(t, storageServer.URL+"/storage/v1/object/public/ad-assets/ads-genie/ad-1.png", asset.PublicURL)
	assert.Contains(t, uploadPath.Load(), "ad-assets/ads-genie/ad-1.png")
}

func TestStorageClient_UploadFromURL_FetchFails(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer source.Close()

	var uploads atomic.Int32
	storageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)
	}))
	defer storageServer.Close()

	client, err := supabase.NewStorageClient(storageServer.URL, "key", "ad-assets")
	require.NoError(t, err)

	_, err = client.UploadFromURL(context.Background(), source.URL+"/missing.png", "ad-1.png", "/ads-genie/")

	assert.ErrorContains(t, err, "failed to fetch source image")
	assert.Equal(t, int32(0), uploads.Load())
}

func TestClient_VerifyToken_BoundedByContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := supabase.NewClient(&config.Config{
		SupabaseURL:            server.URL,
		SupabasePublishableKey: "anon-key",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.VerifyToken(ctx, "some-token")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
