package supabase

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"adsgenie-backend/internal/backend"
	"adsgenie-backend/internal/models"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	fetcher *backend.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		fetcher: backend.NewClient(nil, 0),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores data at <folder>/<fileName> in the bucket. The storage path
// doubles as the file id. storage-go takes no context, so ctx only bounds
// how long Upload waits for it.
func (s *StorageClient) Upload(ctx context.Context, data []byte, contentType, fileName, folder string) (*models.UploadedAsset, error) {
	storagePath := StoragePath(folder, fileName)

	upsert := false
	_, err := callWithContext(ctx, func() (storage.FileUploadResponse, error) {
		return s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
			ContentType: &contentType,
			Upsert:      &upsert,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &models.UploadedAsset{
		FileID:    storagePath,
		PublicURL: s.GetPublicURL(storagePath),
	}, nil
}

// UploadFromURL downloads sourceURL and stores the bytes like Upload.
func (s *StorageClient) UploadFromURL(ctx context.Context, sourceURL, fileName, folder string) (*models.UploadedAsset, error) {
	download, err := s.fetcher.Get(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source image: %w", err)
	}
	return s.Upload(ctx, download.Data, download.ContentType, fileName, folder)
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// StoragePath joins folder and fileName without leading or doubled slashes.
func StoragePath(folder, fileName string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return fileName
	}
	return path.Join(folder, fileName)
}
