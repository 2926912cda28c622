package services_test

import (
	"context"

	"adsgenie-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

type mockImageGenerator struct {
	mock.Mock
}

func (m *mockImageGenerator) GenerateImage(ctx context.Context, prompt, imageURL string) (string, error) {
	args := m.Called(ctx, prompt, imageURL)
	return args.String(0), args.Error(1)
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, data []byte, contentType, fileName, folder string) (*models.UploadedAsset, error) {
	args := m.Called(ctx, data, contentType, fileName, folder)
	asset, _ := args.Get(0).(*models.UploadedAsset)
	return asset, args.Error(1)
}

func (m *mockObjectStore) UploadFromURL(ctx context.Context, sourceURL, fileName, folder string) (*models.UploadedAsset, error) {
	args := m.Called(ctx, sourceURL, fileName, folder)
	asset, _ := args.Get(0).(*models.UploadedAsset)
	return asset, args.Error(1)
}

type mockVideoGenerator struct {
	mock.Mock
}

func (m *mockVideoGenerator) GenerateVideo(ctx context.Context, imageURL, prompt string, duration int) (*models.VideoTask, error) {
	args := m.Called(ctx, imageURL, prompt, duration)
	task, _ := args.Get(0).(*models.VideoTask)
	return task, args.Error(1)
}

type mockHistoryStore struct {
	mock.Mock
}

func (m *mockHistoryStore) CreateAdRecord(ctx context.Context, record *models.AdRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockHistoryStore) ListAdRecords(ctx context.Context, userID string) ([]models.AdRecord, error) {
	args := m.Called(ctx, userID)
	records, _ := args.Get(0).([]models.AdRecord)
	return records, args.Error(1)
}
