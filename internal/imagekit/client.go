// Package imagekit talks to ImageKit for the two calls the animation
// workflow needs: storing the source image and starting a video generation.
package imagekit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adsgenie-backend/internal/backend"
	"adsgenie-backend/internal/models"
)

type Client struct {
	uploadURL   string
	videoURL    string
	urlEndpoint string
	http        *backend.Client
}

// UploadResponse is the subset of the upload API answer we use.
type UploadResponse struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
}

type VideoInput struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type VideoTransformation struct {
	Prompt   string `json:"prompt"`
	Duration int    `json:"duration"`
}

type VideoRequest struct {
	Input          VideoInput          `json:"input"`
	Transformation VideoTransformation `json:"transformation"`
}

// VideoResponse accepts both "id" and "taskId" for the task identifier.
type VideoResponse struct {
	ID     string `json:"id"`
	TaskID string `json:"taskId"`
	Status string `json:"status"`
	Output *struct {
		URL string `json:"url"`
	} `json:"output"`
}

// NewClient authenticates every call with HTTP basic auth, using the private
// key as user name and an empty password.
func NewClient(privateKey, urlEndpoint, uploadURL, videoURL string, timeout time.Duration) *Client {
	return &Client{
		uploadURL:   uploadURL,
		videoURL:    videoURL,
		urlEndpoint: strings.TrimSuffix(urlEndpoint, "/"),
		http:        backend.NewClient(backend.BasicAuth(privateKey, ""), timeout),
	}
}

// Upload stores data under folder/fileName.
func (c *Client) Upload(ctx context.Context, data []byte, contentType, fileName, folder string) (*models.UploadedAsset, error) {
	file := &backend.FormFile{
		Field:       "file",
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
	}
	return c.upload(ctx, uploadFields(fileName, folder), file)
}

// UploadFromURL asks ImageKit to fetch sourceURL and store it under
// folder/fileName. The URL is sent as the "file" field.
func (c *Client) UploadFromURL(ctx context.Context, sourceURL, fileName, folder string) (*models.UploadedAsset, error) {
	fields := uploadFields(fileName, folder)
	fields["file"] = sourceURL
	return c.upload(ctx, fields, nil)
}

func uploadFields(fileName, folder string) map[string]string {
	return map[string]string{
		"fileName": fileName,
		"folder":   folder,
	}
}

func (c *Client) upload(ctx context.Context, fields map[string]string, file *backend.FormFile) (*models.UploadedAsset, error) {
	var resp UploadResponse
	if err := c.http.PostMultipart(ctx, c.uploadURL, fields, file, &resp); err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}
	if resp.FileID == "" {
		return nil, fmt.Errorf("imagekit upload: response has no fileId")
	}

	publicURL := resp.URL
	if publicURL == "" && resp.FilePath != "" && c.urlEndpoint != "" {
		publicURL = c.urlEndpoint + "/" + strings.TrimPrefix(resp.FilePath, "/")
	}

	return &models.UploadedAsset{
		FileID:    resp.FileID,
		PublicURL: publicURL,
	}, nil
}

// GenerateVideo starts an image-to-video generation. The backend may answer
// with a finished video or with a pending task.
func (c *Client) GenerateVideo(ctx context.Context, imageURL, prompt string, duration int) (*models.VideoTask, error) {
	req := VideoRequest{
		Input: VideoInput{
			Type: "image",
			URL:  imageURL,
		},
		Transformation: VideoTransformation{
			Prompt:   prompt,
			Duration: duration,
		},
	}

	var resp VideoResponse
	if err := c.http.PostJSON(ctx, c.videoURL, req, &resp); err != nil {
		return nil, fmt.Errorf("imagekit generate video: %w", err)
	}

	task := &models.VideoTask{
		ID:     resp.ID,
		Status: resp.Status,
	}
	if task.ID == "" {
		task.ID = resp.TaskID
	}
	if resp.Output != nil {
		task.VideoURL = resp.Output.URL
	}
	return task, nil
}
