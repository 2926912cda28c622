package models

import "time"

type GenerateAdsResponse struct {
	Images []string `json:"images"`
}

type AnimateAdResponse struct {
	TaskID   *string `json:"taskId,omitempty"`
	Status   string  `json:"status" example:"processing"`
	VideoURL *string `json:"videoUrl"`
	FileID   string  `json:"fileId"`
}

type AdsListResponse struct {
	Ads []AdResponse `json:"ads"`
}

type AdResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Style       string    `json:"style,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageCount  int       `json:"image_count"`
	FileID      string    `json:"file_id,omitempty"`
	AssetURL    string    `json:"asset_url,omitempty"`
	TaskID      string    `json:"task_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
