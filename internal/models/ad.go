package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// GenerationRequest is one validated generateAds invocation.
type GenerationRequest struct {
	SourceImage string
	Description string
	Style       string
	Platform    string
}

// VariantResult is the outcome of one variant call: either ImageURL or Err is set.
type VariantResult struct {
	Index    int
	ImageURL string
	Err      error
}

func (r VariantResult) Succeeded() bool {
	return r.Err == nil && r.ImageURL != ""
}

// GenerationOutcome holds the successful image URLs in variant order.
type GenerationOutcome struct {
	Images []string
}

// AnimationRequest is one validated animateAd invocation.
type AnimationRequest struct {
	SourceImage string
	Description string
}

// UploadedAsset is an image stored in object storage.
type UploadedAsset struct {
	FileID    string
	PublicURL string
}

// VideoTask is what the video backend answered to a single generation call.
type VideoTask struct {
	ID       string
	Status   string
	VideoURL string
}

const (
	AnimationStatusProcessing = "processing"
	AnimationStatusCompleted  = "completed"
	AnimationStatusFailed     = "failed"
)

// AnimationOutcome is the result of animateAd. TaskID and VideoURL are
// empty when the backend did not return them.
type AnimationOutcome struct {
	TaskID   string
	Status   string
	VideoURL string
	FileID   string
	AssetURL string
}

const (
	AdKindGenerate = "generate"
	AdKindAnimate  = "animate"
)

// AdRecord is one row of the ad_generations history table.
type AdRecord struct {
	ID          uuid.UUID
	UserID      string
	Kind        string
	Style       sql.NullString
	Platform    sql.NullString
	Description sql.NullString
	ImageCount  int
	FileID      sql.NullString
	AssetURL    sql.NullString
	TaskID      sql.NullString
	Status      sql.NullString
	VideoURL    sql.NullString
	CreatedAt   time.Time
}
