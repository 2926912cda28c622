package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"adsgenie-backend/internal/models"
	"github.com/google/uuid"
)

const (
	// DefaultAnimationPrompt is used when the caller sends no description.
	DefaultAnimationPrompt = "Create a smooth animated advertisement video with subtle motion effects"
	// AnimationDuration is the requested video length in seconds.
	AnimationDuration = 5
)

// ObjectStore stores an image and returns its id and public URL.
// UploadFromURL stores the image found at sourceURL.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, contentType, fileName, folder string) (*models.UploadedAsset, error)
	UploadFromURL(ctx context.Context, sourceURL, fileName, folder string) (*models.UploadedAsset, error)
}

// VideoGenerator starts an image-to-video generation for a public image URL.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, imageURL, prompt string, duration int) (*models.VideoTask, error)
}

type Animator struct {
	store       ObjectStore
	video       VideoGenerator
	folder      string
	callTimeout time.Duration
	now         func() time.Time
}

func NewAnimator(store ObjectStore, video VideoGenerator, folder string, callTimeout time.Duration) *Animator {
	return &Animator{
		store:       store,
		video:       video,
		folder:      folder,
		callTimeout: callTimeout,
		now:         time.Now,
	}
}

// Animate uploads the source image and asks the video backend to animate it.
// It makes exactly one video call and returns whatever that call reported;
// a pending task comes back with status "processing" and no video URL.
// An uploaded asset is not removed when the video call fails.
func (a *Animator) Animate(ctx context.Context, caller string, req models.AnimationRequest) (*models.AnimationOutcome, error) {
	if err := RequireCaller(caller); err != nil {
		return nil, err
	}

	var (
		source   *DecodedImage
		fileName string
	)
	if IsRemoteURL(req.SourceImage) {
		fileName = a.fileName(contentTypeFromURL(req.SourceImage))
	} else {
		img, err := DecodeImage(req.SourceImage)
		if err != nil {
			return nil, InvalidArgument("Image must be base64 encoded")
		}
		source = img
		fileName = a.fileName(img.ContentType)
	}

	ctx = context.WithoutCancel(ctx)

	if source != nil {
		slog.InfoContext(ctx, "animation uploading", "caller", caller, "file_name", fileName, "bytes", len(source.Data))
	} else {
		slog.InfoContext(ctx, "animation uploading from url", "caller", caller, "file_name", fileName, "source_url", req.SourceImage)
	}

	asset, err := a.upload(ctx, source, req.SourceImage, fileName)
	if err != nil {
		slog.ErrorContext(ctx, "animation upload failed", "caller", caller, "error", err)
		return nil, Internal(err.Error(), err)
	}
	slog.InfoContext(ctx, "animation uploaded", "caller", caller, "file_id", asset.FileID)

	prompt := req.Description
	if prompt == "" {
		prompt = DefaultAnimationPrompt
	}

	slog.InfoContext(ctx, "animation requesting video", "caller", caller, "file_id", asset.FileID)
	task, err := a.generateVideo(ctx, asset.PublicURL, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "animation video request failed",
			"caller", caller, "file_id", asset.FileID, "error", err)
		return nil, Internal(err.Error(), err)
	}

	outcome := &models.AnimationOutcome{
		TaskID:   task.ID,
		Status:   task.Status,
		VideoURL: task.VideoURL,
		FileID:   asset.FileID,
		AssetURL: asset.PublicURL,
	}
	if outcome.Status == "" {
		outcome.Status = models.AnimationStatusProcessing
	}

	slog.InfoContext(ctx, "animation requested",
		"caller", caller, "file_id", outcome.FileID, "task_id", outcome.TaskID, "status", outcome.Status)
	return outcome, nil
}

// upload stores img when the image was sent inline, or sourceURL otherwise.
func (a *Animator) upload(ctx context.Context, img *DecodedImage, sourceURL, fileName string) (*models.UploadedAsset, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	var (
		asset *models.UploadedAsset
		err   error
	)
	if img != nil {
		asset, err = a.store.Upload(ctx, img.Data, img.ContentType, fileName, a.folder)
	} else {
		asset, err = a.store.UploadFromURL(ctx, sourceURL, fileName, a.folder)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if asset == nil || asset.PublicURL == "" {
		return nil, fmt.Errorf("failed to upload image: storage returned no public url")
	}
	return asset, nil
}

func (a *Animator) generateVideo(ctx context.Context, imageURL, prompt string) (*models.VideoTask, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	task, err := a.video.GenerateVideo(ctx, imageURL, prompt, AnimationDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate video: %w", err)
	}
	if task == nil {
		return &models.VideoTask{}, nil
	}
	return task, nil
}

func (a *Animator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.callTimeout)
}

// fileName is unique per call: millisecond timestamp plus a random suffix.
func (a *Animator) fileName(contentType string) string {
	ext := ".png"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("ad-%d-%s%s", a.now().UnixMilli(), uuid.NewString()[:8], ext)
}

// contentTypeFromURL guesses the image type from the URL path extension.
// Unknown extensions are treated as PNG.
func contentTypeFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "image/png"
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	}
	return "image/png"
}
