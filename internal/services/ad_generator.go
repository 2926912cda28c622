package services

import (
	"context"
	"log/slog"
	"time"

	"adsgenie-backend/internal/models"
	"adsgenie-backend/internal/prompts"
	"golang.org/x/sync/errgroup"
)

// ImageGenerator produces one ad image from a prompt and a source image
// (data URL or http(s) URL) and returns the generated image URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, imageURL string) (string, error)
}

type AdGenerator struct {
	images      ImageGenerator
	concurrency int
	callTimeout time.Duration
}

func NewAdGenerator(images ImageGenerator, concurrency int, callTimeout time.Duration) *AdGenerator {
	if concurrency <= 0 {
		concurrency = prompts.VariantCount
	}
	return &AdGenerator{
		images:      images,
		concurrency: concurrency,
		callTimeout: callTimeout,
	}
}

// Generate runs every prompt variant against the image backend and returns
// the images that succeeded, in variant order. It fails only when the caller
// is missing, the image cannot be read, or no variant produced an image.
func (g *AdGenerator) Generate(ctx context.Context, caller string, req models.GenerationRequest) (*models.GenerationOutcome, error) {
	if err := RequireCaller(caller); err != nil {
		return nil, err
	}

	imageURL := req.SourceImage
	if !IsRemoteURL(imageURL) {
		dataURL, err := ToDataURL(req.SourceImage)
		if err != nil {
			return nil, InvalidArgument("Image must be base64 encoded")
		}
		imageURL = dataURL
	}

	variants := prompts.Build(req.Description, req.Style, req.Platform)
	results := g.dispatch(ctx, variants, imageURL)

	outcome := &models.GenerationOutcome{Images: make([]string, 0, len(results))}
	for _, result := range results {
		if !result.Succeeded() {
			slog.WarnContext(ctx, "variant generation failed",
				"caller", caller, "variant", result.Index, "error", result.Err)
			continue
		}
		outcome.Images = append(outcome.Images, result.ImageURL)
	}

	if len(outcome.Images) == 0 {
		return nil, Internal("Failed to generate any ad images. Please try again.", nil)
	}

	slog.InfoContext(ctx, "ad variations generated",
		"caller", caller, "style", req.Style, "platform", req.Platform,
		"succeeded", len(outcome.Images), "attempted", len(variants))
	return outcome, nil
}

// dispatch calls the backend once per variant. Each goroutine owns exactly
// one slot of results, so completion order never affects output order.
func (g *AdGenerator) dispatch(ctx context.Context, variants []prompts.Variant, imageURL string) []models.VariantResult {
	results := make([]models.VariantResult, len(variants))

	// In-flight calls run to completion even if the caller goes away.
	callCtx := context.WithoutCancel(ctx)

	var group errgroup.Group
	group.SetLimit(g.concurrency)
	for i, variant := range variants {
		i, variant := i, variant
		group.Go(func() error {
			results[i] = g.generateVariant(callCtx, variant, imageURL)
			return nil
		})
	}
	group.Wait()

	return results
}

func (g *AdGenerator) generateVariant(ctx context.Context, variant prompts.Variant, imageURL string) (result models.VariantResult) {
	result.Index = variant.Index

	defer func() {
		if r := recover(); r != nil {
			result.ImageURL = ""
			result.Err = Internal("variant generation panicked", nil)
			slog.ErrorContext(ctx, "variant generation panicked", "variant", variant.Index, "panic", r)
		}
	}()

	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}

	url, err := g.images.GenerateImage(ctx, variant.Text, imageURL)
	if err != nil {
		result.Err = err
		return result
	}
	if url == "" {
		result.Err = errNoImage
		return result
	}
	result.ImageURL = url
	return result
}
