package services

import (
	"fmt"
	"strings"

	"adsgenie-backend/internal/config"
	"adsgenie-backend/internal/models"
	"adsgenie-backend/internal/prompts"
)

// ValidateGeneration checks server configuration and the caller's input for
// generateAds. Empty style and platform fall back to the client defaults.
func ValidateGeneration(cfg *config.Config, req models.GenerateAdsRequest) (models.GenerationRequest, error) {
	if !cfg.GenerationConfigured() {
		return models.GenerationRequest{}, Internal("AI_GATEWAY_API_KEY is not configured", nil)
	}

	image := strings.TrimSpace(req.ImageBase64)
	description := strings.TrimSpace(req.Description)
	if image == "" || description == "" {
		return models.GenerationRequest{}, InvalidArgument("Image and description are required")
	}

	style := strings.ToLower(strings.TrimSpace(req.Style))
	if style == "" {
		style = prompts.StyleModern
	}
	if !prompts.ValidStyle(style) {
		return models.GenerationRequest{}, InvalidArgument(fmt.Sprintf("style must be one of %s", strings.Join(prompts.Styles, ", ")))
	}

	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	if platform == "" {
		platform = prompts.PlatformInstagram
	}
	if !prompts.ValidPlatform(platform) {
		return models.GenerationRequest{}, InvalidArgument(fmt.Sprintf("platform must be one of %s", strings.Join(prompts.Platforms, ", ")))
	}

	return models.GenerationRequest{
		SourceImage: image,
		Description: description,
		Style:       style,
		Platform:    platform,
	}, nil
}

// ValidateAnimation checks server configuration and the caller's input for
// animateAd.
func ValidateAnimation(cfg *config.Config, req models.AnimateAdRequest) (models.AnimationRequest, error) {
	if !cfg.AnimationConfigured() {
		return models.AnimationRequest{}, Internal("Storage or video backend config missing", nil)
	}

	image := strings.TrimSpace(req.ImageBase64)
	if image == "" {
		return models.AnimationRequest{}, InvalidArgument("Image is required")
	}

	return models.AnimationRequest{
		SourceImage: image,
		Description: strings.TrimSpace(req.Description),
	}, nil
}
