package handlers

import (
	"net/http"

	"adsgenie-backend/internal/config"
	"adsgenie-backend/internal/middleware"
	"adsgenie-backend/internal/models"
	"adsgenie-backend/internal/services"
	"github.com/gin-gonic/gin"
)

type AdsHandler struct {
	cfg       *config.Config
	generator *services.AdGenerator
	animator  *services.Animator
	history   *services.History
}

// NewAdsHandler wires the ad workflows. history may be nil, in which case
// nothing is recorded and listing fails with an internal error.
func NewAdsHandler(cfg *config.Config, generator *services.AdGenerator, animator *services.Animator, history *services.History) *AdsHandler {
	return &AdsHandler{
		cfg:       cfg,
		generator: generator,
		animator:  animator,
		history:   history,
	}
}

// Generate godoc
// @Summary     Generate ad variations
// @Description Generates up to four advertisement images from a product image and description. Variants that fail are omitted; the call fails only when none succeed.
// @Tags        ads
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateAdsRequest true "Product image and creative settings"
// @Success     200 {object} models.GenerateAdsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /ads/generate [post]
func (h *AdsHandler) Generate(c *gin.Context) {
	caller := middleware.CallerID(c)
	if err := services.RequireCaller(caller); err != nil {
		writeError(c, err)
		return
	}

	var body models.GenerateAdsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, services.InvalidArgument("invalid request body"))
		return
	}

	req, err := services.ValidateGeneration(h.cfg, body)
	if err != nil {
		writeError(c, err)
		return
	}

	outcome, err := h.generator.Generate(c.Request.Context(), caller, req)
	if err != nil {
		writeError(c, err)
		return
	}

	h.history.RecordGeneration(c.Request.Context(), caller, req, outcome)

	c.JSON(http.StatusOK, models.GenerateAdsResponse{Images: outcome.Images})
}

// Animate godoc
// @Summary     Animate an ad image
// @Description Uploads the image to object storage and requests a short video from it. The response reflects the single video request; a pending task is returned with status "processing" and a null videoUrl.
// @Tags        ads
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.AnimateAdRequest true "Image to animate"
// @Success     200 {object} models.AnimateAdResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /ads/animate [post]
func (h *AdsHandler) Animate(c *gin.Context) {
	caller := middleware.CallerID(c)
	if err := services.RequireCaller(caller); err != nil {
		writeError(c, err)
		return
	}

	var body models.AnimateAdRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, services.InvalidArgument("invalid request body"))
		return
	}

	req, err := services.ValidateAnimation(h.cfg, body)
	if err != nil {
		writeError(c, err)
		return
	}

	outcome, err := h.animator.Animate(c.Request.Context(), caller, req)
	if err != nil {
		writeError(c, err)
		return
	}

	h.history.RecordAnimation(c.Request.Context(), caller, req, outcome)

	c.JSON(http.StatusOK, models.AnimateAdResponse{
		TaskID:   optional(outcome.TaskID),
		Status:   outcome.Status,
		VideoURL: optional(outcome.VideoURL),
		FileID:   outcome.FileID,
	})
}

// List godoc
// @Summary     List ads
// @Description Returns the caller's generated and animated ads, newest first
// @Tags        ads
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.AdsListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /ads [get]
func (h *AdsHandler) List(c *gin.Context) {
	records, err := h.history.List(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := models.AdsListResponse{Ads: make([]models.AdResponse, 0, len(records))}
	for _, record := range records {
		response.Ads = append(response.Ads, models.AdResponse{
			ID:          record.ID.String(),
			Kind:        record.Kind,
			Style:       record.Style.String,
			Platform:    record.Platform.String,
			Description: record.Description.String,
			ImageCount:  record.ImageCount,
			FileID:      record.FileID.String,
			AssetURL:    record.AssetURL.String,
			TaskID:      record.TaskID.String,
			Status:      record.Status.String,
			VideoURL:    record.VideoURL.String,
			CreatedAt:   record.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
