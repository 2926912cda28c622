package services

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"adsgenie-backend/internal/models"
	"github.com/google/uuid"
)

// HistoryStore persists the ads a user has produced.
type HistoryStore interface {
	CreateAdRecord(ctx context.Context, record *models.AdRecord) error
	ListAdRecords(ctx context.Context, userID string) ([]models.AdRecord, error)
}

// History records finished workflow invocations. Recording is best effort:
// a failed write is logged and never changes the workflow result.
// A nil store disables recording.
type History struct {
	store HistoryStore
}

func NewHistory(store HistoryStore) *History {
	return &History{store: store}
}

func (h *History) Enabled() bool {
	return h != nil && h.store != nil
}

func (h *History) RecordGeneration(ctx context.Context, caller string, req models.GenerationRequest, outcome *models.GenerationOutcome) {
	if !h.Enabled() || outcome == nil {
		return
	}
	h.record(ctx, &models.AdRecord{
		ID:          uuid.New(),
		UserID:      caller,
		Kind:        models.AdKindGenerate,
		Style:       nullString(req.Style),
		Platform:    nullString(req.Platform),
		Description: nullString(req.Description),
		ImageCount:  len(outcome.Images),
		CreatedAt:   time.Now(),
	})
}

func (h *History) RecordAnimation(ctx context.Context, caller string, req models.AnimationRequest, outcome *models.AnimationOutcome) {
	if !h.Enabled() || outcome == nil {
		return
	}
	h.record(ctx, &models.AdRecord{
		ID:          uuid.New(),
		UserID:      caller,
		Kind:        models.AdKindAnimate,
		Description: nullString(req.Description),
		ImageCount:  1,
		FileID:      nullString(outcome.FileID),
		AssetURL:    nullString(outcome.AssetURL),
		TaskID:      nullString(outcome.TaskID),
		Status:      nullString(outcome.Status),
		VideoURL:    nullString(outcome.VideoURL),
		CreatedAt:   time.Now(),
	})
}

// List returns the caller's records, newest first.
func (h *History) List(ctx context.Context, caller string) ([]models.AdRecord, error) {
	if err := RequireCaller(caller); err != nil {
		return nil, err
	}
	if !h.Enabled() {
		return nil, Internal("database not available", nil)
	}

	records, err := h.store.ListAdRecords(ctx, caller)
	if err != nil {
		return nil, Internal("failed to list ads", err)
	}
	return records, nil
}

func (h *History) record(ctx context.Context, record *models.AdRecord) {
	if err := h.store.CreateAdRecord(context.WithoutCancel(ctx), record); err != nil {
		slog.WarnContext(ctx, "failed to record ad history",
			"caller", record.UserID, "kind", record.Kind, "error", err)
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
