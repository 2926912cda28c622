package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"adsgenie-backend/internal/models"
	_ "github.com/lib/pq"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) CreateAdRecord(ctx context.Context, record *models.AdRecord) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO ad_generations (id, user_id, kind, style, platform, description, image_count,
			file_id, asset_url, task_id, status, video_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, record.ID, record.UserID, record.Kind, record.Style, record.Platform, record.Description,
		record.ImageCount, record.FileID, record.AssetURL, record.TaskID, record.Status,
		record.VideoURL, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ad record: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListAdRecords(ctx context.Context, userID string) ([]models.AdRecord, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, user_id, kind, style, platform, description, image_count,
			file_id, asset_url, task_id, status, video_url, created_at
		FROM ad_generations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ad records: %w", err)
	}
	defer rows.Close()

	var records []models.AdRecord
	for rows.Next() {
		var record models.AdRecord
		err := rows.Scan(
			&record.ID, &record.UserID, &record.Kind, &record.Style, &record.Platform,
			&record.Description, &record.ImageCount, &record.FileID, &record.AssetURL,
			&record.TaskID, &record.Status, &record.VideoURL, &record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ad record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list ad records: %w", err)
	}

	return records, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
