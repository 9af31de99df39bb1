package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"elderguard/internal/domain/models"
)

// ErrReportNotFound is returned when an archived report does not exist
var ErrReportNotFound = errors.New("report not found")

// Schema is the DDL for the report archive. Applied at startup; the table is
// append-only.
const Schema = `
CREATE TABLE IF NOT EXISTS reports (
	id         UUID PRIMARY KEY,
	session_id UUID NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_reports_session_id ON reports (session_id);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);
`

// ReportRepository archives generated 1930 report texts
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Migrate applies the report archive schema
func (r *ReportRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply reports schema: %w", err)
	}
	return nil
}

// Save archives one generated report
func (r *ReportRepository) Save(ctx context.Context, report *models.ArchivedReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO reports (id, session_id, body, created_at) VALUES ($1, $2, $3, $4)`,
		report.ID, report.SessionID, report.Body, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// GetByID fetches one archived report
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ArchivedReport, error) {
	var report models.ArchivedReport
	err := r.pool.QueryRow(ctx,
		`SELECT id, session_id, body, created_at FROM reports WHERE id = $1`,
		id,
	).Scan(&report.ID, &report.SessionID, &report.Body, &report.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return &report, nil
}

// List returns archived reports, newest first
func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]models.ArchivedReport, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, session_id, body, created_at FROM reports ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []models.ArchivedReport
	for rows.Next() {
		var report models.ArchivedReport
		if err := rows.Scan(&report.ID, &report.SessionID, &report.Body, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}
