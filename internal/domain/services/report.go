package services

import (
	"context"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/infrastructure/database/repository"
	"elderguard/pkg/logger"
)

// ReportService builds the plain-text report a caregiver can paste into the
// 1930 cyber helpline portal, and optionally archives each generated report.
type ReportService struct {
	sessions SessionStore
	archive  *repository.ReportRepository
	logger   *logger.Logger
}

// NewReportService creates a new report service. archive may be nil when no
// database is configured; reports are then generated but not retained.
func NewReportService(sessions SessionStore, archive *repository.ReportRepository, log *logger.Logger) *ReportService {
	return &ReportService{
		sessions: sessions,
		archive:  archive,
		logger:   log.WithComponent("report-service"),
	}
}

// Build renders the report text for a session and archives it when a
// database is available. Archive failures are logged, not returned; the
// caller still gets the report text.
func (s *ReportService) Build(ctx context.Context, sessionID uuid.UUID) (string, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	body := BuildReportText(sess)

	if s.archive != nil {
		report := &models.ArchivedReport{
			SessionID: sessionID,
			Body:      body,
		}
		sessionLog := s.logger.WithSessionID(sessionID.String())
		if err := s.archive.Save(ctx, report); err != nil {
			sessionLog.Warn().Err(err).Msg("failed to archive report")
		} else {
			sessionLog.Info().Str("report_id", report.ID.String()).Msg("report archived")
		}
	}

	return body, nil
}

// Archived returns stored reports, newest first
func (s *ReportService) Archived(ctx context.Context, limit, offset int) ([]models.ArchivedReport, error) {
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.List(ctx, limit, offset)
}

// ArchivedByID returns one stored report
func (s *ReportService) ArchivedByID(ctx context.Context, id uuid.UUID) (*models.ArchivedReport, error) {
	if s.archive == nil {
		return nil, repository.ErrReportNotFound
	}
	return s.archive.GetByID(ctx, id)
}
