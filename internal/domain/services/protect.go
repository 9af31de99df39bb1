package services

import (
	"context"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services/ai"
	"elderguard/pkg/logger"
)

// ProtectService runs the protect-mode text scan: local extraction and
// account-context analysis first, then the model narrative. The local
// findings never depend on the model call succeeding.
type ProtectService struct {
	extractor *IntelExtractor
	analyzer  *AccountContextAnalyzer
	provider  ai.Provider
	sessions  SessionStore
	logger    *logger.Logger
}

// NewProtectService creates a new protect-mode service
func NewProtectService(extractor *IntelExtractor, analyzer *AccountContextAnalyzer, provider ai.Provider, sessions SessionStore, log *logger.Logger) *ProtectService {
	return &ProtectService{
		extractor: extractor,
		analyzer:  analyzer,
		provider:  provider,
		sessions:  sessions,
		logger:    log.WithComponent("protect-service"),
	}
}

// ScanText analyzes one pasted message or UPI detail within a session
func (s *ProtectService) ScanText(ctx context.Context, sessionID uuid.UUID, req models.TextScanRequest) (*models.TextScanResult, error) {
	lang := models.NormalizeLanguage(req.Language)
	caseType := models.CaseType(req.CaseType)
	if caseType != models.CaseTypeDigital {
		caseType = models.CaseTypeUPI
	}

	intel := s.extractor.Extract(req.Text)
	acctCtx := s.analyzer.Analyze(req.Text)
	note := AccountNote(lang, acctCtx)

	sess, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		sess.Intel.Merge(intel)
		if note != "" {
			sess.AccountNote = note
		}
	})
	if err != nil {
		return nil, err
	}

	handles := s.extractor.HandleMatches(req.Text)

	message, genErr := s.provider.Generate(ctx, ai.BuildProtectPrompt(caseType, lang, req.Text), nil)
	if genErr != nil {
		s.logger.WithSessionID(sessionID.String()).Warn().Err(genErr).Msg("model call failed, returning local analysis only")
		message = ModelErrorMessage(lang)
	}

	return &models.TextScanResult{
		Intel:          sess.Intel,
		AccountContext: acctCtx,
		HandleMatches:  handles,
		ModelMessage:   message,
	}, nil
}
