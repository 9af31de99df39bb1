package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services/ai"
	"elderguard/pkg/logger"
)

// WarrantService analyzes uploaded "digital arrest" warrant documents. The
// model sees the document as inline data; whatever it reads out of the
// document flows into the session intel.
type WarrantService struct {
	provider  ai.Provider
	extractor *IntelExtractor
	sessions  SessionStore
	logger    *logger.Logger
}

// NewWarrantService creates a new warrant analysis service
func NewWarrantService(provider ai.Provider, extractor *IntelExtractor, sessions SessionStore, log *logger.Logger) *WarrantService {
	return &WarrantService{
		provider:  provider,
		extractor: extractor,
		sessions:  sessions,
		logger:    log.WithComponent("warrant-service"),
	}
}

// Analyze inspects one uploaded warrant document
func (s *WarrantService) Analyze(ctx context.Context, sessionID uuid.UUID, lang models.Language, searchableInfo string, data []byte, mediaType string) (*models.WarrantAnalysis, error) {
	prompt := ai.BuildWarrantPrompt(lang, searchableInfo)

	text, err := s.provider.Generate(ctx, prompt, &ai.InlineData{MIMEType: mediaType, Data: data})
	if err != nil {
		return nil, fmt.Errorf("warrant analysis failed: %w", err)
	}

	analysis := parseWarrantResponse(text)
	if analysis.Risk == models.RiskUnknown {
		s.logger.WithSessionID(sessionID.String()).Warn().Msg("warrant response was not valid JSON, returning raw text")
	}

	intel := s.extractor.Extract(analysis.ExtractedText)
	intel.Merge(s.extractor.Extract(strings.Join(entityStrings(analysis.Entities), " ")))

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		sess.Intel.Merge(intel)
		sess.WarrantNote = analysis.Message
	}); err != nil {
		return nil, err
	}

	return analysis, nil
}

// parseWarrantResponse decodes the strict-JSON verdict. Anything unparsable
// degrades to an unknown-risk verdict carrying the raw model text.
func parseWarrantResponse(text string) *models.WarrantAnalysis {
	var analysis models.WarrantAnalysis
	if err := json.Unmarshal([]byte(ai.CleanJSON(text)), &analysis); err != nil {
		return &models.WarrantAnalysis{
			Risk:    models.RiskUnknown,
			Message: text,
		}
	}
	return &analysis
}

func entityStrings(e models.WarrantEntities) []string {
	out := make([]string, 0, len(e.UPIIDs)+len(e.PhoneNumbers)+len(e.Accounts))
	out = append(out, e.UPIIDs...)
	out = append(out, e.PhoneNumbers...)
	out = append(out, e.Accounts...)
	return out
}
