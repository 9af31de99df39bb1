package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services/ai"
	"elderguard/internal/infrastructure/qrdecode"
	"elderguard/pkg/logger"
)

// QRService analyzes uploaded UPI QR images: local decode and payload
// parsing decide the risk tier, the model only contributes the visual
// tampering narrative.
type QRService struct {
	decoder   qrdecode.Decoder
	provider  ai.Provider
	extractor *IntelExtractor
	sessions  SessionStore
	logger    *logger.Logger
}

// NewQRService creates a new QR analysis service
func NewQRService(decoder qrdecode.Decoder, provider ai.Provider, extractor *IntelExtractor, sessions SessionStore, log *logger.Logger) *QRService {
	return &QRService{
		decoder:   decoder,
		provider:  provider,
		extractor: extractor,
		sessions:  sessions,
		logger:    log.WithComponent("qr-service"),
	}
}

// Analyze inspects one uploaded QR image. An undecodable image is a normal
// outcome and yields a not-decoded result, never an error.
func (s *QRService) Analyze(ctx context.Context, sessionID uuid.UUID, lang models.Language, data []byte, mediaType string) (*models.QRAnalysis, error) {
	raw, err := s.decoder.Decode(data)
	if err != nil {
		s.logger.WithSessionID(sessionID.String()).Debug().Err(err).Msg("QR decode produced no payload")
		return &models.QRAnalysis{
			Decoded: false,
			Risk:    models.RiskUnknown,
			Message: QRDecodeFailedMessage(lang),
		}, nil
	}

	payload := ParseUPIPayload(raw)

	visual, err := s.provider.Generate(ctx, ai.BuildQRVisualPrompt(lang, raw, payload), &ai.InlineData{MIMEType: mediaType, Data: data})
	if err != nil {
		return nil, fmt.Errorf("QR visual analysis failed: %w", err)
	}

	risk := AssessQRRisk(payload, visual)
	message := QRSummaryMessage(lang, payload, visual)

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		if pa := payload.Payee(); pa != "" {
			sess.Intel.Merge(s.extractor.Extract(pa))
		}
		sess.QRNote = message
	}); err != nil {
		return nil, err
	}

	return &models.QRAnalysis{
		Decoded:      true,
		RawPayload:   raw,
		Payload:      payload,
		Risk:         risk,
		VisualReport: visual,
		Message:      message,
	}, nil
}
