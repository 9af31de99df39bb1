package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services/ai"
	"elderguard/pkg/logger"
)

// Conversation sender labels
const (
	SenderScammer = "Scammer"
	SenderPersona = "Ramesh Uncle (AI)"
)

// BaitService runs the bait-mode persona. Each scammer message gets an
// in-character reply; both sides of the exchange land in the session
// conversation and every identifier the turn surfaces lands in the intel.
type BaitService struct {
	provider  ai.Provider
	extractor *IntelExtractor
	sessions  SessionStore
	logger    *logger.Logger
}

// NewBaitService creates a new bait-mode service
func NewBaitService(provider ai.Provider, extractor *IntelExtractor, sessions SessionStore, log *logger.Logger) *BaitService {
	return &BaitService{
		provider:  provider,
		extractor: extractor,
		sessions:  sessions,
		logger:    log.WithComponent("bait-service"),
	}
}

// Reply answers one scammer message in persona
func (s *BaitService) Reply(ctx context.Context, sessionID uuid.UUID, req models.BaitRequest) (*models.BaitResult, error) {
	text, err := s.provider.Generate(ctx, ai.BuildBaitPrompt(req.Message), nil)
	if err != nil {
		return nil, fmt.Errorf("bait reply failed: %w", err)
	}
	text = strings.TrimSpace(text)

	reply := parseBaitResponse(text)

	// Re-extract from the scammer message plus everything the model says it
	// saw, so a hallucinated identifier that matches no pattern never enters
	// the collection.
	sources := append([]string{req.Message}, reply.ExtractedIntel.Strings()...)
	intel := s.extractor.Extract(strings.Join(sources, " "))

	now := time.Now().UTC()
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) {
		sess.Conversation = append(sess.Conversation,
			models.ConversationMessage{Sender: SenderScammer, Text: req.Message, Timestamp: now},
			models.ConversationMessage{Sender: SenderPersona, Text: reply.ReplyToScammer, Timestamp: now},
		)
		sess.Intel.Merge(intel)
	})
	if err != nil {
		return nil, err
	}

	return &models.BaitResult{
		Reply:          reply.ReplyToScammer,
		ConfidenceScam: reply.ConfidenceScam,
		Notes:          reply.NotesForLawEnforcement,
		Intel:          sess.Intel,
	}, nil
}

// parseBaitResponse decodes the persona JSON; unparsable output degrades to
// a raw-text reply with no reported intel
func parseBaitResponse(text string) *models.BaitReply {
	var reply models.BaitReply
	if err := json.Unmarshal([]byte(ai.CleanJSON(text)), &reply); err != nil {
		return &models.BaitReply{ReplyToScammer: text}
	}
	if reply.ReplyToScammer == "" {
		reply.ReplyToScammer = text
	}
	return &reply
}
