package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services/ai"
	"elderguard/pkg/logger"
)

func newBaitFixture(t *testing.T, fake *ai.FakeProvider) (*BaitService, *MemorySessionStore) {
	t.Helper()
	log := logger.NewDefault()
	store := NewMemorySessionStore(time.Hour, 0, log)
	t.Cleanup(store.Close)
	svc := NewBaitService(fake, NewIntelExtractor(log), store, log)
	return svc, store
}

func TestBaitReply(t *testing.T) {
	ctx := context.Background()
	fake := &ai.FakeProvider{ResponseText: "```json\n{" +
		`"reply_to_scammer": "Beta, mera chashma nahi mil raha, UPI kaise kholte hain?",` +
		`"extracted_intel": {"upi_ids": ["fraud@paytm"], "phone_numbers": [], "links": [], "bank_accounts": []},` +
		`"confidence_scam": "high",` +
		`"notes_for_law_enforcement": "Asked for direct transfer to a wallet handle."` +
		"}\n```"}
	svc, store := newBaitFixture(t, fake)

	sess, _ := store.Create(ctx)

	result, err := svc.Reply(ctx, sess.ID, models.BaitRequest{Message: "Uncle, send 5000 to fraud@paytm right now"})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}

	if result.Reply != "Beta, mera chashma nahi mil raha, UPI kaise kholte hain?" {
		t.Errorf("reply = %q", result.Reply)
	}
	if result.ConfidenceScam != "high" {
		t.Errorf("confidence = %q, want high", result.ConfidenceScam)
	}
	if result.Notes == "" {
		t.Error("notes missing")
	}
	if len(result.Intel.UPIIDs) != 1 || result.Intel.UPIIDs[0] != "fraud@paytm" {
		t.Errorf("intel = %v", result.Intel.UPIIDs)
	}

	stored, _ := store.Get(ctx, sess.ID)
	if len(stored.Conversation) != 2 {
		t.Fatalf("conversation length = %d, want 2", len(stored.Conversation))
	}
	if stored.Conversation[0].Sender != SenderScammer || stored.Conversation[1].Sender != SenderPersona {
		t.Errorf("senders = %s, %s", stored.Conversation[0].Sender, stored.Conversation[1].Sender)
	}
}

func TestBaitReplyRawTextFallback(t *testing.T) {
	ctx := context.Background()
	fake := &ai.FakeProvider{ResponseText: "Beta, phone hang ho gaya, number firse bhejo."}
	svc, store := newBaitFixture(t, fake)

	sess, _ := store.Create(ctx)

	result, err := svc.Reply(ctx, sess.ID, models.BaitRequest{Message: "call 919876543210"})
	if err != nil {
		t.Fatalf("reply: %v", err)
	}

	if result.Reply != fake.ResponseText {
		t.Errorf("reply = %q, want raw model text", result.Reply)
	}
	if result.ConfidenceScam != "" {
		t.Errorf("confidence = %q, want empty on fallback", result.ConfidenceScam)
	}
	// The scammer message itself still feeds the extractor
	if len(result.Intel.Phones) != 1 {
		t.Errorf("phones = %v", result.Intel.Phones)
	}
}

func TestBaitReplyModelFailure(t *testing.T) {
	ctx := context.Background()
	svc, store := newBaitFixture(t, &ai.FakeProvider{Err: errors.New("quota exceeded")})

	sess, _ := store.Create(ctx)

	if _, err := svc.Reply(ctx, sess.ID, models.BaitRequest{Message: "hello"}); err == nil {
		t.Fatal("expected error when model fails")
	}

	// A failed turn must not leave a half-written conversation
	stored, _ := store.Get(ctx, sess.ID)
	if len(stored.Conversation) != 0 {
		t.Errorf("conversation = %v, want empty", stored.Conversation)
	}
}
