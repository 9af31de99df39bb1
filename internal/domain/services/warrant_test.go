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

func newWarrantFixture(t *testing.T, fake *ai.FakeProvider) (*WarrantService, *MemorySessionStore) {
	t.Helper()
	log := logger.NewDefault()
	store := NewMemorySessionStore(time.Hour, 0, log)
	t.Cleanup(store.Close)
	svc := NewWarrantService(fake, NewIntelExtractor(log), store, log)
	return svc, store
}

func TestWarrantAnalyze(t *testing.T) {
	ctx := context.Background()
	fake := &ai.FakeProvider{ResponseText: `{
		"risk": "high",
		"message": "This is not a real warrant. Police never send warrants on WhatsApp.",
		"extracted_text": "CBI NOTICE pay fine to cbi.fine@okaxis or call 919876543210",
		"entities": {
			"names": ["Rajesh Sharma"],
			"fir_numbers": ["FIR/2024/001"],
			"phone_numbers": ["919876543210"],
			"upi_ids": ["cbi.fine@okaxis"],
			"accounts": [],
			"stations": ["Cyber Cell Delhi"]
		}
	}`}
	svc, store := newWarrantFixture(t, fake)

	sess, _ := store.Create(ctx)
	doc := []byte("%PDF-1.4 fake")

	analysis, err := svc.Analyze(ctx, sess.ID, models.LanguageEnglish, "received on WhatsApp", doc, "application/pdf")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if analysis.Risk != models.RiskHigh {
		t.Errorf("risk = %s, want high", analysis.Risk)
	}
	if len(analysis.Entities.Names) != 1 || analysis.Entities.Names[0] != "Rajesh Sharma" {
		t.Errorf("names = %v", analysis.Entities.Names)
	}

	if fake.LastInline == nil || fake.LastInline.MIMEType != "application/pdf" {
		t.Errorf("inline data = %+v, want the uploaded document", fake.LastInline)
	}

	// Extracted text and entity strings both feed the session intel
	stored, _ := store.Get(ctx, sess.ID)
	if len(stored.Intel.UPIIDs) != 1 || stored.Intel.UPIIDs[0] != "cbi.fine@okaxis" {
		t.Errorf("session upi ids = %v", stored.Intel.UPIIDs)
	}
	if len(stored.Intel.Phones) != 1 {
		t.Errorf("session phones = %v", stored.Intel.Phones)
	}
	if stored.WarrantNote != analysis.Message {
		t.Errorf("warrant note = %q", stored.WarrantNote)
	}
}

func TestWarrantAnalyzeUnparsableResponse(t *testing.T) {
	ctx := context.Background()
	fake := &ai.FakeProvider{ResponseText: "I think this document is fake but I cannot output JSON today."}
	svc, store := newWarrantFixture(t, fake)

	sess, _ := store.Create(ctx)

	analysis, err := svc.Analyze(ctx, sess.ID, models.LanguageEnglish, "", []byte("img"), "image/png")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if analysis.Risk != models.RiskUnknown {
		t.Errorf("risk = %s, want unknown", analysis.Risk)
	}
	if analysis.Message != fake.ResponseText {
		t.Errorf("message = %q, want raw model text", analysis.Message)
	}
}

func TestWarrantAnalyzeModelFailure(t *testing.T) {
	ctx := context.Background()
	svc, store := newWarrantFixture(t, &ai.FakeProvider{Err: errors.New("upstream 500")})

	sess, _ := store.Create(ctx)

	if _, err := svc.Analyze(ctx, sess.ID, models.LanguageHindi, "", []byte("img"), "image/png"); err == nil {
		t.Fatal("expected error when model fails")
	}
}
