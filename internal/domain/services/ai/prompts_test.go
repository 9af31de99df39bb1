package ai

import (
	"strings"
	"testing"

	"elderguard/internal/domain/models"
)

func TestBuildProtectPrompt(t *testing.T) {
	upi := BuildProtectPrompt(models.CaseTypeUPI, models.LanguageEnglish, "pay to fraud@paytm")
	if !strings.Contains(upi, "pay to fraud@paytm") {
		t.Error("prompt missing scanned input")
	}

	digital := BuildProtectPrompt(models.CaseTypeDigital, models.LanguageEnglish, "arrest warrant call")
	if digital == upi {
		t.Error("digital case type should use its own template")
	}

	hi := BuildProtectPrompt(models.CaseTypeUPI, models.LanguageHindi, "x")
	en := BuildProtectPrompt(models.CaseTypeUPI, models.LanguageEnglish, "x")
	if hi == en {
		t.Error("hindi and english templates should differ")
	}
}

func TestBuildWarrantPromptSearchableInfo(t *testing.T) {
	plain := BuildWarrantPrompt(models.LanguageEnglish, "")
	if strings.Contains(plain, "searchable info") {
		t.Error("empty searchable info should not appear in prompt")
	}

	with := BuildWarrantPrompt(models.LanguageEnglish, "CBI case 42/2025")
	if !strings.Contains(with, `"CBI case 42/2025"`) {
		t.Error("searchable info not quoted into prompt")
	}
}

func TestBuildQRVisualPrompt(t *testing.T) {
	payload := models.UPIPayload{"pa": "shop@ybl", "pn": "Tea Stall"}
	prompt := BuildQRVisualPrompt(models.LanguageEnglish, "upi://pay?pa=shop@ybl", payload)

	for _, want := range []string{
		"QR decoded data: upi://pay?pa=shop@ybl",
		"UPI ID: shop@ybl",
		"Merchant: Tea Stall",
		"NORMAL / SUSPICIOUS / HIGH_RISK",
		"Return only plain text (not JSON), no more than 3 sentences.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildQRVisualPromptUnknownFields(t *testing.T) {
	prompt := BuildQRVisualPrompt(models.LanguageEnglish, "raw", models.UPIPayload{})
	if !strings.Contains(prompt, "UPI ID: unknown") || !strings.Contains(prompt, "Merchant: unknown") {
		t.Error("missing payload fields should render as unknown")
	}
}

func TestBuildBaitPrompt(t *testing.T) {
	prompt := BuildBaitPrompt("send 5000 to fraud@paytm")
	if !strings.Contains(prompt, `Scammer message: "send 5000 to fraud@paytm"`) {
		t.Error("scammer message not spliced into prompt")
	}
	if !strings.Contains(prompt, "Ramesh Uncle") {
		t.Error("persona missing from prompt")
	}
}
