package services

import (
	"fmt"
	"regexp"
	"strings"

	"elderguard/internal/domain/models"
)

// Flag phrases scammers use to frame mule or pass-through accounts.
// Matched case-insensitively, in this order, so the rationale lists them
// deterministically.
var accountFlagPhrases = []string{
	"gift account",
	"gift wallet",
	"temporary account",
	"verification account",
	"settlement account",
	"gateway account",
	"refund account",
	"promo account",
	"offer account",
	"test account",
	"security account",
}

var (
	accountNumberRe = regexp.MustCompile(`\b\d{9,18}\b`)
	ifscRe          = regexp.MustCompile(`(?i)\b[A-Z]{4}0[A-Z0-9]{6}\b`)
)

// AccountContextAnalyzer assesses bank-account signals in scanned text.
// It is deterministic and stateless; no input ever produces an error.
type AccountContextAnalyzer struct{}

// NewAccountContextAnalyzer creates a new account-context analyzer
func NewAccountContextAnalyzer() *AccountContextAnalyzer {
	return &AccountContextAnalyzer{}
}

// Analyze scores the account-related risk of a message. Text with neither an
// account number nor a flag phrase yields the neutral result: low risk,
// empty rationale, no flags. An IFSC code alone is not enough to leave
// neutral.
func (a *AccountContextAnalyzer) Analyze(rawText string) models.AccountContext {
	if rawText == "" {
		return models.AccountContext{Risk: models.RiskLow, Flags: []string{}}
	}

	lower := strings.ToLower(rawText)

	accounts := accountNumberRe.FindAllString(rawText, -1)
	ifscs := ifscRe.FindAllString(rawText, -1)

	var hitFlags []string
	for _, phrase := range accountFlagPhrases {
		if strings.Contains(lower, phrase) {
			hitFlags = append(hitFlags, phrase)
		}
	}

	if len(accounts) == 0 && len(hitFlags) == 0 {
		return models.AccountContext{Risk: models.RiskLow, Flags: []string{}}
	}

	risk := models.RiskLow
	var reasonParts []string

	if len(accounts) > 0 {
		reasonParts = append(reasonParts,
			"Bare bank account number detected; this app cannot see owner name, account type or when it was opened.")
	}

	if len(ifscs) > 0 {
		reasonParts = append(reasonParts,
			"IFSC code present, which usually indicates a direct bank transfer request.")
	}

	if len(hitFlags) > 0 {
		risk = models.RiskHigh
		reasonParts = append(reasonParts, fmt.Sprintf(
			"Suspicious wording found: %s. Scammers often use such terms for mule / pass-through accounts.",
			strings.Join(hitFlags, ", ")))
	} else {
		risk = models.RiskMedium
	}

	reasonParts = append(reasonParts,
		"Treat this as an unknown beneficiary and confirm independently with your own bank or cyber helpline 1930 before any transfer.")

	if hitFlags == nil {
		hitFlags = []string{}
	}

	return models.AccountContext{
		Risk:     risk,
		Reason:   strings.Join(reasonParts, " "),
		Flags:    hitFlags,
		Accounts: accounts,
		IFSCs:    ifscs,
	}
}
