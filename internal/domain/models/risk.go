package models

// RiskTier represents the ordinal risk level attached to an analysis
type RiskTier string

const (
	RiskLow     RiskTier = "low"     // No strong signal
	RiskMedium  RiskTier = "medium"  // Suspicious, verify before paying
	RiskHigh    RiskTier = "high"    // Strong scam signal
	RiskUnknown RiskTier = "unknown" // Model output could not be parsed
)

// Language selects the localization for user-facing narratives
type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageMarathi Language = "mr"
	LanguageEnglish Language = "en"
)

// NormalizeLanguage maps any unrecognized code to English
func NormalizeLanguage(lang string) Language {
	switch Language(lang) {
	case LanguageHindi, LanguageMarathi, LanguageEnglish:
		return Language(lang)
	default:
		return LanguageEnglish
	}
}

// CaseType selects the protect-mode prompt flavor
type CaseType string

const (
	CaseTypeUPI     CaseType = "upi"     // UPI payment fraud
	CaseTypeDigital CaseType = "digital" // Digital arrest intimidation
)
