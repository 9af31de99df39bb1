package services

import (
	"regexp"
	"strings"

	"elderguard/internal/domain/models"
	"elderguard/pkg/logger"
)

// IntelCategory names one of the identifier categories the extractor fills
type IntelCategory string

const (
	CategoryUPI     IntelCategory = "upi"
	CategoryPhone   IntelCategory = "phone"
	CategoryLink    IntelCategory = "link"
	CategoryAccount IntelCategory = "account"
)

// IntelExtractor pulls scam-relevant identifiers out of free text using
// regex patterns. Extraction is pure and never fails; text with no matches
// yields an empty collection.
type IntelExtractor struct {
	patterns map[IntelCategory]*regexp.Regexp
	handleRe *regexp.Regexp
	logger   *logger.Logger
}

// NewIntelExtractor creates a new intel extractor
func NewIntelExtractor(log *logger.Logger) *IntelExtractor {
	ie := &IntelExtractor{
		patterns: make(map[IntelCategory]*regexp.Regexp),
		logger:   log.WithComponent("intel-extractor"),
	}

	ie.compilePatterns()

	return ie
}

func (ie *IntelExtractor) compilePatterns() {
	// UPI virtual payment address
	ie.patterns[CategoryUPI] = regexp.MustCompile(`\b[\w.-]+@\w+\b`)

	// Indian mobile number, optional +91 / 91 prefix
	ie.patterns[CategoryPhone] = regexp.MustCompile(`\+?91?\d{10}\b`)

	// http/https link
	ie.patterns[CategoryLink] = regexp.MustCompile(`https?://[^\s"]+`)

	// Bank account number. A bare 10-digit run also matches the phone
	// pattern; keeping it in both categories is intentional, the 1930
	// helpline wants both leads.
	ie.patterns[CategoryAccount] = regexp.MustCompile(`\b\d{9,18}\b`)

	// UPI handle suffix, for registry lookups
	ie.handleRe = regexp.MustCompile(`@(\w+)`)
}

// Extract collects all identifier matches from text into a fresh collection
func (ie *IntelExtractor) Extract(text string) models.IntelCollection {
	return models.IntelCollection{
		UPIIDs:       ie.matchAll(CategoryUPI, text),
		Phones:       ie.matchAll(CategoryPhone, text),
		Links:        ie.matchAll(CategoryLink, text),
		BankAccounts: ie.matchAll(CategoryAccount, text),
	}
}

// HandleMatches looks up every @suffix in the text against the known UPI
// handle registry, first occurrence order, no duplicates.
func (ie *IntelExtractor) HandleMatches(text string) []models.HandleInfo {
	var matches []models.HandleInfo
	seen := make(map[string]bool)

	for _, m := range ie.handleRe.FindAllStringSubmatch(text, -1) {
		suffix := strings.ToLower(m[1])
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		if info, ok := models.KnownUPIHandles[suffix]; ok {
			matches = append(matches, info)
		}
	}

	return matches
}

func (ie *IntelExtractor) matchAll(category IntelCategory, text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, value := range ie.patterns[category].FindAllString(text, -1) {
		if seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}

	return out
}
