package services

import (
	"net/url"
	"strings"

	"elderguard/internal/domain/models"
)

// ParseUPIPayload turns a upi:// deep link into its key/value parameters.
// Anything without the upi:// prefix yields an empty map. Malformed segments
// never fail: a segment without = contributes an empty value, an undecodable
// value is kept raw, and the last occurrence of a repeated key wins.
func ParseUPIPayload(raw string) models.UPIPayload {
	data := models.UPIPayload{}
	if !strings.HasPrefix(raw, "upi://") {
		return data
	}

	_, query, found := strings.Cut(raw, "?")
	if !found || query == "" {
		return data
	}

	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			decoded = value
		}
		data[key] = decoded
	}

	return data
}

// AssessQRRisk grades a decoded UPI payload against the visual narrative the
// model produced. Rules apply in order, first hit wins; the narrative check
// runs first so a tampering verdict overrides a well-formed payload.
func AssessQRRisk(payload models.UPIPayload, visualAnalysis string) models.RiskTier {
	vis := strings.ToLower(visualAnalysis)
	if strings.Contains(vis, "high_risk") || strings.Contains(vis, "suspicious") || strings.Contains(vis, "tamper") {
		return models.RiskHigh
	}
	if pa := payload.Payee(); pa == "" || len(pa) < 5 {
		return models.RiskHigh
	}
	if pn := payload.PayeeName(); pn == "" || pn == "unknown" {
		return models.RiskMedium
	}
	return models.RiskLow
}
