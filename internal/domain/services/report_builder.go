package services

import (
	"strings"

	"elderguard/internal/domain/models"
)

// BuildReportText renders the flat 1930 complaint text for a session. Line
// order is fixed so the helpline operators see the same layout every time.
func BuildReportText(s *models.Session) string {
	var lines []string

	lines = append(lines, "ElderGuard Scam Report")
	lines = append(lines, "----------------------")
	lines = append(lines, "UPI IDs: "+joinOrNone(s.Intel.UPIIDs))
	lines = append(lines, "Phones: "+joinOrNone(s.Intel.Phones))
	lines = append(lines, "Links: "+joinOrNone(s.Intel.Links))
	lines = append(lines, "Bank Accounts / Numbers: "+joinOrNone(s.Intel.BankAccounts))
	lines = append(lines, "")

	if s.AccountNote != "" {
		lines = append(lines, "Local account-risk note: "+s.AccountNote)
		lines = append(lines, "")
	}
	if s.WarrantNote != "" {
		lines = append(lines, "Warrant analysis: "+s.WarrantNote)
		lines = append(lines, "")
	}
	if s.QRNote != "" {
		lines = append(lines, "QR code analysis: "+s.QRNote)
		lines = append(lines, "")
	}

	lines = append(lines, "Conversation:")
	for _, m := range s.Conversation {
		lines = append(lines, m.Sender+": "+m.Text)
	}

	return strings.Join(lines, "\n")
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
