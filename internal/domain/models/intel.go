package models

import (
	"time"

	"github.com/google/uuid"
)

// IntelCollection is the per-session set of scam identifiers gathered across
// scans and bait turns. Each category is an insertion-ordered set of exact
// strings; merging is idempotent.
type IntelCollection struct {
	UPIIDs       []string `json:"upi_ids"`
	Phones       []string `json:"phones"`
	Links        []string `json:"links"`
	BankAccounts []string `json:"bank_accounts"`
}

// Merge unions the other collection into this one, preserving first-seen
// order and dropping exact duplicates.
func (c *IntelCollection) Merge(other IntelCollection) {
	c.UPIIDs = appendUnique(c.UPIIDs, other.UPIIDs)
	c.Phones = appendUnique(c.Phones, other.Phones)
	c.Links = appendUnique(c.Links, other.Links)
	c.BankAccounts = appendUnique(c.BankAccounts, other.BankAccounts)
}

// IsEmpty reports whether no category holds anything
func (c IntelCollection) IsEmpty() bool {
	return len(c.UPIIDs) == 0 && len(c.Phones) == 0 &&
		len(c.Links) == 0 && len(c.BankAccounts) == 0
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}

// ConversationMessage is one turn of the bait-mode exchange
type ConversationMessage struct {
	Sender    string    `json:"sender"` // "Scammer" or "ElderGuard"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds everything gathered during one assistance session. Sessions
// are ephemeral; nothing here outlives the session TTL.
type Session struct {
	ID           uuid.UUID             `json:"id"`
	Intel        IntelCollection       `json:"intel"`
	Conversation []ConversationMessage `json:"conversation"`

	// Narratives carried into the final report
	AccountNote string `json:"account_note,omitempty"`
	WarrantNote string `json:"warrant_note,omitempty"`
	QRNote      string `json:"qr_note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
