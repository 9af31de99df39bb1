package models

// BaitRequest is one incoming scammer message to answer in persona
type BaitRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

// BaitIntel mirrors the extracted_intel object the persona prompt asks the
// model to return. Field names follow that contract, not the session intel
// JSON shape.
type BaitIntel struct {
	UPIIDs       []string `json:"upi_ids"`
	PhoneNumbers []string `json:"phone_numbers"`
	Links        []string `json:"links"`
	BankAccounts []string `json:"bank_accounts"`
}

// Strings flattens every reported identifier for re-extraction
func (b BaitIntel) Strings() []string {
	out := make([]string, 0, len(b.UPIIDs)+len(b.PhoneNumbers)+len(b.Links)+len(b.BankAccounts))
	out = append(out, b.UPIIDs...)
	out = append(out, b.PhoneNumbers...)
	out = append(out, b.Links...)
	out = append(out, b.BankAccounts...)
	return out
}

// BaitReply is the structured persona output from the model. When the model
// response cannot be parsed as JSON the raw text lands in ReplyToScammer and
// the rest stays zero.
type BaitReply struct {
	ReplyToScammer         string    `json:"reply_to_scammer"`
	ExtractedIntel         BaitIntel `json:"extracted_intel"`
	ConfidenceScam         string    `json:"confidence_scam"`
	NotesForLawEnforcement string    `json:"notes_for_law_enforcement"`
}

// BaitResult is what the handler returns after a bait turn
type BaitResult struct {
	Reply          string          `json:"reply"`
	ConfidenceScam string          `json:"confidence_scam,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Intel          IntelCollection `json:"intel"`
}
