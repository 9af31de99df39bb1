package models

// AccountContext is the deterministic local assessment of bank-account
// signals in a scanned message.
type AccountContext struct {
	Risk     RiskTier `json:"risk"`
	Reason   string   `json:"reason"`
	Flags    []string `json:"flags"`
	Accounts []string `json:"accounts,omitempty"`
	IFSCs    []string `json:"ifsc_codes,omitempty"`
}

// Neutral reports whether the analyzer found no account signal at all
func (a AccountContext) Neutral() bool {
	return a.Risk == RiskLow && a.Reason == "" && len(a.Flags) == 0
}

// TextScanRequest is the protect-mode scan input
type TextScanRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	CaseType string `json:"case_type,omitempty"`
}

// HandleInfo describes a known UPI handle suffix
type HandleInfo struct {
	Suffix string `json:"suffix"`
	PSP    string `json:"psp"`
	Note   string `json:"note"`
}

// TextScanResult combines local analysis with the model narrative
type TextScanResult struct {
	Intel          IntelCollection `json:"intel"`
	AccountContext AccountContext  `json:"account_context"`
	HandleMatches  []HandleInfo    `json:"handle_matches,omitempty"`
	ModelMessage   string          `json:"model_message"`
}

// WarrantEntities mirrors the entities object the warrant prompt asks the
// model to return
type WarrantEntities struct {
	Names        []string `json:"names"`
	FIRNumbers   []string `json:"fir_numbers"`
	PhoneNumbers []string `json:"phone_numbers"`
	UPIIDs       []string `json:"upi_ids"`
	Accounts     []string `json:"accounts"`
	Stations     []string `json:"stations"`
}

// WarrantAnalysis is the structured verdict on an uploaded "warrant" document
type WarrantAnalysis struct {
	Risk          RiskTier        `json:"risk"`
	Message       string          `json:"message"`
	ExtractedText string          `json:"extracted_text,omitempty"`
	Entities      WarrantEntities `json:"entities"`
}
