package models

// UPIPayload is the key/value view of a upi:// deep link
type UPIPayload map[string]string

// Payee returns the pa parameter (payee address), empty when absent
func (p UPIPayload) Payee() string { return p["pa"] }

// PayeeName returns the pn parameter (payee display name), empty when absent
func (p UPIPayload) PayeeName() string { return p["pn"] }

// QRAnalysis is the combined outcome of a QR image scan
type QRAnalysis struct {
	Decoded      bool       `json:"qr_decoded"`
	RawPayload   string     `json:"raw_payload,omitempty"`
	Payload      UPIPayload `json:"payload,omitempty"`
	Risk         RiskTier   `json:"risk"`
	VisualReport string     `json:"visual_report,omitempty"`
	Message      string     `json:"message"`
}

// KnownUPIHandles maps UPI handle suffixes to the payment service provider
// behind them. Presence here never proves a payee is safe; the notes say so.
var KnownUPIHandles = map[string]HandleInfo{
	"okaxis":     {Suffix: "okaxis", PSP: "Axis Bank UPI handle", Note: "Large bank PSP, still cannot verify receiver account."},
	"oksbi":      {Suffix: "oksbi", PSP: "SBI UPI handle", Note: "State Bank PSP; format alone cannot prove safety."},
	"ybl":        {Suffix: "ybl", PSP: "Yes Bank UPI handle", Note: "Used by many apps like PhonePe etc."},
	"paytm":      {Suffix: "paytm", PSP: "Paytm UPI handle", Note: "Wallet/PSP; always double-check beneficiary details."},
	"okhdfcbank": {Suffix: "okhdfcbank", PSP: "HDFC Bank UPI handle", Note: "Bank PSP; treat unknown beneficiaries with caution."},
	"icici":      {Suffix: "icici", PSP: "ICICI Bank UPI handle", Note: "Bank PSP; cannot see account type or age."},
}
