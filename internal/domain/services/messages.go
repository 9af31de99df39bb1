package services

import (
	"fmt"
	"strings"

	"elderguard/internal/domain/models"
)

// Localized user-facing strings. Hindi and Marathi wording matches what the
// elderly-user testing settled on; unknown languages fall back to English.

// ModelErrorMessage is shown when the generative model call fails during a
// protect-mode scan. Local analysis still goes out with it.
func ModelErrorMessage(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "कुछ गड़बड़ हो गयी, बाद में try करें."
	case models.LanguageMarathi:
		return "चूक झाली, नंतर पुन्हा प्रयत्न करा."
	default:
		return "Error, please try again later."
	}
}

// WarrantErrorMessage is shown when warrant analysis fails end to end
func WarrantErrorMessage(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "Warrant analyse करने में गड़बड़ हुई, बाद में try करें."
	case models.LanguageMarathi:
		return "Warrant विश्लेषणात चूक. नंतर पुन्हा प्रयत्न करा."
	default:
		return "Error analyzing warrant. Please try again later."
	}
}

// QRErrorMessage is shown when QR analysis fails end to end
func QRErrorMessage(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "QR code analyse करने में गड़बड़ हुई, बाद में try करें."
	case models.LanguageMarathi:
		return "QR code विश्लेषणात चूक. नंतर पुन्हा प्रयत्न करा."
	default:
		return "Error analyzing QR code. Please try again later."
	}
}

// QRDecodeFailedMessage is shown when no QR payload could be read from the
// uploaded image. Decode failure is a normal outcome, not an error.
func QRDecodeFailedMessage(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "QR code नहीं पढ़ा जा सका। कृपया साफ़ image upload करें।"
	case models.LanguageMarathi:
		return "QR code वाचता आला नाही. कृपया स्पष्ट image अपलोड करा."
	default:
		return "Could not decode QR code. Please upload a clear image."
	}
}

// QRSummaryMessage renders the final localized QR verdict for the user
func QRSummaryMessage(lang models.Language, payload models.UPIPayload, visualAnalysis string) string {
	upiID := payload.Payee()
	if upiID == "" {
		upiID = "unknown"
	}
	merchant := payload.PayeeName()
	if merchant == "" {
		merchant = "unknown"
	}
	amount := payload["am"]
	if amount == "" {
		amount = "not specified"
	}

	switch lang {
	case models.LanguageHindi:
		return fmt.Sprintf("QR से decode हुआ:\n- UPI ID: %s\n- Merchant: %s\n- Amount: ₹%s\n\nVisual check: %s\n\nसलाह: भुगतान करने से पहले merchant का नाम check करें और अपने bank या 1930 से confirm करें।", upiID, merchant, amount, visualAnalysis)
	case models.LanguageMarathi:
		return fmt.Sprintf("QR मधून decode झाले:\n- UPI ID: %s\n- Merchant: %s\n- Amount: ₹%s\n\nVisual तपासणी: %s\n\nसल्ला: पेमेंट करण्यापूर्वी merchant चे नाव तपासा आणि बँक किंवा 1930 शी खात्री करा।", upiID, merchant, amount, visualAnalysis)
	default:
		return fmt.Sprintf("QR decoded:\n- UPI ID: %s\n- Merchant: %s\n- Amount: ₹%s\n\nVisual check: %s\n\nAdvice: Verify merchant name matches display and confirm with bank or 1930 before paying.", upiID, merchant, amount, visualAnalysis)
	}
}

// AccountNote renders the localized account-context note kept for the report
func AccountNote(lang models.Language, ctx models.AccountContext) string {
	if ctx.Reason == "" {
		return ""
	}

	var prefix string
	switch lang {
	case models.LanguageHindi:
		prefix = "खाते संदर्भ विश्लेषण"
	case models.LanguageMarathi:
		prefix = "Account संदर्भ विश्लेषण"
	default:
		prefix = "Account-context analysis"
	}

	return fmt.Sprintf("%s (%s RISK): %s", prefix, strings.ToUpper(string(ctx.Risk)), ctx.Reason)
}
