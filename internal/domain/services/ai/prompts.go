package ai

import (
	"fmt"

	"elderguard/internal/domain/models"
)

// BuildProtectPrompt builds the protect-mode prompt for a scanned message.
// Each case type and language has its own template; the model is told it has
// no live bank or NPCI data and must judge from format and wording alone.
func BuildProtectPrompt(caseType models.CaseType, lang models.Language, input string) string {
	if caseType == models.CaseTypeDigital {
		switch lang {
		case models.LanguageHindi:
			return fmt.Sprintf(protectDigitalHi, input)
		case models.LanguageMarathi:
			return fmt.Sprintf(protectDigitalMr, input)
		default:
			return fmt.Sprintf(protectDigitalEn, input)
		}
	}

	switch lang {
	case models.LanguageHindi:
		return fmt.Sprintf(protectUPIHi, input)
	case models.LanguageMarathi:
		return fmt.Sprintf(protectUPIMr, input)
	default:
		return fmt.Sprintf(protectUPIEn, input)
	}
}

// BuildWarrantPrompt builds the digital-arrest warrant analysis prompt. The
// document travels alongside as inline data; the prompt pins the model to
// surface-level checks it can actually do.
func BuildWarrantPrompt(lang models.Language, searchableInfo string) string {
	searchable := ""
	if searchableInfo != "" {
		searchable = fmt.Sprintf(
			"User provided this searchable info: %q. If it looks odd or you can suggest a Google search to verify, mention that briefly.\n",
			searchableInfo,
		)
	}

	return fmt.Sprintf(warrantPrompt, searchable, warrantLangName(lang))
}

// BuildQRVisualPrompt builds the QR tampering inspection prompt
func BuildQRVisualPrompt(lang models.Language, rawData string, payload models.UPIPayload) string {
	pa := payload.Payee()
	if pa == "" {
		pa = "unknown"
	}
	pn := payload.PayeeName()
	if pn == "" {
		pn = "unknown"
	}

	return fmt.Sprintf(qrVisualPrompt, rawData, pa, pn, visualLangName(lang))
}

// BuildBaitPrompt builds the Ramesh Uncle persona prompt for one scammer
// message
func BuildBaitPrompt(scammerMsg string) string {
	return fmt.Sprintf(baitPrompt, scammerMsg)
}

func warrantLangName(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "simple Hindi"
	case models.LanguageMarathi:
		return "simple Marathi"
	default:
		return "simple English"
	}
}

func visualLangName(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "Hindi"
	case models.LanguageMarathi:
		return "Marathi"
	default:
		return "English"
	}
}

const protectUPIHi = `
यह UPI ID है या पेमेंट का detail है: "%s".

तथ्य:
- आपके पास बैंक या NPCI का रियल टाइम डेटा नहीं है।
- आप केवल फॉर्मेट, पैटर्न और मैसेज के शब्द देखकर जोखिम बता सकते हैं।
- आप 100%% नहीं बता सकते कि यह असली है या नकली, या खाता किस टाइप का है / कब खोला गया।

काम:
1. UPI फॉर्मेट और handle (जैसे @paytm, @oksbi, @okaxis) को देखें।
2. टेक्स्ट में अगर "gift account, verification account, settlement account, refund account, security account" जैसे शब्द हों तो HIGH RISK मानें।
3. HIGH / MEDIUM / LOW risk में से एक चुनें।
4. 1–2 साधारण हिन्दी लाइनों में बताएँ कि यह risk level क्यों है।
5. हमेशा चेतावनी शामिल करें: "पैसे भेजने से पहले 1930 या बैंक से बात कर के ही भरोसा करें।"

केवल छोटा हिन्दी जवाब दें।
`

const protectUPIMr = `
ही UPI ID किंवा पेमेंटची माहिती आहे: "%s".

तथ्य:
- तुमच्याकडे बँक / NPCI चे real‑time data नाही.
- तुम्ही फक्त फॉर्मॅट, pattern आणि मजकूरातील शब्द पाहून रिस्क सांगू शकता.
- खाते personal / company / gift आहे का, किंवा केव्हा उघडले हे सांगू शकत नाही.

काम:
1. UPI फॉर्मॅट आणि handle (उदा. @paytm, @oksbi, @okaxis) पाहा.
2. "gift account, verification account, settlement account, refund account, security account" असे शब्द आढळले तर HIGH RISK धरा.
3. HIGH / MEDIUM / LOW यापैकी रिस्क द्या.
4. 1–2 साध्या मराठी ओळींत कारण सांगा.
5. शेवटी नेहमी चेतावणी द्या: "पैसे पाठवण्यापूर्वी 1930 किंवा बँकेशी बोलून खात्री करा."

फक्त छोटा मराठी मेसेज द्या.
`

const protectUPIEn = `
This is a UPI ID or payment detail: "%s".

Facts:
- You do NOT have live bank/NPCI data.
- You can only judge by format, pattern and the wording in the message.
- You CANNOT see who owns the account, what type it is, or when it was opened.

Task:
1. Look at UPI format and handle (e.g. @paytm, @oksbi, @okaxis).
2. If the text contains phrases like "gift account, verification account, settlement account, refund account, security account", treat as HIGH RISK.
3. Decide risk: HIGH / MEDIUM / LOW.
4. In 1–2 simple English lines, explain why.
5. Always add: "Do not send money just based on messages/calls. Confirm with your bank or 1930 first."

Output only that short English message.
`

const protectDigitalHi = `
यह WhatsApp / कॉल का संदेश है:

"%s"

आपको DIGITAL ARREST scam पहचानना है, जहाँ धोखेबाज़ खुद को Police / CBI / Cyber Cell / FedEx / Customs बताते हैं और कहते हैं कि:
- कोई parcel पकड़ा गया है,
- पैसा laundering हो रहा है,
- arrest warrant है,
- KYC / Aadhaar में दिक्कत है,
और फिर victim को लम्बे video call पर रखते हैं और "security money" UPI से मँगवाते हैं।

काम:
1. HIGH / MEDIUM / LOW risk तय करें।
2. 1–2 लाइन साधारण हिन्दी में बताएं कि यह डिजिटल arrest scam जैसा क्यों लग रहा है (या नहीं)।
3. हमेशा चेतावनी दें: "ऐसे कॉल / वीडियो कॉल पर भरोसा न करें, खुद अपने स्थानीय थाना या 1930 पर कॉल कर के ही confirm करें।"

सिर्फ छोटा हिन्दी जवाब दें, extra explanation नहीं।
`

const protectDigitalMr = `
हा WhatsApp / कॉल मेसेज आहे:

"%s"

तुम्हाला DIGITAL ARREST scam ओळखायचा आहे, जिथे फसवे लोक स्वतःला Police / CBI / Cyber Cell / FedEx / Customs सांगतात आणि:
- parcel अडकलाय,
- money laundering,
- warrant,
- KYC समस्या,
असे बोलून व्हिक्टीमकडून UPI ने "security money" घेतात.

काम:
1. HIGH / MEDIUM / LOW रिस्क ठरवा.
2. 1–2 ओळींत साध्या मराठीत लिहा की हे डिजिटल arrest scam सारखे का वाटते (किंवा नाही).
3. नेहमी चेतावणी द्या: "अशा कॉल वर विश्वास ठेवू नका, स्वतः पोलीस स्टेशन किंवा 1930 वर फोन करून खात्री करा."

फक्त छोटा मराठी मेसेज द्या.
`

const protectDigitalEn = `
This is a WhatsApp / call script:

"%s"

You must detect DIGITAL ARREST scams in India, where fraudsters pretend to be Police/CBI/ED/Cyber Cell/FedEx/Customs, claim:
- A parcel is seized,
- Money laundering,
- An arrest warrant,
- KYC/Aadhaar problem,
and then keep the victim on video call and demand "security money" via UPI/bank.

Task:
1. Decide risk: HIGH / MEDIUM / LOW.
2. In 1–2 short lines of simple English, say why this looks like (or doesn't look like) a digital arrest scam.
3. Always warn: "Do not trust such calls/video calls. Verify by calling your local police station or 1930 yourself."

Output only that short message.
`

const warrantPrompt = `
You are analyzing a document that may be a fake "digital arrest" warrant in India.

Facts:
- Scammers send fake police/court warrants with logos, seals, FIR numbers, and demand "security deposit" or "video call compliance".
- You CANNOT check any government or police database.
- You can ONLY analyze: letterhead quality, spelling, language mix, formatting, and any suspicious demands (UPI payment, video call, threats).

Document type: Police warrant, court notice, or legal document (image/PDF).

%s
Task:
1. Look at letterhead design, spelling, grammar, Hindi/English mix, generic addressee ("Dear customer"), missing case details, contact via WhatsApp/Telegram, demand for UPI "security deposit".
2. Decide risk: HIGH / MEDIUM / LOW that this is a scam document.
3. In 2–3 short lines (%s), explain why this looks suspicious (or legitimate).
4. Extract any visible text, names, FIR numbers, phone numbers, UPI IDs, or bank details you see in the document.
5. Always end with: "Final verification must be done only by local police or 1930; this app cannot see government records."

Return strict JSON (no extra text):
{
  "risk": "high | medium | low",
  "message": "explanation for the user in their language",
  "extracted_text": "full plain text from the document",
  "entities": {
    "names": [],
    "fir_numbers": [],
    "phone_numbers": [],
    "upi_ids": [],
    "accounts": [],
    "stations": []
  }
}
`

const qrVisualPrompt = `
You are analyzing a UPI QR code image for visual tampering signs.

QR decoded data: %s
UPI ID: %s
Merchant: %s

Task:
1. Look at the QR code image for signs of tampering: overlay sticker edges, pixel artifacts, mismatched text/logo around the QR, poor print quality, multiple layers visible.
2. Check if the merchant name/logo around the QR matches the decoded UPI ID handle.
3. Decide: NORMAL / SUSPICIOUS / HIGH_RISK.
4. In 2–3 short lines (%s), explain what you see.

Return only plain text (not JSON), no more than 3 sentences.
`

const baitPrompt = `
You are "Ramesh Uncle", a 68-year-old retired bank officer from Mumbai.
You speak simple Hindi-English mix, are curious but confused about UPI and apps.
Your job is:
- Keep the scammer engaged.
- Extract their payment and contact details.
- NEVER send money or share any real personal data.

Use short, 1–2 sentence replies, like an elderly uncle:
- "Okk beta, thoda dheere samjhao."
- "Mera phone hang ho gaya, firse bhejo."

Return ONLY valid JSON:

{
  "reply_to_scammer": "your message as Ramesh Uncle",
  "extracted_intel": {
    "upi_ids": ["..."],
    "phone_numbers": ["..."],
    "links": ["..."],
    "bank_accounts": ["..."]
  },
  "confidence_scam": "low | medium | high",
  "notes_for_law_enforcement": "1–2 short lines explaining why this looks like a scam and what intel you saw."
}

If some field is empty, use [].

Scammer message: "%s"
`
