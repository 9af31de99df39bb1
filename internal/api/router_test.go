package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"elderguard/internal/api/handlers"
	"elderguard/internal/config"
	"elderguard/internal/domain/models"
	"elderguard/internal/domain/services"
	"elderguard/internal/domain/services/ai"
	"elderguard/pkg/logger"
)

type stubDecoder struct {
	payload string
	err     error
}

func (d *stubDecoder) Decode([]byte) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.payload, nil
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		},
		Upload: config.UploadConfig{MaxSizeBytes: 10 * 1024 * 1024},
	}
}

func newTestServer(t *testing.T, provider ai.Provider, decoder *stubDecoder) *httptest.Server {
	t.Helper()

	log := logger.NewDefault()
	cfg := testConfig()

	store := services.NewMemorySessionStore(time.Hour, 0, log)
	t.Cleanup(store.Close)

	extractor := services.NewIntelExtractor(log)
	analyzer := services.NewAccountContextAnalyzer()

	h := handlers.NewHandlers(handlers.Dependencies{
		Protect:  services.NewProtectService(extractor, analyzer, provider, store, log),
		Warrant:  services.NewWarrantService(provider, extractor, store, log),
		QR:       services.NewQRService(decoder, provider, extractor, store, log),
		Bait:     services.NewBaitService(provider, extractor, store, log),
		Report:   services.NewReportService(store, nil, log),
		Sessions: store,
		Config:   cfg,
		Logger:   log,
	})

	srv := httptest.NewServer(NewRouter(*cfg, h, nil, log).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d", resp.StatusCode)
	}

	var sess models.Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return sess.ID.String()
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, &ai.FakeProvider{}, &stubDecoder{})

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d", path, resp.StatusCode)
		}
	}
}

func TestTextScanFlow(t *testing.T) {
	fake := &ai.FakeProvider{ResponseText: "Beta, do not pay. This is a scam."}
	srv := newTestServer(t, fake, &stubDecoder{})

	id := createSession(t, srv)

	body := `{"text": "send to scam@ybl gift account 123456789012", "language": "en", "case_type": "upi"}`
	resp, err := http.Post(srv.URL+"/api/v1/sessions/"+id+"/scan/text", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scan status = %d", resp.StatusCode)
	}

	var result models.TextScanResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.ModelMessage != fake.ResponseText {
		t.Errorf("model message = %q", result.ModelMessage)
	}
	if result.AccountContext.Risk != models.RiskHigh {
		t.Errorf("account risk = %s", result.AccountContext.Risk)
	}

	// Session intel now serves through the intel endpoint
	intelResp, err := http.Get(srv.URL + "/api/v1/sessions/" + id + "/intel")
	if err != nil {
		t.Fatal(err)
	}
	defer intelResp.Body.Close()

	var sess models.Session
	if err := json.NewDecoder(intelResp.Body).Decode(&sess); err != nil {
		t.Fatal(err)
	}
	if len(sess.Intel.UPIIDs) != 1 || sess.Intel.UPIIDs[0] != "scam@ybl" {
		t.Errorf("session intel = %v", sess.Intel)
	}
}

func TestTextScanValidation(t *testing.T) {
	srv := newTestServer(t, &ai.FakeProvider{ResponseText: "ok"}, &stubDecoder{})
	id := createSession(t, srv)

	cases := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing text", "/api/v1/sessions/" + id + "/scan/text", `{"language": "en"}`, http.StatusBadRequest},
		{"invalid body", "/api/v1/sessions/" + id + "/scan/text", `not json`, http.StatusBadRequest},
		{"bad session id", "/api/v1/sessions/not-a-uuid/scan/text", `{"text": "hi"}`, http.StatusBadRequest},
		{"unknown session", "/api/v1/sessions/00000000-0000-0000-0000-000000000001/scan/text", `{"text": "hi"}`, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tc.path, "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestQRScanFlow(t *testing.T) {
	fake := &ai.FakeProvider{ResponseText: "The code looks clean."}
	decoder := &stubDecoder{payload: "upi://pay?pa=merchant@okaxis&pn=Ramesh%20Stores"}
	srv := newTestServer(t, fake, decoder)

	id := createSession(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "qr.png")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("png-bytes"))
	mw.WriteField("language", "en")
	mw.Close()

	resp, err := http.Post(srv.URL+"/api/v1/sessions/"+id+"/scan/qr", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("qr scan status = %d", resp.StatusCode)
	}

	var analysis models.QRAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatal(err)
	}
	if !analysis.Decoded {
		t.Error("qr_decoded = false")
	}
	if analysis.Risk != models.RiskLow {
		t.Errorf("risk = %s", analysis.Risk)
	}
}

func TestWarrantScanModelFailure(t *testing.T) {
	srv := newTestServer(t, &ai.FakeProvider{Err: http.ErrHandlerTimeout}, &stubDecoder{})
	id := createSession(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "warrant.pdf")
	fw.Write([]byte("%PDF-1.4"))
	mw.WriteField("language", "en")
	mw.Close()

	resp, err := http.Post(srv.URL+"/api/v1/sessions/"+id+"/scan/warrant", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}

	var analysis models.WarrantAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatal(err)
	}
	if analysis.Risk != models.RiskUnknown {
		t.Errorf("risk = %s, want unknown", analysis.Risk)
	}
	if !strings.Contains(analysis.Message, "Error analyzing warrant") {
		t.Errorf("message = %q", analysis.Message)
	}
}

func TestReportFlow(t *testing.T) {
	srv := newTestServer(t, &ai.FakeProvider{ResponseText: "ok"}, &stubDecoder{})
	id := createSession(t, srv)

	resp, err := http.Post(srv.URL+"/api/v1/sessions/"+id+"/report", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report status = %d", resp.StatusCode)
	}

	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out["report"], "ElderGuard Scam Report") {
		t.Errorf("report = %q", out["report"])
	}
}

func TestHandleRegistry(t *testing.T) {
	srv := newTestServer(t, &ai.FakeProvider{}, &stubDecoder{})

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/handles")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		var out struct {
			Handles []models.HandleInfo `json:"handles"`
			Count   int                 `json:"count"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
		if out.Count != len(models.KnownUPIHandles) {
			t.Errorf("count = %d, want %d", out.Count, len(models.KnownUPIHandles))
		}
	})

	t.Run("get known suffix", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/handles/ybl")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		var info models.HandleInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			t.Fatal(err)
		}
		if info.PSP != "Yes Bank UPI handle" {
			t.Errorf("psp = %q", info.PSP)
		}
	})

	t.Run("unknown suffix", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/handles/nosuchpsp")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestBaitFlow(t *testing.T) {
	fake := &ai.FakeProvider{ResponseText: `{"reply_to_scammer": "Beta, OTP kya hota hai?", "extracted_intel": {"upi_ids": [], "phone_numbers": [], "links": [], "bank_accounts": []}, "confidence_scam": "medium", "notes_for_law_enforcement": "pressure tactics"}`}
	srv := newTestServer(t, fake, &stubDecoder{})
	id := createSession(t, srv)

	body := `{"message": "Uncle OTP batao jaldi"}`
	resp, err := http.Post(srv.URL+"/api/v1/sessions/"+id+"/bait", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bait status = %d", resp.StatusCode)
	}

	var result models.BaitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Reply != "Beta, OTP kya hota hai?" {
		t.Errorf("reply = %q", result.Reply)
	}
	if result.ConfidenceScam != "medium" {
		t.Errorf("confidence = %q", result.ConfidenceScam)
	}
}
