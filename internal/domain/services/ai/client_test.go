package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elderguard/internal/config"
	"elderguard/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) (*GeminiClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewGeminiClient(config.GeminiConfig{
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		BaseURL:    srv.URL,
		MaxRetries: retries,
	}, logger.NewDevelopment())

	return client, srv
}

func candidateResponse(text string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	})
	return body
}

func TestGenerate(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write(candidateResponse("model says hi"))
	}, 0)

	text, err := client.Generate(context.Background(), "hello model", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "model says hi" {
		t.Errorf("text = %q, want %q", text, "model says hi")
	}
	if gotPath != "/models/gemini-2.0-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	if gotBody.Contents[0].Parts[0].Text != "hello model" {
		t.Errorf("prompt = %q", gotBody.Contents[0].Parts[0].Text)
	}
}

func TestGenerateInlineData(t *testing.T) {
	var gotBody geminiRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(candidateResponse("ok"))
	}, 0)

	raw := []byte{0xFF, 0xD8, 0xFF}
	_, err := client.Generate(context.Background(), "describe this", &InlineData{
		MIMEType: "image/jpeg",
		Data:     raw,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	parts := gotBody.Contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(parts))
	}
	inline := parts[1].InlineData
	if inline == nil {
		t.Fatal("second part has no inline data")
	}
	if inline.MIMEType != "image/jpeg" {
		t.Errorf("mime type = %q", inline.MIMEType)
	}
	if inline.Data != base64.StdEncoding.EncodeToString(raw) {
		t.Errorf("inline data not base64 of original bytes")
	}
}

func TestGenerateMultiPartCandidate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": "first "}, {"text": "second"}},
					},
				},
			},
		})
		w.Write(body)
	}, 0)

	text, err := client.Generate(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "first second" {
		t.Errorf("text = %q, want concatenated parts", text)
	}
}

func TestGenerateAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}, 0)

	_, err := client.Generate(context.Background(), "p", nil)
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want status code included", err)
	}
}

func TestGenerateErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":400,"message":"invalid argument"}}`))
	}, 0)

	_, err := client.Generate(context.Background(), "p", nil)
	if err == nil {
		t.Fatal("expected error for error payload")
	}
	if !strings.Contains(err.Error(), "invalid argument") {
		t.Errorf("error = %v, want API message included", err)
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}, 0)

	_, err := client.Generate(context.Background(), "p", nil)
	if err == nil {
		t.Fatal("expected error for empty candidate list")
	}
}

func TestGenerateRetries(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(candidateResponse("recovered"))
	}, 2)

	text, err := client.Generate(context.Background(), "p", nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "recovered" {
		t.Errorf("text = %q", text)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}
