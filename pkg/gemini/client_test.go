package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assistente-agenda/pkg/gemini"
)

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want default %q", client.Model(), gemini.DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			SystemInstruction *struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"system_instruction"`
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
			return
		case "check_system":
			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be brief" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [{ "text": "mocked " }, { "text": "response" }],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 3, "candidatesTokenCount": 2, "totalTokenCount": 5}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		Model:  "test-model",
		APIURL: ts.URL + "/",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	userText := func(text string) *gemini.Request {
		return &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}},
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), userText("Hello world"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 2 || resp.Content.Parts[1].Text != "response" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.FinishReason != "STOP" {
			t.Errorf("FinishReason = %q", resp.FinishReason)
		}
		if resp.Usage.TotalTokens != 5 {
			t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("System Instruction", func(t *testing.T) {
		req := userText("check_system")
		req.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}}
		req.Temperature = 0.2
		if _, err := client.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), userText("no_candidates"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 0 {
			t.Errorf("expected no parts, got %+v", resp.Content.Parts)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), userText("cause_500")); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})
}
