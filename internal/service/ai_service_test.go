package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/service"
)

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newAIService(baseURL string) *service.AIService {
	return service.NewAIService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestGenerateNoteParsesJSON(t *testing.T) {
	srv := chatServer(t, "```json\n{\"title\": \"Sorting\", \"content\": \"# Sorting\\nquicksort\", \"tags\": \"algorithms\"}\n```")
	defer srv.Close()

	note, err := newAIService(srv.URL).GenerateNote("Sorting", "")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if note.Title != "Sorting" || note.Tags != "algorithms" {
		t.Fatalf("unexpected note: %+v", note)
	}
}

func TestGenerateNoteFallsBackOnUnparseableOutput(t *testing.T) {
	srv := chatServer(t, "Sorting is the process of ordering items.")
	defer srv.Close()

	note, err := newAIService(srv.URL).GenerateNote("Sorting", "")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if note.Title != "Sorting" {
		t.Fatalf("fallback should use the topic as title, got %q", note.Title)
	}
	if note.Content == "" {
		t.Fatalf("fallback should keep the raw model output")
	}
}

func TestGenerateFlashcards(t *testing.T) {
	srv := chatServer(t, `[{"front":"TCP layer?","back":"Transport"},{"front":"HTTP port?","back":"80"}]`)
	defer srv.Close()

	cards, err := newAIService(srv.URL).GenerateFlashcards("Networking", "", 2)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(cards) != 2 || cards[0].Back != "Transport" {
		t.Fatalf("unexpected cards: %+v", cards)
	}
}

func TestGenerateFlashcardsFallback(t *testing.T) {
	srv := chatServer(t, "not json at all")
	defer srv.Close()

	cards, err := newAIService(srv.URL).GenerateFlashcards("Networking", "", 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Front != "Networking" {
		t.Fatalf("expected single fallback card, got %+v", cards)
	}
}

func TestChatSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	if _, err := newAIService(srv.URL).Chat("sys", "user"); err == nil {
		t.Fatalf("expected error from non-200 response")
	}
}
