package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/talkincode/inventorypro/config"
)

// chatStub mimics an OpenAI-compatible chat completion endpoint.
func chatStub(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]string{"role": "assistant", "content": content},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func stubConfig(url string) config.AssistantConfig {
	return config.AssistantConfig{
		Endpoint: url + "/v1",
		APIKey:   "test-key",
		Model:    "gpt-4o-mini",
		Timeout:  5 * time.Second,
	}
}

func TestMissingKeyShortCircuits(t *testing.T) {
	a := NewOpenAIAssistant(config.AssistantConfig{Model: "gpt-4o-mini"})

	got := a.GenerateDescription(context.Background(), "Vitamin C Serum", "skincare")
	assert.Equal(t, MsgMissingKey, got)

	got = a.AnalyzeStockAction(context.Background(), "Vitamin C Serum", 3, "rising")
	assert.Equal(t, MsgAdviceDisabled, got)
}

func TestGenerateDescription(t *testing.T) {
	ts := chatStub(t, http.StatusOK, "A brightening serum your customers will love.")
	defer ts.Close()

	a := NewOpenAIAssistant(stubConfig(ts.URL))
	got := a.GenerateDescription(context.Background(), "Vitamin C Serum", "skincare, glow")
	assert.Equal(t, "A brightening serum your customers will love.", got)
}

func TestGenerateDescriptionEmptyResult(t *testing.T) {
	ts := chatStub(t, http.StatusOK, "")
	defer ts.Close()

	a := NewOpenAIAssistant(stubConfig(ts.URL))
	got := a.GenerateDescription(context.Background(), "Vitamin C Serum", "")
	assert.Equal(t, MsgEmptyResult, got)
}

func TestGenerateDescriptionUpstreamFailure(t *testing.T) {
	ts := chatStub(t, http.StatusInternalServerError, "")
	defer ts.Close()

	a := NewOpenAIAssistant(stubConfig(ts.URL))
	got := a.GenerateDescription(context.Background(), "Vitamin C Serum", "")
	assert.Equal(t, MsgGenerateFailed, got)
}

func TestAnalyzeStockAction(t *testing.T) {
	ts := chatStub(t, http.StatusOK, "Restock 20 units within one week to meet demand.")
	defer ts.Close()

	a := NewOpenAIAssistant(stubConfig(ts.URL))
	got := a.AnalyzeStockAction(context.Background(), "Vitamin C Serum", 3, "rising")
	assert.Equal(t, "Restock 20 units within one week to meet demand.", got)
}

func TestAnalyzeStockActionUpstreamFailure(t *testing.T) {
	ts := chatStub(t, http.StatusBadGateway, "")
	defer ts.Close()

	a := NewOpenAIAssistant(stubConfig(ts.URL))
	got := a.AnalyzeStockAction(context.Background(), "Vitamin C Serum", 3, "falling")
	assert.Equal(t, MsgAdviceFailed, got)
}
