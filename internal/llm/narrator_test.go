// internal/llm/narrator_test.go

package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alphawell/internal/forecast"
	"alphawell/internal/llm"
)

func TestNewRequiresKey(t *testing.T) {
	_, err := llm.New(llm.Config{})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.Messages) == 2 {
			prompt = req.Messages[1].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": "  The well is high risk.  "},
			}},
		})
	}))
	defer srv.Close()

	n, err := llm.New(llm.Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", n.Model())

	res := forecast.Run(forecast.DefaultInputs())
	out, err := n.Summarize(context.Background(), forecast.DefaultWellParameters(), *res.KPIs)
	require.NoError(t, err)
	assert.Equal(t, "The well is high risk.", out)
	assert.Contains(t, prompt, "Verdict: High Risk")
	assert.Contains(t, prompt, "Payback: not within horizon")
}
