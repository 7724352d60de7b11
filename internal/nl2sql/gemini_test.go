package nl2sql

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/querygate/config"
)

func newGeminiTestServer(t *testing.T, status int, body string, gotPath *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		assert.Equal(t, "gm-test", r.Header.Get("x-goog-api-key"))
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGeminiGeneratorReturnsCompletionVerbatim(t *testing.T) {
	var path string
	server := newGeminiTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"  SELECT * FROM departments;\n"}]},"finishReason":"STOP"}]}`,
		&path)

	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "gm-test", BaseURL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, gen.Model())

	got, err := gen.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "  SELECT * FROM departments;\n", got)
	assert.Contains(t, path, "models/gemini-1.5-flash-latest:generateContent")
}

func TestGeminiGeneratorUsesConfiguredModel(t *testing.T) {
	var path string
	server := newGeminiTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"SELECT 1"}]},"finishReason":"MAX_TOKENS"}]}`,
		&path)

	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "gm-test", Model: "gemini-2.0-flash", BaseURL: server.URL})
	require.NoError(t, err)

	got, err := gen.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", got)
	assert.Contains(t, path, "models/gemini-2.0-flash:generateContent")
}

func TestGeminiGeneratorErrors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"upstream error status", http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, ErrEmptyCompletion},
		{"safety stop", http.StatusOK, `{"candidates":[{"finishReason":"SAFETY","safetyRatings":[{"category":"HARM_CATEGORY_DANGEROUS_CONTENT","probability":"HIGH","blocked":true}]}]}`, ErrBlockedCompletion},
		{"recitation stop", http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"SELECT"}]},"finishReason":"RECITATION"}]}`, ErrBlockedCompletion},
		{"blocked prompt", http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, ErrBlockedCompletion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newGeminiTestServer(t, tc.status, tc.body, nil)

			gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "gm-test", BaseURL: server.URL})
			require.NoError(t, err)

			got, err := gen.Generate(context.Background(), "the prompt")
			require.Error(t, err)
			assert.Empty(t, got)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestNewGeminiGeneratorRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "  "})
	assert.ErrorContains(t, err, "api key")

	_, err = NewGenerator(context.Background(), config.LLMConfig{Provider: config.ProviderGemini})
	assert.Error(t, err)
}
