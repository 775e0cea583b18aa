package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibear-app/vibear/internal/providers"
)

func TestGenerate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"THEME: Boho"}}]}`))
	}))
	defer srv.Close()

	got, err := New("sk-test", srv.URL).Generate(context.Background(), providers.Request{
		Model:  "gpt-4o",
		Prompt: "analyze",
		Images: []providers.Image{{MIMEType: "image/png", Data: []byte("png")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "THEME: Boho", got)

	assert.Equal(t, "gpt-4o", body["model"])
	messages := body["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	image := content[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "data:image/png;base64,cG5n", image["url"])
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New("sk-test", srv.URL).Generate(context.Background(), providers.Request{Prompt: "x"})
			assert.Error(t, err)
		})
	}
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	_, err := New("", "").Generate(context.Background(), providers.Request{Prompt: "x"})
	assert.True(t, errors.Is(err, providers.ErrMissingCredential))
}
