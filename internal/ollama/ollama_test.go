package ollama

import (
	"context"
	"encoding/json"
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
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"STYLE: Japandi"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Generate(context.Background(), providers.Request{
		Model:       "llava",
		Prompt:      "analyze",
		Temperature: 0.2,
		Images:      []providers.Image{{MIMEType: "image/jpeg", Data: []byte("jpg")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "STYLE: Japandi", got)

	assert.Equal(t, "llava", body["model"])
	assert.Equal(t, false, body["stream"])
	assert.Equal(t, []any{"anBn"}, body["images"])
}

func TestGenerateWithoutImagesOmitsField(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"sofa, lamp"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), providers.Request{Prompt: "keywords"})
	require.NoError(t, err)
	assert.NotContains(t, body, "images")
}

func TestGenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("model not found"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), providers.Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
