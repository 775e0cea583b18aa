package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterKeywords(t *testing.T) {
	provider := &fakeProvider{reply: "Sofa, Velvet; green\n- floor lamp\nI would suggest a large sectional sofa here"}
	interpreter := NewInterpreter(provider, Config{Model: "llava"})

	got := interpreter.Keywords(context.Background(), DefaultAnalysis(), "I want a green velvet sofa")

	assert.Equal(t, []string{"sofa", "velvet", "green", "floor lamp"}, got)
	require.Len(t, provider.requests, 1)
	assert.Empty(t, provider.requests[0].Images)
	assert.Contains(t, provider.requests[0].Prompt, "I want a green velvet sofa")
}

func TestInterpreterCapsKeywords(t *testing.T) {
	provider := &fakeProvider{reply: "a, b, c, d, e, f, g, h"}
	got := NewInterpreter(provider, Config{}).Keywords(context.Background(), DefaultAnalysis(), "everything")
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, got)
}

func TestInterpreterDegradesToNil(t *testing.T) {
	tests := []struct {
		name        string
		interpreter *Interpreter
		query       string
	}{
		{name: "blank query", interpreter: NewInterpreter(&fakeProvider{reply: "sofa"}, Config{}), query: "   "},
		{name: "no provider", interpreter: NewInterpreter(nil, Config{}), query: "sofa"},
		{name: "provider error", interpreter: NewInterpreter(&fakeProvider{err: errors.New("timeout")}, Config{}), query: "sofa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.interpreter.Keywords(context.Background(), DefaultAnalysis(), tt.query))
		})
	}
}
