// ABOUTME: Tests for intent classification
// ABOUTME: Pattern fast path, LLM fallback parsing, and CHAT degradation
package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/logging"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/policy"
)

type fakeGateway struct {
	response string
	err      error
	calls    int
}

func (f *fakeGateway) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func newRouter(gw *fakeGateway) *Router {
	return NewRouter(policy.Default(), gw, logging.Nop())
}

func TestClassifyEmptyPrompt(t *testing.T) {
	gw := &fakeGateway{}
	r := newRouter(gw)

	for _, prompt := range []string{"", "   ", "\n"} {
		dec := r.Classify(context.Background(), prompt)
		if dec.Label != models.IntentChat {
			t.Errorf("Classify(%q) = %v, want CHAT", prompt, dec.Label)
		}
		if dec.Rationale != "empty prompt" {
			t.Errorf("Rationale = %q, want empty prompt", dec.Rationale)
		}
	}
	if gw.calls != 0 {
		t.Errorf("gateway calls = %d, want 0 for empty prompts", gw.calls)
	}
}

func TestClassifySQLFastPath(t *testing.T) {
	gw := &fakeGateway{response: "CHAT"} // must not be consulted
	r := newRouter(gw)

	prompts := []string{
		"show me all products",
		"how many items do we have",
		"sort products by price",
		"what is the highest price",
		"query the database",
	}
	for _, prompt := range prompts {
		dec := r.Classify(context.Background(), prompt)
		if dec.Label != models.IntentSQL {
			t.Errorf("Classify(%q) = %v, want SQL", prompt, dec.Label)
		}
	}
	if gw.calls != 0 {
		t.Errorf("gateway calls = %d, want 0 for pattern matches", gw.calls)
	}
}

func TestClassifyChatFastPath(t *testing.T) {
	gw := &fakeGateway{response: "SQL"} // must not be consulted
	r := newRouter(gw)

	prompts := []string{
		"hello, how are you",
		"thank you so much",
		"who are you",
		"let's have a conversation",
	}
	for _, prompt := range prompts {
		dec := r.Classify(context.Background(), prompt)
		if dec.Label != models.IntentChat {
			t.Errorf("Classify(%q) = %v, want CHAT", prompt, dec.Label)
		}
	}
	if gw.calls != 0 {
		t.Errorf("gateway calls = %d, want 0 for pattern matches", gw.calls)
	}
}

func TestClassifyLLMFallback(t *testing.T) {
	// No pattern family matches this phrasing, so the gateway decides
	prompt := "which item costs the least"

	tests := []struct {
		name    string
		gateway *fakeGateway
		want    models.IntentLabel
	}{
		{"llm says sql", &fakeGateway{response: "SQL"}, models.IntentSQL},
		{"llm says sql with noise", &fakeGateway{response: "  sql\n"}, models.IntentSQL},
		{"llm says chat", &fakeGateway{response: "CHAT"}, models.IntentChat},
		{"llm rambles", &fakeGateway{response: "The user appears to want SQL"}, models.IntentChat},
		{"llm unreachable", &fakeGateway{err: errors.New("connection refused")}, models.IntentChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(tt.gateway)
			dec := r.Classify(context.Background(), prompt)
			if dec.Label != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", prompt, dec.Label, tt.want)
			}
			if tt.gateway.calls != 1 {
				t.Errorf("gateway calls = %d, want 1", tt.gateway.calls)
			}
		})
	}
}
