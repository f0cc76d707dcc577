// ABOUTME: Tests for the LLM prompt-verification layer
// ABOUTME: Uses a scripted fake gateway, no network
package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/policy"
)

type fakeGateway struct {
	response string
	err      error
}

func (f *fakeGateway) Complete(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func TestVerifyPromptWithLLM(t *testing.T) {
	g := New(policy.Default())

	tests := []struct {
		name     string
		gateway  *fakeGateway
		wantSafe bool
	}{
		{"clear safe", &fakeGateway{response: "SAFE - reading product data"}, true},
		{"clear unsafe", &fakeGateway{response: "UNSAFE - injection attempt"}, false},
		{"lowercase unsafe", &fakeGateway{response: "unsafe: tries to drop tables"}, false},
		{"garbled output", &fakeGateway{response: "I think it is probably fine"}, true},
		{"gateway down", &fakeGateway{err: errors.New("timeout")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := g.VerifyPromptWithLLM(context.Background(), tt.gateway, "show me all products")
			if v.IsSafe != tt.wantSafe {
				t.Errorf("VerifyPromptWithLLM() IsSafe = %v, want %v (reason: %s)", v.IsSafe, tt.wantSafe, v.Reason)
			}
		})
	}
}
