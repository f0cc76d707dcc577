// ABOUTME: Tests for the advisory critique generator
// ABOUTME: Verifies prompt content and failure reporting
package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/logging"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

type fakeGateway struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGateway) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestCritique(t *testing.T) {
	gw := &fakeGateway{response: "1. Success: yes\n2. Performance adequate: yes\n3. Add a LIMIT clause"}
	gen := New(gw, logging.Nop())

	outcome := models.ExecutionOutcome{
		FormattedText: "some table",
		ExecutionTime: 12 * time.Millisecond,
		RowCount:      3,
	}

	critique, err := gen.Critique(context.Background(), outcome)
	if err != nil {
		t.Fatalf("Critique() error = %v", err)
	}
	if critique == "" {
		t.Error("Critique() returned empty text")
	}

	// The prompt must carry the outcome's measurements
	if !strings.Contains(gw.lastPrompt, "12ms") {
		t.Errorf("prompt should mention execution time, got:\n%s", gw.lastPrompt)
	}
	if !strings.Contains(gw.lastPrompt, "Rows returned: 3") {
		t.Errorf("prompt should mention the row count, got:\n%s", gw.lastPrompt)
	}
}

func TestCritiqueGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("timeout")}
	gen := New(gw, logging.Nop())

	_, err := gen.Critique(context.Background(), models.ExecutionOutcome{})
	if err == nil {
		t.Error("Critique() should report gateway failures to the caller")
	}
}
