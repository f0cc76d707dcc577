// ABOUTME: Pipeline Orchestrator sequencing intent, safety, synthesis, execution
// ABOUTME: Every path terminates in one of four well-formed display strings
package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/feedback"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/guard"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/intent"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/policy"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/sandbox"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/storage/sqlite"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/synth"
)

// DeflectionMessage is returned for conversational requests
const DeflectionMessage = "Please ask question relevant to a Db query."

// Agent wires the pipeline stages over one shared store and gateway
type Agent struct {
	store    *sqlite.Storage
	gateway  llm.Gateway
	router   *intent.Router
	guard    *guard.Guard
	synth    *synth.Synthesizer
	sandbox  *sandbox.Sandbox
	feedback *feedback.Generator
	log      *zap.Logger
}

// New assembles an Agent from its collaborators. The policy is built once
// here and shared read-only by every stage.
func New(store *sqlite.Storage, gateway llm.Gateway, log *zap.Logger) *Agent {
	p := policy.Default()
	g := guard.New(p)

	return &Agent{
		store:    store,
		gateway:  gateway,
		router:   intent.NewRouter(p, gateway, log),
		guard:    g,
		synth:    synth.New(gateway, g, store, log),
		sandbox:  sandbox.New(store, log),
		feedback: feedback.New(gateway, log),
		log:      log,
	}
}

// Run processes one natural-language request end to end and returns the
// display string. Nothing escapes as an error: deflection, safety rejection,
// breach sentinel, or execution text are the only outcomes.
func (a *Agent) Run(ctx context.Context, query string) string {
	decision := a.router.Classify(ctx, query)
	a.log.Info("intent classified",
		zap.String("label", string(decision.Label)),
		zap.String("rationale", decision.Rationale))

	if decision.Label == models.IntentChat {
		return DeflectionMessage
	}

	if verdict := a.guard.CheckPrompt(query); !verdict.IsSafe {
		a.audit(models.ErrorTypePromptRejected, query, verdict.Reason)
		return fmt.Sprintf("Failed security check: %s", verdict.Reason)
	}

	// Second opinion from the model; the regex gate above remains the hard gate
	if verdict := a.guard.VerifyPromptWithLLM(ctx, a.gateway, query); !verdict.IsSafe {
		a.audit(models.ErrorTypePromptRejected, query, verdict.Reason)
		return fmt.Sprintf("Failed security check: %s", verdict.Reason)
	}

	candidate := a.synth.Synthesize(ctx, query)
	if candidate.Rejected() {
		a.audit(models.ErrorTypeSecurityViolation, query, "generated SQL failed validation")
		return candidate.Statement
	}

	a.log.Info("executing statement",
		zap.String("statement", candidate.Statement),
		zap.String("provenance", string(candidate.Provenance)))

	outcome := a.sandbox.Execute(ctx, candidate.Statement)

	// Advisory only; absence of a critique never affects the result
	if critique, err := a.feedback.Critique(ctx, outcome); err != nil {
		a.log.Warn("critique unavailable", zap.Error(err))
	} else {
		a.log.Info("execution critique",
			zap.Duration("execution_time", outcome.ExecutionTime),
			zap.Int("row_count", outcome.RowCount),
			zap.String("critique", critique))
	}

	return outcome.FormattedText
}

// Close releases the store handle, logging and swallowing any failure
func (a *Agent) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("store close failed", zap.Error(err))
	}
}

func (a *Agent) audit(errorType, query, message string) {
	if err := a.store.RecordAudit(errorType, query, message); err != nil {
		a.log.Warn("failed to write audit record", zap.Error(err))
	}
}
