// ABOUTME: Feedback Generator producing an advisory critique of an execution
// ABOUTME: Output is logged and displayed, never gates or alters the result
package feedback

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

const critiquePromptTemplate = `Evaluate the following SQL query execution:

Execution time: %s
Rows returned: %d
Result:
%s

Provide a short structured evaluation:
1. Success (yes/no)
2. Performance adequate (yes/no)
3. One improvement suggestion`

// Generator asks the gateway to critique execution outcomes
type Generator struct {
	gateway llm.Gateway
	log     *zap.Logger
}

// New creates a Generator
func New(gateway llm.Gateway, log *zap.Logger) *Generator {
	return &Generator{gateway: gateway, log: log}
}

// Critique summarizes the outcome for the model and returns its evaluation.
// Callers treat failures as absence of feedback, nothing more.
func (g *Generator) Critique(ctx context.Context, outcome models.ExecutionOutcome) (string, error) {
	prompt := fmt.Sprintf(critiquePromptTemplate,
		outcome.ExecutionTime, outcome.RowCount, outcome.FormattedText)

	critique, err := g.gateway.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("critique generation failed: %w", err)
	}
	return critique, nil
}
