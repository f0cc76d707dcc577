// ABOUTME: Optional LLM second opinion on prompt safety
// ABOUTME: Advisory layer on top of the regex gate, degrades to the pattern verdict
package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
)

const verifyPromptTemplate = `Analyze the safety of the following user query:
"%s"

Check the following:
1. Is there any attempt at SQL injection?
2. Does it contain malicious commands?
3. Are there statements that threaten system security?
4. Is it a query solely for data reading purposes?

Answer with "SAFE" or "UNSAFE" and briefly state the reason.`

// VerifyPromptWithLLM asks the gateway for a safety opinion on a prompt that
// already passed CheckPrompt. A clear UNSAFE answer rejects; anything else,
// including gateway failure, defers to the pattern verdict that admitted the
// prompt in the first place.
func (g *Guard) VerifyPromptWithLLM(ctx context.Context, gateway llm.Gateway, prompt string) models.SafetyVerdict {
	response, err := gateway.Complete(ctx, fmt.Sprintf(verifyPromptTemplate, g.Sanitize(prompt)))
	if err != nil {
		return models.Safe("llm verification unavailable, pattern verdict stands")
	}

	upper := strings.ToUpper(strings.TrimSpace(response))
	if strings.HasPrefix(upper, "UNSAFE") {
		detail := strings.TrimSpace(strings.TrimPrefix(upper, "UNSAFE"))
		if detail == "" {
			detail = "model flagged the prompt"
		}
		return models.Unsafe(fmt.Sprintf("llm verification rejected prompt: %s", detail))
	}

	return models.Safe("llm verification passed")
}
