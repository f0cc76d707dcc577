// ABOUTME: Intent Router deciding SQL versus CHAT for incoming prompts
// ABOUTME: Regex fast path first, forced-choice LLM fallback, degrades to CHAT
package intent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/policy"
)

const classifyPromptTemplate = `Analyze the purpose of the following user message:
"%s"

There are only two options:
1. SQL: the user wants to perform a database query
2. CHAT: the user wants to chat

Answer with exactly one word: "SQL" or "CHAT".`

// Router classifies prompts. It never fails: an unreachable gateway
// degrades to CHAT, the safer non-executing path.
type Router struct {
	policy  *policy.Policy
	gateway llm.Gateway
	log     *zap.Logger
}

// NewRouter creates a Router
func NewRouter(p *policy.Policy, gateway llm.Gateway, log *zap.Logger) *Router {
	return &Router{policy: p, gateway: gateway, log: log}
}

// Classify decides whether the prompt wants a database query or conversation
func (r *Router) Classify(ctx context.Context, prompt string) models.IntentDecision {
	if strings.TrimSpace(prompt) == "" {
		return models.IntentDecision{Label: models.IntentChat, Rationale: "empty prompt"}
	}

	if ok, _ := policy.MatchAny(r.policy.SQLIndicators, prompt); ok {
		return models.IntentDecision{Label: models.IntentSQL, Rationale: "SQL query detected"}
	}

	if ok, _ := policy.MatchAny(r.policy.ChatIndicators, prompt); ok {
		return models.IntentDecision{Label: models.IntentChat, Rationale: "chat intent detected"}
	}

	return r.classifyWithLLM(ctx, prompt)
}

// classifyWithLLM asks the gateway a forced choice between the literal
// tokens SQL and CHAT; any other output defaults to CHAT.
func (r *Router) classifyWithLLM(ctx context.Context, prompt string) models.IntentDecision {
	response, err := r.gateway.Complete(ctx, fmt.Sprintf(classifyPromptTemplate, prompt))
	if err != nil {
		r.log.Warn("intent classification fell back to CHAT",
			zap.Error(err))
		return models.IntentDecision{Label: models.IntentChat, Rationale: "gateway unreachable, defaulting to chat"}
	}

	if strings.ToUpper(strings.TrimSpace(response)) == "SQL" {
		return models.IntentDecision{Label: models.IntentSQL, Rationale: "LLM analysis: SQL query detected"}
	}
	return models.IntentDecision{Label: models.IntentChat, Rationale: "LLM analysis: chat intent detected"}
}
