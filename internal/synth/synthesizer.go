// ABOUTME: SQL Synthesizer turning validated prompts into candidate statements
// ABOUTME: History reuse first, then schema-grounded generation, always re-checked
package synth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/guard"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/llm"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/storage/sqlite"
)

const generatePromptTemplate = `You are a SQL query generator for a SQLite database. Convert the user's request into a single valid SQL query.

RULES:
1. Output ONLY the SQL query - no explanations, no markdown code blocks, no comments
2. Use only SELECT statements - never INSERT, UPDATE, DELETE, DROP, or any other modifying statement
3. Query only the table shown in the schema below, using only its listed columns
4. Never use multiple statements, semicolons, comments, UNION, or JOIN
5. Allowed forms: a plain SELECT with optional WHERE, ORDER BY, and LIMIT, or a single COUNT/AVG/MAX/MIN/SUM aggregate with optional WHERE

DATABASE SCHEMA:
%s

USER REQUEST:
"%s"`

// Synthesizer builds candidate SQL statements for validated prompts
type Synthesizer struct {
	gateway llm.Gateway
	guard   *guard.Guard
	store   *sqlite.Storage
	log     *zap.Logger
}

// New creates a Synthesizer
func New(gateway llm.Gateway, g *guard.Guard, store *sqlite.Storage, log *zap.Logger) *Synthesizer {
	return &Synthesizer{gateway: gateway, guard: g, store: store, log: log}
}

// Synthesize produces a SQL candidate for a prompt that already passed
// CheckPrompt. Failures are data, not errors: a rejected or ungeneratable
// statement comes back as the breach-sentinel candidate so the caller can
// still render a result.
func (s *Synthesizer) Synthesize(ctx context.Context, prompt string) models.SQLCandidate {
	sanitized := s.guard.Sanitize(prompt)

	// History is a hint, not a trust boundary: reused SQL is re-validated
	if rec, err := s.store.FindSimilarQuery(sanitized); err != nil {
		s.log.Warn("history lookup failed", zap.Error(err))
	} else if rec != nil {
		if verdict := s.guard.CheckSQL(rec.GeneratedSQL); verdict.IsSafe {
			s.log.Info("reusing SQL from history",
				zap.String("natural_query", rec.NaturalQuery))
			return models.SQLCandidate{
				Statement:  rec.GeneratedSQL,
				Provenance: models.ProvenanceHistory,
			}
		}
	}

	schemaDesc, err := s.store.DescribeSchema()
	if err != nil {
		s.log.Error("schema description unavailable", zap.Error(err))
		return rejected()
	}

	completion, err := s.gateway.Complete(ctx, fmt.Sprintf(generatePromptTemplate, schemaDesc, sanitized))
	if err != nil {
		s.log.Error("SQL generation failed", zap.Error(err))
		return rejected()
	}

	statement := CleanCompletion(completion)

	if verdict := s.guard.CheckSQL(statement); !verdict.IsSafe {
		s.log.Warn("generated SQL rejected",
			zap.String("statement", statement),
			zap.String("reason", verdict.Reason))
		return rejected()
	}

	if err := s.store.RecordQuery(sanitized, statement, ""); err != nil {
		s.log.Warn("failed to record query history", zap.Error(err))
	}

	return models.SQLCandidate{
		Statement:  statement,
		Provenance: models.ProvenanceSynthesized,
	}
}

func rejected() models.SQLCandidate {
	return models.SQLCandidate{
		Statement:  models.BreachSentinel,
		Provenance: models.ProvenanceRejected,
	}
}

// CleanCompletion strips markdown code fences and trailing statement
// separators from a raw model completion.
func CleanCompletion(completion string) string {
	text := strings.TrimSpace(completion)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```sql")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ";")
	return strings.TrimSpace(text)
}
