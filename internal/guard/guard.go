// ABOUTME: Safety Guard validating natural-language prompts and generated SQL
// ABOUTME: Both checks are pure and fail closed; ambiguity means rejection
package guard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/models"
	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/policy"
)

// fromTable extracts every table name following a FROM token. This is a
// surface-text extraction, not a parser; the safe shapes constrain structure
// enough that it cannot be tricked by subqueries.
var fromTable = regexp.MustCompile(`(?i)\bFROM\s+([A-Za-z_][A-Za-z0-9_]*)`)

// Guard validates prompts and SQL against the security policy
type Guard struct {
	policy *policy.Policy
}

// New creates a Guard bound to the given policy
func New(p *policy.Policy) *Guard {
	return &Guard{policy: p}
}

// CheckPrompt validates natural-language text before any generation happens.
// Rejections name the violated category; the first malicious match wins.
func (g *Guard) CheckPrompt(prompt string) models.SafetyVerdict {
	if strings.TrimSpace(prompt) == "" {
		return models.Unsafe("empty prompt")
	}

	if ok, pattern := policy.MatchAny(g.policy.MaliciousPrompts, prompt); ok {
		return models.Unsafe(fmt.Sprintf("malicious pattern detected: %s", pattern))
	}

	// Absence of a positive query signal is itself disqualifying. This
	// rejects harmless rephrasings that avoid the keyword families; that
	// precision/recall tradeoff is deliberate.
	if ok, _ := policy.MatchAny(g.policy.SQLIndicators, prompt); !ok {
		return models.Unsafe("prompt contains no recognized query intent")
	}

	if utf8.RuneCountInString(prompt) > g.policy.MaxPromptLen {
		return models.Unsafe(fmt.Sprintf("prompt exceeds %d characters", g.policy.MaxPromptLen))
	}

	return models.Safe("prompt is safe")
}

// CheckSQL validates a generated statement before execution: SELECT-only,
// no dangerous tokens, allow-listed tables, and one of the approved shapes.
func (g *Guard) CheckSQL(statement string) models.SafetyVerdict {
	trimmed := strings.TrimSpace(statement)
	if trimmed == "" {
		return models.Unsafe("empty statement")
	}

	// Normalize for case-insensitive keyword testing
	normalized := strings.Join(strings.Fields(trimmed), " ")
	upper := strings.ToUpper(normalized)

	if !strings.HasPrefix(upper, "SELECT ") && upper != "SELECT" {
		return models.Unsafe("only SELECT statements are allowed")
	}

	if ok, pattern := policy.MatchAny(g.policy.DangerousTokens, upper); ok {
		return models.Unsafe(fmt.Sprintf("dangerous token detected: %s", pattern))
	}

	for _, match := range fromTable.FindAllStringSubmatch(normalized, -1) {
		table := strings.ToLower(match[1])
		if !g.policy.AllowedTables[table] {
			return models.Unsafe(fmt.Sprintf("unauthorized table: %s", table))
		}
	}

	for _, shape := range g.policy.SafeShapes {
		if shape.MatchString(upper) {
			return models.Safe("statement conforms to policy")
		}
	}

	return models.Unsafe("statement does not match any approved shape")
}

// Sanitize escapes embedded quotes by doubling and strips statement
// separators and comment markers. Applied to user text before it is
// interpolated into a generation prompt, as defense in depth ahead of the
// guard checks.
func (g *Guard) Sanitize(value string) string {
	replacer := strings.NewReplacer(
		"'", "''",
		`"`, `""`,
		";", "",
		"--", "",
		"/*", "",
		"*/", "",
	)
	return replacer.Replace(value)
}
