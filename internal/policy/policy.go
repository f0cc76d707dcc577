// ABOUTME: Policy is the process-wide immutable security configuration
// ABOUTME: Compiled regex sets and allow-lists shared read-only across requests
package policy

import "regexp"

// Policy holds every pattern and allow-list the pipeline consults. It is
// built once at startup and never mutated; all fields are treated as
// read-only by consumers.
type Policy struct {
	// SQLIndicators are positive signals that a prompt wants a database query
	SQLIndicators []*regexp.Regexp
	// ChatIndicators are signals that a prompt is conversational
	ChatIndicators []*regexp.Regexp
	// MaliciousPrompts reject natural-language text before any generation
	MaliciousPrompts []*regexp.Regexp
	// DangerousTokens reject generated SQL; matched against the
	// uppercase-normalized statement
	DangerousTokens []*regexp.Regexp
	// SafeShapes are the only statement templates allowed to execute,
	// keyed by shape name for reporting
	SafeShapes map[string]*regexp.Regexp
	// AllowedTables is the set of relations generated SQL may reference
	AllowedTables map[string]bool
	// AllowedColumns lists the permitted columns per allowed table
	AllowedColumns map[string][]string
	// MaxPromptLen is the longest natural-language prompt accepted
	MaxPromptLen int
}

// whereClause is the optional condition fragment shared by the safe shapes.
// Identifiers, comparison operators, and numeric or single-quoted literals only.
const whereClause = `(?:\s+WHERE\s+[\w\s><=.']+)?`

// Default builds the policy for the product-catalog deployment: one table,
// four columns, read-only aggregate and select shapes.
func Default() *Policy {
	return &Policy{
		SQLIndicators: compileAll(
			`(?i)\b(show|list|find|search|sort)\b`,
			`(?i)\b(products?|stock|price)\b`,
			`(?i)(how many|total|average)`,
			`(?i)\b(sql|query|database)\b`,
			`(?i)\b(highest|lowest|maximum|minimum|most expensive|cheapest)\b`,
		),
		ChatIndicators: compileAll(
			`(?i)\b(hello|hi|hey|how are you)\b`,
			`(?i)\b(chat|talk|conversation)\b`,
			`(?i)(what are you doing|who are you)`,
			`(?i)(thank you|thanks)`,
		),
		MaliciousPrompts: compileAll(
			`(?i)(drop|delete|truncate|alter)\s+table`,
			`(?i)system\s+command`,
			`(?i)\b(hack|exploit|attack)\b`,
			`(?i)(union\s+select|join\s+select)`,
			`(?i)(--|;|/\*|\*/)`,
			`(?i)(xp_cmdshell|exec\s+sp)`,
			`(?i)(insert\s+into|update\s+set)`,
			`(?i)\b(password|username|credential)\b`,
			`(?i)\b(grant|revoke|permission)\b`,
			`(?i)\b(backup|restore|dump)\b`,
		),
		DangerousTokens: compileAll(
			`;`,
			`--`,
			`/\*.*?\*/`,
			`\bXP_\w+`,
			`\bEXEC\b`,
			`\bUNION\b`,
			`\bDROP\b`,
			`\bDELETE\b`,
			`\bUPDATE\b`,
			`\bALTER\b`,
			`\bTRUNCATE\b`,
			`\bINSERT\b`,
			`\bGRANT\b`,
			`\bREVOKE\b`,
			`\bSYSTEM\b`,
			`INTO\s+(OUTFILE|DUMPFILE)`,
		),
		SafeShapes: map[string]*regexp.Regexp{
			"SELECT": regexp.MustCompile(`^SELECT\s+[\w\s,.()*]+\s+FROM\s+\w+` + whereClause +
				`(?:\s+ORDER\s+BY\s+[\w\s,]+)?(?:\s+LIMIT\s+\d+)?$`),
			"COUNT": regexp.MustCompile(`^SELECT\s+COUNT\s*\(\s*\*\s*\)\s+FROM\s+\w+` + whereClause + `$`),
			"AVG":   aggregateShape("AVG"),
			"MAX":   aggregateShape("MAX"),
			"MIN":   aggregateShape("MIN"),
			"SUM":   aggregateShape("SUM"),
		},
		AllowedTables: map[string]bool{"products": true},
		AllowedColumns: map[string][]string{
			"products": {"id", "name", "price", "stock"},
		},
		MaxPromptLen: 500,
	}
}

// aggregateShape builds the safe shape for a single-argument aggregate
func aggregateShape(fn string) *regexp.Regexp {
	return regexp.MustCompile(`^SELECT\s+` + fn + `\s*\(\s*\w+\s*\)\s+FROM\s+\w+` + whereClause + `$`)
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// MatchAny reports whether any pattern in the set matches the text, returning
// the first matching pattern for inclusion in rejection reasons.
func MatchAny(patterns []*regexp.Regexp, text string) (bool, string) {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true, p.String()
		}
	}
	return false, ""
}
