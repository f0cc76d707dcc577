// ABOUTME: SQLCandidate is a generated or reused SQL statement awaiting execution
// ABOUTME: Provenance records whether it came from history, fresh synthesis, or rejection
package models

// Provenance tags where a SQL candidate came from
type Provenance string

const (
	// ProvenanceHistory means the statement was reused from the query history
	ProvenanceHistory Provenance = "history"
	// ProvenanceSynthesized means the statement came from a fresh LLM completion
	ProvenanceSynthesized Provenance = "synthesized"
	// ProvenanceRejected means generation produced nothing executable
	ProvenanceRejected Provenance = "rejected"
)

// BreachSentinel is returned in place of a statement when generated SQL fails
// validation. Downstream consumers detect it by string comparison, so it must
// stay distinguishable from any legitimate query result.
const BreachSentinel = "Security breach detected in generated SQL"

// SQLCandidate is a candidate statement produced by the synthesizer.
// Invariant: a candidate handed to the execution sandbox has already passed
// a CheckSQL verdict with IsSafe=true.
type SQLCandidate struct {
	Statement  string     `json:"statement"`
	Provenance Provenance `json:"provenance"`
}

// Rejected reports whether this candidate is the security-breach sentinel
func (c SQLCandidate) Rejected() bool {
	return c.Provenance == ProvenanceRejected
}
