// ABOUTME: Intent classification result for an incoming natural-language request
// ABOUTME: Produced once per request by the intent router, immutable afterwards
package models

// IntentLabel identifies what the user is trying to do
type IntentLabel string

const (
	// IntentSQL means the user wants a database query
	IntentSQL IntentLabel = "SQL"
	// IntentChat means the user wants conversation, which this system deflects
	IntentChat IntentLabel = "CHAT"
)

// IntentDecision is the outcome of intent classification
type IntentDecision struct {
	Label     IntentLabel `json:"label"`
	Rationale string      `json:"rationale"`
}
