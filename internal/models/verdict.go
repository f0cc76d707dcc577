// ABOUTME: SafetyVerdict is the result of a safety-guard check
// ABOUTME: Returned for both natural-language prompts and generated SQL
package models

// SafetyVerdict reports whether a piece of text passed a guard check.
// Verdicts are never mutated after being returned.
type SafetyVerdict struct {
	IsSafe bool   `json:"is_safe"`
	Reason string `json:"reason"`
}

// Safe returns an accepting verdict with the given reason
func Safe(reason string) SafetyVerdict {
	return SafetyVerdict{IsSafe: true, Reason: reason}
}

// Unsafe returns a rejecting verdict with the given reason
func Unsafe(reason string) SafetyVerdict {
	return SafetyVerdict{IsSafe: false, Reason: reason}
}
