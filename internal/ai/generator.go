package ai

import "context"

// Status tells which branch a generation request took, so callers and tests
// can assert on the outcome instead of string-matching placeholder text.
type Status int

const (
	// StatusGenerated means the model produced the text.
	StatusGenerated Status = iota
	// StatusDisabled means no credential is configured; the text is a fixed
	// notice and no external call was made.
	StatusDisabled
	// StatusFailed means the external call errored; the text is a fixed
	// fallback.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusDisabled:
		return "disabled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result carries the generated (or substituted) text together with the
// branch that produced it.
type Result struct {
	Status Status
	Text   string
}

// Generator produces text for a prompt. Implementations wrap one external
// text-generation provider.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
