package llm

import "context"

type purposeKey struct{}

// Request purposes, recorded on each LLMRequestEvent so usage can be
// broken down by feature.
const (
	PurposeHint          = "hint"
	PurposeExplain       = "explain"
	PurposeWhyWrong      = "why-wrong"
	PurposeTopicOverview = "topic-overview"
	PurposeWeakAreas     = "weak-areas"
	PurposeStudyPlan     = "study-plan"
	PurposeCardGen       = "card-gen"
)

// WithPurpose tags the context with the purpose of the LLM request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag from the context, or "" when unset.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return ""
}
