package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anshul/memodeck/internal/store"
)

// LoggingProvider is a decorator that records every request as an
// LLMRequestEvent. Persistence failures are swallowed; observability
// must never break a study session.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.LLMEventRepo
}

// WithLogging wraps a Provider with event persistence.
// provider is the provider name as configured ("gemini", "openai", ...).
func WithLogging(p Provider, provider string, events store.LLMEventRepo) Provider {
	return &LoggingProvider{inner: p, provider: provider, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if l.events != nil {
		l.record(ctx, req, resp, err, latency)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) record(ctx context.Context, req Request, resp *Response, genErr error, latency time.Duration) {
	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     genErr == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}

	// Detached context so cancellation of the request does not lose the event.
	_ = l.events.AppendLLMRequest(context.WithoutCancel(ctx), data)
}

func serializeRequest(req Request) string {
	b, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return string(b)
}
