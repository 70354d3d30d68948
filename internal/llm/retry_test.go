package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scriptedProvider returns a fixed sequence of results.
type scriptedProvider struct {
	results []result
	calls   int
}

type result struct {
	resp *Response
	err  error
}

func (s *scriptedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if s.calls >= len(s.results) {
		return nil, errors.New("scripted provider exhausted")
	}
	r := s.results[s.calls]
	s.calls++
	return r.resp, r.err
}

func (s *scriptedProvider) ModelID() string { return "scripted" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientError(t *testing.T) {
	ok := &Response{Content: json.RawMessage(`{"x":1}`)}
	inner := &scriptedProvider{results: []result{
		{err: &ErrProviderUnavailable{Err: errors.New("503")}},
		{resp: ok},
	}}

	p := WithRetry(inner, fastRetry(3))
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"x":1}` {
		t.Errorf("content = %s", resp.Content)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2", inner.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	inner := &scriptedProvider{results: []result{
		{err: &ErrRateLimit{Err: errors.New("429")}},
		{err: &ErrRateLimit{Err: errors.New("429")}},
		{err: &ErrRateLimit{Err: errors.New("429")}},
	}}

	p := WithRetry(inner, fastRetry(3))
	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	inner := &scriptedProvider{results: []result{
		{err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		{err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		{resp: &Response{}},
	}}

	p := WithRetry(inner, fastRetry(5))
	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (invalid response retried once)", inner.calls)
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	inner := &scriptedProvider{results: []result{
		{err: &ErrMaxTokensExceeded{}},
		{resp: &Response{}},
	}}

	p := WithRetry(inner, fastRetry(3))
	_, err := p.Generate(context.Background(), Request{})
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &scriptedProvider{results: []result{
		{err: ctx.Err()},
	}}

	p := WithRetry(inner, fastRetry(3))
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestBackoffRespectsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetry(3)}
	err := &ErrRateLimit{RetryAfter: 42 * time.Millisecond}
	if got := r.backoff(0, err); got != 42*time.Millisecond {
		t.Errorf("backoff = %v, want 42ms", got)
	}
}
