package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anshul/memodeck/internal/store"
)

// memEventRepo collects appended events in memory.
type memEventRepo struct {
	events []store.LLMRequestEventData
}

func (m *memEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memEventRepo) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (m *memEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"hint":"think smaller"}`))
	repo := &memEventRepo{}

	p := WithLogging(mock, "mock", repo)
	ctx := WithPurpose(context.Background(), PurposeHint)
	if _, err := p.Generate(ctx, Request{System: "tutor"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("Success = false")
	}
	if ev.Provider != "mock" {
		t.Errorf("Provider = %q", ev.Provider)
	}
	if ev.Purpose != PurposeHint {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, PurposeHint)
	}
	if ev.ResponseBody != `{"hint":"think smaller"}` {
		t.Errorf("ResponseBody = %q", ev.ResponseBody)
	}
	if ev.RequestBody == "" {
		t.Error("RequestBody empty")
	}
	if ev.InputTokens == 0 || ev.OutputTokens == 0 {
		t.Errorf("token counts = %d/%d, want nonzero", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider()
	mock.AddError(&ErrProviderUnavailable{Err: errors.New("down")})
	repo := &memEventRepo{}

	p := WithLogging(mock, "mock", repo)
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("Success = true for failed request")
	}
	if ev.ErrorMessage == "" {
		t.Error("ErrorMessage empty")
	}
}

func TestLoggingNilRepoIsNoop(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(json.RawMessage(`{}`))

	p := WithLogging(mock, "mock", nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}
