package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider is a canned-response provider for tests and offline use.
// Responses are served FIFO; when the queue is empty it returns an
// empty JSON object.
type MockProvider struct {
	mu        sync.Mutex
	responses []json.RawMessage
	errs      []error
	// Calls records every request received, in order.
	Calls []Request
}

// NewMockProvider creates an empty MockProvider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// AddResponse queues a canned response.
func (m *MockProvider) AddResponse(content json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, content)
	m.errs = append(m.errs, nil)
}

// AddError queues an error to return instead of a response.
func (m *MockProvider) AddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, nil)
	m.errs = append(m.errs, err)
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return &Response{
			Content:    json.RawMessage(`{}`),
			Model:      m.ModelID(),
			StopReason: "end",
		}, nil
	}

	content, err := m.responses[0], m.errs[0]
	m.responses = m.responses[1:]
	m.errs = m.errs[1:]

	if err != nil {
		return nil, err
	}
	return &Response{
		Content:    content,
		Model:      m.ModelID(),
		StopReason: "end",
		Usage:      Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock-model"
}

// CallCount returns the number of Generate calls received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
