package cardgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/anshul/memodeck/internal/llm"
)

func batchJSON(n int) json.RawMessage {
	cards := make([]string, n)
	for i := range cards {
		cards[i] = fmt.Sprintf(`{"front":"q%d","back":"a%d"}`, i, i)
	}
	return json.RawMessage(`{"cards":[` + strings.Join(cards, ",") + `]}`)
}

func TestGenerateForDeck(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(batchJSON(20))
	g := NewGenerator(mock)

	cards, err := g.GenerateForDeck(context.Background(), "Go concurrency", "channels, goroutines")
	if err != nil {
		t.Fatalf("GenerateForDeck: %v", err)
	}
	if len(cards) != 20 {
		t.Errorf("cards = %d, want 20", len(cards))
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "card-batch" {
		t.Errorf("schema = %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Go concurrency") || !strings.Contains(prompt, "channels, goroutines") {
		t.Error("prompt missing deck name or description")
	}
	if !strings.Contains(prompt, "20 flashcards") {
		t.Error("prompt missing card count")
	}
}

func TestGenerateSkipsBlankSides(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"cards":[
		{"front":"q1","back":"a1"},
		{"front":"  ","back":"a2"},
		{"front":"q3","back":""}
	]}`))
	g := NewGenerator(mock)

	cards, err := g.GenerateForDeck(context.Background(), "X", "")
	if err != nil {
		t.Fatalf("GenerateForDeck: %v", err)
	}
	if len(cards) != 1 || cards[0].Front != "q1" {
		t.Errorf("cards = %+v, want only q1", cards)
	}
}

func TestGenerateCapsOversizedBatch(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(batchJSON(50))
	g := NewGenerator(mock)

	cards, err := g.GenerateForDeck(context.Background(), "X", "")
	if err != nil {
		t.Fatalf("GenerateForDeck: %v", err)
	}
	if len(cards) != maxCards {
		t.Errorf("cards = %d, want cap of %d", len(cards), maxCards)
	}
}

func TestGenerateEmptyBatchIsError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"cards":[]}`))
	g := NewGenerator(mock)

	_, err := g.GenerateForDeck(context.Background(), "X", "")
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddError(&llm.ErrProviderUnavailable{})
	g := NewGenerator(mock)

	_, err := g.GenerateForDeck(context.Background(), "X", "")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
