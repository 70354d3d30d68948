// Package cardgen generates flashcards for a deck with an LLM.
package cardgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anshul/memodeck/internal/llm"
	"github.com/anshul/memodeck/internal/store"
)

// CardCount is how many cards one generation request produces.
const CardCount = 20

// maxCards bounds how many generated cards are accepted even if the
// model over-delivers.
const maxCards = 30

var batchSchema = &llm.Schema{
	Name:        "card-batch",
	Description: "A batch of generated flashcards.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type":        "array",
				"description": fmt.Sprintf("Exactly %d flashcards covering the topic.", CardCount),
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{
							"type":        "string",
							"description": "The question or prompt side. Short and specific.",
						},
						"back": map[string]any{
							"type":        "string",
							"description": "The answer side. Concise and factual.",
						},
					},
					"required":             []any{"front", "back"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

// Generator produces card batches for decks.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// GenerateForDeck asks the LLM for CardCount front/back pairs covering
// the deck's topic. The batch is structurally validated before return;
// blank-sided cards are rejected, an empty batch is an error.
func (g *Generator) GenerateForDeck(ctx context.Context, deckName, deckDescription string) ([]store.CardContent, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert flashcard author.\nCreate %d flashcards for the topic %q.\n", CardCount, deckName)
	if deckDescription != "" {
		fmt.Fprintf(&b, "Topic context: %s\n", deckDescription)
	}
	b.WriteString(`
Each card has a front (a short, specific question or prompt) and a back (a concise, factual answer).
Cover the topic broadly: definitions, distinctions, examples, and common pitfalls.
No duplicate fronts. No trick questions.`)

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeCardGen), llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    batchSchema,
		MaxTokens: 8192,
	})
	if err != nil {
		return nil, err
	}

	var batch struct {
		Cards []struct {
			Front string `json:"front"`
			Back  string `json:"back"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	cards := make([]store.CardContent, 0, len(batch.Cards))
	for _, c := range batch.Cards {
		front := strings.TrimSpace(c.Front)
		back := strings.TrimSpace(c.Back)
		if front == "" || back == "" {
			continue
		}
		cards = append(cards, store.CardContent{Front: front, Back: back})
		if len(cards) == maxCards {
			break
		}
	}
	if len(cards) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("no usable cards in batch")}
	}
	return cards, nil
}
