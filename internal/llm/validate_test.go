package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var cardBatchSchema = &Schema{
	Name:        "card-batch",
	Description: "A batch of generated flashcards.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{"type": "string"},
						"back":  map[string]any{"type": "string"},
					},
					"required": []any{"front", "back"},
				},
			},
		},
		"required": []any{"cards"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "conforming",
			content: `{"cards":[{"front":"What is Go?","back":"A programming language."}]}`,
		},
		{
			name:    "missing required field",
			content: `{"cards":[{"front":"orphan"}]}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: `{"cards":"not an array"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			content: `{"cards":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(cardBatchSchema, json.RawMessage(tt.content))
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("err = %v, want ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	content := json.RawMessage(`{"cards":[]}`)
	for range 3 {
		if err := validateResponse(cardBatchSchema, content); err != nil {
			t.Fatalf("validateResponse: %v", err)
		}
	}
	if _, ok := schemaCache.Load(cardBatchSchema.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
