package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anshul/memodeck/internal/llm"
)

func TestHint(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"hint":"Think about what the acronym stands for."}`))
	c := NewClient(mock)

	hint, err := c.Hint(context.Background(), "What does CPU stand for?")
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if hint != "Think about what the acronym stands for." {
		t.Errorf("hint = %q", hint)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "card-hint" {
		t.Errorf("schema = %+v, want card-hint", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "What does CPU stand for?") {
		t.Error("prompt missing card front")
	}
	if !strings.Contains(req.Messages[0].Content, "full answer") {
		t.Error("prompt missing hint instruction")
	}
}

func TestExplainIncludesBothSides(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"explanation":"Like a filing cabinet for bytes."}`))
	c := NewClient(mock)

	got, err := c.Explain(context.Background(), "RAM", "Random Access Memory")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got != "Like a filing cabinet for bytes." {
		t.Errorf("explanation = %q", got)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "RAM") || !strings.Contains(prompt, "Random Access Memory") {
		t.Error("prompt must carry front and back")
	}
}

func TestCardHelpRoutesByKind(t *testing.T) {
	tests := []struct {
		kind   Kind
		resp   string
		schema string
	}{
		{KindHint, `{"hint":"h"}`, "card-hint"},
		{KindExplain, `{"explanation":"e"}`, "card-explanation"},
		{KindWhyWrong, `{"explanation":"w"}`, "card-explanation"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			mock := llm.NewMockProvider()
			mock.AddResponse(json.RawMessage(tt.resp))
			c := NewClient(mock)

			if _, err := c.CardHelp(context.Background(), tt.kind, CardContext{Front: "f", Back: "b"}); err != nil {
				t.Fatalf("CardHelp: %v", err)
			}
			if got := mock.Calls[0].Schema.Name; got != tt.schema {
				t.Errorf("schema = %q, want %q", got, tt.schema)
			}
		})
	}
}

func TestCardHelpUnknownKind(t *testing.T) {
	c := NewClient(llm.NewMockProvider())
	if _, err := c.CardHelp(context.Background(), Kind("bogus"), CardContext{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestOverviewOmitsEmptyDescription(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"summary":"s","keyConcepts":["a","b"],"connections":"c"}`))
	c := NewClient(mock)

	ov, err := c.Overview(context.Background(), "Networking", "")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(ov.KeyConcepts) != 2 {
		t.Errorf("keyConcepts = %v", ov.KeyConcepts)
	}
	if strings.Contains(mock.Calls[0].Messages[0].Content, "Context:") {
		t.Error("empty description must not add a Context line")
	}
}

func TestWeakAreasListsMissedCards(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"weakThemes":"confuses layers","actions":["review OSI","draw it","quiz again"]}`))
	c := NewClient(mock)

	report, err := c.WeakAreas(context.Background(), "Networking", 67, []MissedCard{
		{Front: "Layer 4?", Back: "Transport"},
	})
	if err != nil {
		t.Fatalf("WeakAreas: %v", err)
	}
	if len(report.Actions) != 3 {
		t.Errorf("actions = %v", report.Actions)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "67% accuracy") {
		t.Error("prompt missing accuracy")
	}
	if !strings.Contains(prompt, "- Front: Layer 4? | Back: Transport") {
		t.Error("prompt missing missed card line")
	}
}

func TestPlan(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(json.RawMessage(`{"clarification":"c","subSkills":["x","y","z"],"suggestedApproach":"a"}`))
	c := NewClient(mock)

	plan, err := c.Plan(context.Background(), "Go concurrency", "channels and goroutines")
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.SubSkills) != 3 {
		t.Errorf("subSkills = %v", plan.SubSkills)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "channels and goroutines") {
		t.Error("prompt missing description")
	}
}
