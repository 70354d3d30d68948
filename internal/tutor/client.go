// Package tutor builds AI tutoring requests and manages the per-run
// response slots shown during study.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anshul/memodeck/internal/llm"
)

// Kind names a card-level tutoring request.
type Kind string

const (
	KindHint     Kind = "hint"
	KindExplain  Kind = "explain"
	KindWhyWrong Kind = "why-wrong"
)

// CardContext is the card a tutoring request is about.
type CardContext struct {
	ID    int
	Front string
	Back  string
}

// MissedCard is one incorrectly answered card fed to weak-area analysis.
type MissedCard struct {
	Front string
	Back  string
}

// TopicOverview is the deep-tutor summary of a deck's subject.
type TopicOverview struct {
	Summary     string   `json:"summary"`
	KeyConcepts []string `json:"keyConcepts"`
	Connections string   `json:"connections"`
}

// WeakAreaReport identifies themes behind missed cards.
type WeakAreaReport struct {
	WeakThemes string   `json:"weakThemes"`
	Actions    []string `json:"actions"`
}

// LearningPlan is the deep-tutor study plan for a deck's topic.
type LearningPlan struct {
	Clarification     string   `json:"clarification"`
	SubSkills         []string `json:"subSkills"`
	SuggestedApproach string   `json:"suggestedApproach"`
}

// Client issues tutoring requests against an LLM provider.
type Client struct {
	provider llm.Provider
}

// NewClient creates a tutoring client.
func NewClient(provider llm.Provider) *Client {
	return &Client{provider: provider}
}

// CardHelp runs a card-level request and returns the tutoring text.
func (c *Client) CardHelp(ctx context.Context, kind Kind, card CardContext) (string, error) {
	switch kind {
	case KindHint:
		return c.Hint(ctx, card.Front)
	case KindExplain:
		return c.Explain(ctx, card.Front, card.Back)
	case KindWhyWrong:
		return c.WhyWrong(ctx, card.Front, card.Back)
	default:
		return "", fmt.Errorf("unknown tutor kind: %q", kind)
	}
}

// Hint asks for a subtle nudge that stops short of the answer.
func (c *Client) Hint(ctx context.Context, front string) (string, error) {
	prompt := fmt.Sprintf(`Provide a subtle hint for this flashcard without revealing the full answer.
Focus on guiding reasoning, not giving the solution.
Max 30 words.

Flashcard front: %s`, front)

	var out struct {
		Hint string `json:"hint"`
	}
	err := c.generate(ctx, llm.PurposeHint, prompt, hintSchema, &out)
	if err != nil {
		return "", err
	}
	return out.Hint, nil
}

// Explain asks for a plain-language explanation of the card's concept.
func (c *Client) Explain(ctx context.Context, front, back string) (string, error) {
	prompt := fmt.Sprintf(`You are a tutor explaining a single concept.
Flashcard front: %s
Flashcard back: %s

Provide a simple explanation using analogy and one practical example.
Keep it under 80 words. Avoid jargon.`, front, back)

	var out struct {
		Explanation string `json:"explanation"`
	}
	err := c.generate(ctx, llm.PurposeExplain, prompt, explanationSchema, &out)
	if err != nil {
		return "", err
	}
	return out.Explanation, nil
}

// WhyWrong asks why a learner commonly misses this card.
func (c *Client) WhyWrong(ctx context.Context, front, back string) (string, error) {
	prompt := fmt.Sprintf(`The learner marked this flashcard incorrect.
Card front: %s
Card back: %s

Explain the misconception that commonly occurs.
Provide one correction tip and one memory aid.
Keep concise.`, front, back)

	var out struct {
		Explanation string `json:"explanation"`
	}
	err := c.generate(ctx, llm.PurposeWhyWrong, prompt, explanationSchema, &out)
	if err != nil {
		return "", err
	}
	return out.Explanation, nil
}

// Overview summarizes the deck's topic in mental-map style.
func (c *Client) Overview(ctx context.Context, deckName, deckDescription string) (*TopicOverview, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert tutor.\nThe learner is studying %q.\n", deckName)
	if deckDescription != "" {
		fmt.Fprintf(&b, "Context: %s\n", deckDescription)
	}
	b.WriteString(`
Summarize the topic in 2 sentences.
List key concepts and relationships.
Show how concepts connect in a mental map style explanation.
Use plain language.
Do not exceed 150 words total.`)

	var out TopicOverview
	if err := c.generate(ctx, llm.PurposeTopicOverview, b.String(), overviewSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WeakAreas analyzes the session's missed cards for common themes.
func (c *Client) WeakAreas(ctx context.Context, deckName string, accuracy int, missed []MissedCard) (*WeakAreaReport, error) {
	var list strings.Builder
	for _, m := range missed {
		fmt.Fprintf(&list, "- Front: %s | Back: %s\n", m.Front, m.Back)
	}

	prompt := fmt.Sprintf(`You are an expert learning coach.
Session stats: %d%% accuracy, Deck: %q.

Incorrect cards:
%s
Identify weak themes and suggest next 3 focused actions.
Keep advice actionable and short.`, accuracy, deckName, list.String())

	var out WeakAreaReport
	if err := c.generate(ctx, llm.PurposeWeakAreas, prompt, weakAreasSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Plan builds a short learning plan for the deck's topic.
func (c *Client) Plan(ctx context.Context, deckName, deckDescription string) (*LearningPlan, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert tutor and curriculum planner.\nThe learner selected topic: %q.\n", deckName)
	if deckDescription != "" {
		fmt.Fprintf(&b, "Description: %s\n", deckDescription)
	}
	b.WriteString(`
Clarify the topic briefly, list 3-5 sub-skills needed to master it, and suggest a concise learning approach.
Keep response concise, non-jargony, and productivity-focused.`)

	var out LearningPlan
	if err := c.generate(ctx, llm.PurposeStudyPlan, b.String(), planSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) generate(ctx context.Context, purpose, prompt string, schema *llm.Schema, out any) error {
	resp, err := c.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    schema,
		MaxTokens: 1024,
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return nil
}
