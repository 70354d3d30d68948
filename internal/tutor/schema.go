package tutor

import "github.com/anshul/memodeck/internal/llm"

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func stringArrayProp(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	req := make([]any, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             req,
		"additionalProperties": false,
	}
}

var hintSchema = &llm.Schema{
	Name:        "card-hint",
	Description: "A subtle hint for a flashcard.",
	Definition: objectSchema(map[string]any{
		"hint": stringProp("A subtle hint that guides reasoning without revealing the full answer. Max 30 words."),
	}, "hint"),
}

var explanationSchema = &llm.Schema{
	Name:        "card-explanation",
	Description: "A short tutoring explanation for a flashcard.",
	Definition: objectSchema(map[string]any{
		"explanation": stringProp("A simple explanation using analogy and one practical example. Max 80 words. No jargon."),
	}, "explanation"),
}

var overviewSchema = &llm.Schema{
	Name:        "topic-overview",
	Description: "A mental-map overview of a deck's topic.",
	Definition: objectSchema(map[string]any{
		"summary":     stringProp("A 2-sentence summary of the topic."),
		"keyConcepts": stringArrayProp("List of key concepts."),
		"connections": stringProp("How concepts connect in a mental map style explanation. Plain language."),
	}, "summary", "keyConcepts", "connections"),
}

var weakAreasSchema = &llm.Schema{
	Name:        "weak-areas",
	Description: "Weak themes and next actions from a study session's missed cards.",
	Definition: objectSchema(map[string]any{
		"weakThemes": stringProp("Identified weak themes from the incorrect cards."),
		"actions":    stringArrayProp("3 focused, actionable next steps to improve."),
	}, "weakThemes", "actions"),
}

var planSchema = &llm.Schema{
	Name:        "learning-plan",
	Description: "A concise learning plan for a deck's topic.",
	Definition: objectSchema(map[string]any{
		"clarification":     stringProp("Brief clarification of the topic scope."),
		"subSkills":         stringArrayProp("3-5 sub-skills to master for this topic."),
		"suggestedApproach": stringProp("A concise suggested learning approach."),
	}, "clarification", "subSkills", "suggestedApproach"),
}
