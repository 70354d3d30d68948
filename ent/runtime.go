// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anshul/memodeck/ent/card"
	"github.com/anshul/memodeck/ent/cardresult"
	"github.com/anshul/memodeck/ent/deck"
	"github.com/anshul/memodeck/ent/llmrequestevent"
	"github.com/anshul/memodeck/ent/schema"
	"github.com/anshul/memodeck/ent/studysession"
	"github.com/anshul/memodeck/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[0].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[1].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescCreatedAt is the schema descriptor for created_at field.
	cardDescCreatedAt := cardFields[2].Descriptor()
	// card.DefaultCreatedAt holds the default value on creation for the created_at field.
	card.DefaultCreatedAt = cardDescCreatedAt.Default.(func() time.Time)
	// cardDescUpdatedAt is the schema descriptor for updated_at field.
	cardDescUpdatedAt := cardFields[3].Descriptor()
	// card.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	card.DefaultUpdatedAt = cardDescUpdatedAt.Default.(func() time.Time)
	// card.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	card.UpdateDefaultUpdatedAt = cardDescUpdatedAt.UpdateDefault.(func() time.Time)
	cardresultFields := schema.CardResult{}.Fields()
	_ = cardresultFields
	// cardresultDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	cardresultDescTimeSpentMs := cardresultFields[2].Descriptor()
	// cardresult.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	cardresult.DefaultTimeSpentMs = cardresultDescTimeSpentMs.Default.(int)
	// cardresultDescAnsweredAt is the schema descriptor for answered_at field.
	cardresultDescAnsweredAt := cardresultFields[3].Descriptor()
	// cardresult.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	cardresult.DefaultAnsweredAt = cardresultDescAnsweredAt.Default.(func() time.Time)
	deckFields := schema.Deck{}.Fields()
	_ = deckFields
	// deckDescOwnerID is the schema descriptor for owner_id field.
	deckDescOwnerID := deckFields[0].Descriptor()
	// deck.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	deck.OwnerIDValidator = deckDescOwnerID.Validators[0].(func(string) error)
	// deckDescName is the schema descriptor for name field.
	deckDescName := deckFields[1].Descriptor()
	// deck.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deck.NameValidator = func() func(string) error {
		validators := deckDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// deckDescDescription is the schema descriptor for description field.
	deckDescDescription := deckFields[2].Descriptor()
	// deck.DefaultDescription holds the default value on creation for the description field.
	deck.DefaultDescription = deckDescDescription.Default.(string)
	// deck.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	deck.DescriptionValidator = deckDescDescription.Validators[0].(func(string) error)
	// deckDescCreatedAt is the schema descriptor for created_at field.
	deckDescCreatedAt := deckFields[3].Descriptor()
	// deck.DefaultCreatedAt holds the default value on creation for the created_at field.
	deck.DefaultCreatedAt = deckDescCreatedAt.Default.(func() time.Time)
	// deckDescUpdatedAt is the schema descriptor for updated_at field.
	deckDescUpdatedAt := deckFields[4].Descriptor()
	// deck.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deck.DefaultUpdatedAt = deckDescUpdatedAt.Default.(func() time.Time)
	// deck.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deck.UpdateDefaultUpdatedAt = deckDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescUserID is the schema descriptor for user_id field.
	studysessionDescUserID := studysessionFields[0].Descriptor()
	// studysession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studysession.UserIDValidator = studysessionDescUserID.Validators[0].(func(string) error)
	// studysessionDescTotalCards is the schema descriptor for total_cards field.
	studysessionDescTotalCards := studysessionFields[1].Descriptor()
	// studysession.TotalCardsValidator is a validator for the "total_cards" field. It is called by the builders before save.
	studysession.TotalCardsValidator = studysessionDescTotalCards.Validators[0].(func(int) error)
	// studysessionDescCorrectCount is the schema descriptor for correct_count field.
	studysessionDescCorrectCount := studysessionFields[2].Descriptor()
	// studysession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	studysession.DefaultCorrectCount = studysessionDescCorrectCount.Default.(int)
	// studysessionDescIncorrectCount is the schema descriptor for incorrect_count field.
	studysessionDescIncorrectCount := studysessionFields[3].Descriptor()
	// studysession.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	studysession.DefaultIncorrectCount = studysessionDescIncorrectCount.Default.(int)
	// studysessionDescStartedAt is the schema descriptor for started_at field.
	studysessionDescStartedAt := studysessionFields[4].Descriptor()
	// studysession.DefaultStartedAt holds the default value on creation for the started_at field.
	studysession.DefaultStartedAt = studysessionDescStartedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.DefaultEmail holds the default value on creation for the email field.
	user.DefaultEmail = userDescEmail.Default.(string)
	// userDescPlan is the schema descriptor for plan field.
	userDescPlan := userFields[2].Descriptor()
	// user.DefaultPlan holds the default value on creation for the plan field.
	user.DefaultPlan = userDescPlan.Default.(string)
	// userDescUnlimitedDecks is the schema descriptor for unlimited_decks field.
	userDescUnlimitedDecks := userFields[3].Descriptor()
	// user.DefaultUnlimitedDecks holds the default value on creation for the unlimited_decks field.
	user.DefaultUnlimitedDecks = userDescUnlimitedDecks.Default.(bool)
	// userDescAiGeneration is the schema descriptor for ai_generation field.
	userDescAiGeneration := userFields[4].Descriptor()
	// user.DefaultAiGeneration holds the default value on creation for the ai_generation field.
	user.DefaultAiGeneration = userDescAiGeneration.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
}
