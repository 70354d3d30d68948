package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/anshul/memodeck/ent"
	"github.com/anshul/memodeck/ent/cardresult"
	"github.com/anshul/memodeck/ent/deck"
	"github.com/anshul/memodeck/ent/studysession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Begin(ctx context.Context, userID string, deckID, totalCards int) (*StudySession, error) {
	s, err := r.client.StudySession.Create().
		SetUserID(userID).
		SetDeckID(deckID).
		SetTotalCards(totalCards).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	return sessionFromEnt(s, deckID), nil
}

func (r *sessionRepo) RecordResult(ctx context.Context, sessionID, cardID int, isCorrect bool, timeSpentMs int) error {
	_, err := r.client.CardResult.Create().
		SetSessionID(sessionID).
		SetCardID(cardID).
		SetIsCorrect(isCorrect).
		SetTimeSpentMs(timeSpentMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

func (r *sessionRepo) Finalize(ctx context.Context, sessionID int, userID string, correct, incorrect int) error {
	n, err := r.client.StudySession.Update().
		Where(studysession.ID(sessionID), studysession.UserID(userID)).
		SetCorrectCount(correct).
		SetIncorrectCount(incorrect).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) LatestByDeck(ctx context.Context, deckID int, userID string) (*StudySession, error) {
	s, err := r.client.StudySession.Query().
		Where(
			studysession.HasDeckWith(deck.ID(deckID)),
			studysession.UserID(userID),
		).
		Order(ent.Desc(studysession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest session: %w", err)
	}
	return sessionFromEnt(s, deckID), nil
}

func (r *sessionRepo) WeakCardIDs(ctx context.Context, deckID int, userID string) ([]int, error) {
	latest, err := r.LatestByDeck(ctx, deckID, userID)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.client.CardResult.Query().
		Where(
			cardresult.HasSessionWith(studysession.ID(latest.ID)),
			cardresult.IsCorrect(false),
		).
		Order(ent.Asc(cardresult.FieldAnsweredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("weak card ids: %w", err)
	}

	ids := make([]int, 0, len(rows))
	seen := make(map[int]bool)
	for _, cr := range rows {
		if seen[cr.CardID] {
			continue
		}
		seen[cr.CardID] = true
		ids = append(ids, cr.CardID)
	}
	return ids, nil
}

func (r *sessionRepo) DeckStats(ctx context.Context, deckID int, userID string) (*DeckStats, error) {
	latest, err := r.LatestByDeck(ctx, deckID, userID)
	if err != nil {
		if err == ErrNotFound {
			return &DeckStats{}, nil
		}
		return nil, err
	}

	stats := &DeckStats{}
	if latest.CompletedAt != nil {
		stats.LastStudied = latest.CompletedAt
	} else {
		started := latest.StartedAt
		stats.LastStudied = &started
	}

	if total := latest.CorrectCount + latest.IncorrectCount; total > 0 {
		acc := int(math.Round(float64(latest.CorrectCount) / float64(total) * 100))
		stats.LastAccuracy = &acc
	}
	return stats, nil
}

func sessionFromEnt(s *ent.StudySession, deckID int) *StudySession {
	return &StudySession{
		ID:             s.ID,
		UserID:         s.UserID,
		DeckID:         deckID,
		TotalCards:     s.TotalCards,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
	}
}
