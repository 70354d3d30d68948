package store

import (
	"context"
	"fmt"

	"github.com/anshul/memodeck/ent"
	"github.com/anshul/memodeck/ent/card"
	"github.com/anshul/memodeck/ent/deck"
)

type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Create(ctx context.Context, deckID int, front, back string) (*Card, error) {
	c, err := r.client.Card.Create().
		SetDeckID(deckID).
		SetFront(front).
		SetBack(back).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return cardFromEnt(c, deckID), nil
}

func (r *cardRepo) CreateBatch(ctx context.Context, deckID int, pairs []CardContent) ([]*Card, error) {
	builders := make([]*ent.CardCreate, len(pairs))
	for i, p := range pairs {
		builders[i] = r.client.Card.Create().
			SetDeckID(deckID).
			SetFront(p.Front).
			SetBack(p.Back)
	}
	rows, err := r.client.Card.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cards: %w", err)
	}
	out := make([]*Card, len(rows))
	for i, c := range rows {
		out[i] = cardFromEnt(c, deckID)
	}
	return out, nil
}

func (r *cardRepo) ByDeck(ctx context.Context, deckID int) ([]*Card, error) {
	rows, err := r.client.Card.Query().
		Where(card.HasDeckWith(deck.ID(deckID))).
		Order(ent.Desc(card.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	out := make([]*Card, len(rows))
	for i, c := range rows {
		out[i] = cardFromEnt(c, deckID)
	}
	return out, nil
}

func (r *cardRepo) Get(ctx context.Context, id, deckID int) (*Card, error) {
	c, err := r.client.Card.Query().
		Where(card.ID(id), card.HasDeckWith(deck.ID(deckID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get card: %w", err)
	}
	return cardFromEnt(c, deckID), nil
}

func (r *cardRepo) Update(ctx context.Context, id, deckID int, front, back string) (*Card, error) {
	n, err := r.client.Card.Update().
		Where(card.ID(id), card.HasDeckWith(deck.ID(deckID))).
		SetFront(front).
		SetBack(back).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id, deckID)
}

func (r *cardRepo) Delete(ctx context.Context, id, deckID int) error {
	n, err := r.client.Card.Delete().
		Where(card.ID(id), card.HasDeckWith(deck.ID(deckID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func cardFromEnt(c *ent.Card, deckID int) *Card {
	return &Card{
		ID:        c.ID,
		DeckID:    deckID,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
