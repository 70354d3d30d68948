package store

import (
	"context"
	"fmt"

	"github.com/anshul/memodeck/ent"
	"github.com/anshul/memodeck/ent/deck"
)

type deckRepo struct {
	client *ent.Client
}

func (r *deckRepo) Create(ctx context.Context, ownerID, name, description string) (*Deck, error) {
	d, err := r.client.Deck.Create().
		SetOwnerID(ownerID).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return deckFromEnt(d), nil
}

func (r *deckRepo) ByOwner(ctx context.Context, ownerID string) ([]*Deck, error) {
	rows, err := r.client.Deck.Query().
		Where(deck.OwnerID(ownerID)).
		Order(ent.Desc(deck.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	out := make([]*Deck, len(rows))
	for i, d := range rows {
		out[i] = deckFromEnt(d)
	}
	return out, nil
}

func (r *deckRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	n, err := r.client.Deck.Query().
		Where(deck.OwnerID(ownerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count decks: %w", err)
	}
	return n, nil
}

func (r *deckRepo) Get(ctx context.Context, id int, ownerID string) (*Deck, error) {
	d, err := r.client.Deck.Query().
		Where(deck.ID(id), deck.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return deckFromEnt(d), nil
}

func (r *deckRepo) Update(ctx context.Context, id int, ownerID, name, description string) (*Deck, error) {
	n, err := r.client.Deck.Update().
		Where(deck.ID(id), deck.OwnerID(ownerID)).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id, ownerID)
}

func (r *deckRepo) Delete(ctx context.Context, id int, ownerID string) error {
	n, err := r.client.Deck.Delete().
		Where(deck.ID(id), deck.OwnerID(ownerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func deckFromEnt(d *ent.Deck) *Deck {
	return &Deck{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
