package study

import "sync"

// Registry maps run ids to live runs. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*Run)}
}

// Put stores a run under its id.
func (g *Registry) Put(r *Run) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.runs[r.ID] = r
}

// Get returns the run for id. ErrRunNotFound when absent or owned by
// another user.
func (g *Registry) Get(id, userID string) (*Run, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.runs[id]
	if !ok || r.UserID != userID {
		return nil, ErrRunNotFound
	}
	return r, nil
}

// Delete removes the run for id.
func (g *Registry) Delete(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.runs, id)
}

// DeleteByDeck removes every run studying the given deck and returns
// the removed run ids. Called when a deck is deleted so stale runs
// cannot outlive their cards.
func (g *Registry) DeleteByDeck(deckID int) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var removed []string
	for id, r := range g.runs {
		if r.DeckID == deckID {
			delete(g.runs, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Len returns the number of live runs.
func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.runs)
}
