package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anshul/memodeck/internal/llm"
)

// gatedProvider blocks each Generate call until released, so tests can
// interleave responses deliberately.
type gatedProvider struct {
	mu      sync.Mutex
	pending []chan result
}

type result struct {
	content json.RawMessage
	err     error
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	g.mu.Lock()
	gate := make(chan result, 1)
	g.pending = append(g.pending, gate)
	g.mu.Unlock()

	select {
	case r := <-gate:
		if r.err != nil {
			return nil, r.err
		}
		return &llm.Response{Content: r.content}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedProvider) ModelID() string { return "gated" }

// release resolves the i-th call (0-based, in arrival order).
func (g *gatedProvider) release(t *testing.T, i int, r result) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		g.mu.Lock()
		if i < len(g.pending) {
			g.pending[i] <- r
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatalf("call %d never arrived", i)
		}
		time.Sleep(time.Millisecond)
	}
}

func waitForState(t *testing.T, get func() Slot, want SlotState) Slot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		s := get()
		if s.State == want {
			return s
		}
		if time.Now().After(deadline) {
			t.Fatalf("slot stuck in %q, want %q", s.State, want)
		}
		time.Sleep(time.Millisecond)
	}
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCardSlotLifecycle(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	if s := d.CardSlot("run-1"); s.State != SlotIdle {
		t.Fatalf("initial state = %q, want idle", s.State)
	}

	d.RequestCardHelp("run-1", KindHint, CardContext{ID: 5, Front: "f"})
	s := d.CardSlot("run-1")
	if s.State != SlotLoading || s.Kind != KindHint || s.CardID != 5 {
		t.Fatalf("loading slot = %+v", s)
	}

	gp.release(t, 0, result{content: json.RawMessage(`{"hint":"try harder"}`)})
	s = waitForState(t, func() Slot { return d.CardSlot("run-1") }, SlotResolved)
	if s.Text != "try harder" {
		t.Errorf("text = %q", s.Text)
	}

	d.ClearCardSlot("run-1")
	if s := d.CardSlot("run-1"); s.State != SlotIdle || s.Text != "" {
		t.Errorf("cleared slot = %+v", s)
	}
}

func TestCardSlotFailureShowsFallback(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	d.RequestCardHelp("run-1", KindExplain, CardContext{ID: 5})
	gp.release(t, 0, result{err: errors.New("provider down")})

	s := waitForState(t, func() Slot { return d.CardSlot("run-1") }, SlotFailed)
	if s.Text != FallbackExplain {
		t.Errorf("text = %q, want fixed fallback", s.Text)
	}

	d.RequestCardHelp("run-2", KindHint, CardContext{ID: 1})
	gp.release(t, 1, result{err: errors.New("provider down")})
	s = waitForState(t, func() Slot { return d.CardSlot("run-2") }, SlotFailed)
	if s.Text != FallbackHint {
		t.Errorf("hint fallback = %q", s.Text)
	}
}

func TestStaleResolutionDropped(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	// First request for card 1, then a newer one for card 2 before the
	// first resolves.
	d.RequestCardHelp("run-1", KindHint, CardContext{ID: 1, Front: "a"})
	d.RequestCardHelp("run-1", KindHint, CardContext{ID: 2, Front: "b"})

	// Resolve the newer request first, then the stale one.
	gp.release(t, 1, result{content: json.RawMessage(`{"hint":"fresh"}`)})
	s := waitForState(t, func() Slot { return d.CardSlot("run-1") }, SlotResolved)
	if s.CardID != 2 || s.Text != "fresh" {
		t.Fatalf("slot = %+v, want card 2 / fresh", s)
	}

	gp.release(t, 0, result{content: json.RawMessage(`{"hint":"stale"}`)})
	time.Sleep(20 * time.Millisecond)
	s = d.CardSlot("run-1")
	if s.Text != "fresh" || s.CardID != 2 {
		t.Errorf("stale resolution overwrote slot: %+v", s)
	}
}

func TestAnalysisSlotIndependentOfCardSlot(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	d.RequestCardHelp("run-1", KindHint, CardContext{ID: 1})
	d.RequestAnalysis("run-1", "Networking", 50, []MissedCard{{Front: "f", Back: "b"}})

	gp.release(t, 1, result{content: json.RawMessage(`{"weakThemes":"layers","actions":["a","b","c"]}`)})
	s, report := func() (Slot, *WeakAreaReport) {
		waitForState(t, func() Slot { s, _ := d.AnalysisSlot("run-1"); return s }, SlotResolved)
		return d.AnalysisSlot("run-1")
	}()
	if s.Text != "layers" {
		t.Errorf("analysis text = %q", s.Text)
	}
	if report == nil || len(report.Actions) != 3 {
		t.Errorf("report = %+v", report)
	}

	// Card slot is still loading; analysis resolution must not touch it.
	if cs := d.CardSlot("run-1"); cs.State != SlotLoading {
		t.Errorf("card slot = %+v, want loading", cs)
	}
	gp.release(t, 0, result{content: json.RawMessage(`{"hint":"h"}`)})
	waitForState(t, func() Slot { return d.CardSlot("run-1") }, SlotResolved)
}

func TestAnalysisFailureShowsFallback(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	d.RequestAnalysis("run-1", "Networking", 50, nil)
	gp.release(t, 0, result{err: errors.New("boom")})

	s := waitForState(t, func() Slot { s, _ := d.AnalysisSlot("run-1"); return s }, SlotFailed)
	if s.Text != FallbackAnalysis {
		t.Errorf("text = %q", s.Text)
	}
	if _, report := d.AnalysisSlot("run-1"); report != nil {
		t.Error("failed analysis must not keep a report")
	}
}

func TestDropRun(t *testing.T) {
	gp := &gatedProvider{}
	d := NewDispatcher(NewClient(gp), quietLog())

	d.RequestCardHelp("run-1", KindHint, CardContext{ID: 1})
	d.DropRun("run-1")

	if s := d.CardSlot("run-1"); s.State != SlotIdle {
		t.Errorf("dropped run slot = %+v, want idle", s)
	}
	gp.release(t, 0, result{content: json.RawMessage(`{"hint":"late"}`)})
	time.Sleep(20 * time.Millisecond)
	if s := d.CardSlot("run-1"); s.State != SlotIdle {
		t.Errorf("late resolution revived dropped run: %+v", s)
	}
}
