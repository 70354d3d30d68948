package tutor

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SlotState is the lifecycle of a tutor response slot.
type SlotState string

const (
	SlotIdle     SlotState = "idle"
	SlotLoading  SlotState = "loading"
	SlotResolved SlotState = "resolved"
	SlotFailed   SlotState = "failed"
)

// Fallback strings shown when a request fails. Fixed so the UI never
// renders a raw provider error.
const (
	FallbackHint     = "Could not generate a hint."
	FallbackExplain  = "Could not generate an explanation."
	FallbackAnalysis = "Could not analyze weak areas."
)

// requestTimeout bounds a dispatched tutoring request.
const requestTimeout = 60 * time.Second

// Slot is the observable state of one tutor response slot.
type Slot struct {
	State  SlotState `json:"state"`
	Kind   Kind      `json:"kind,omitempty"`
	CardID int       `json:"cardId,omitempty"`
	Text   string    `json:"text,omitempty"`
}

// slot adds the race guard to the observable state.
type slot struct {
	Slot
	generation uint64
}

// runSlots holds the two slots of one study run: the card slot serves
// hint/explain/why-wrong (mutually exclusive), the analysis slot serves
// weak-area analysis.
type runSlots struct {
	card     slot
	analysis slot
	report   *WeakAreaReport
}

// Dispatcher routes tutoring requests into per-run slots. Each new
// request bumps the slot's generation; resolutions carrying a stale
// generation are dropped, so the latest request always wins.
//
// The dispatcher does not check entitlements. Callers gate on the
// user's plan before dispatching.
type Dispatcher struct {
	client *Client
	log    logrus.FieldLogger

	mu   sync.Mutex
	runs map[string]*runSlots
}

// NewDispatcher creates a Dispatcher. log may be nil.
func NewDispatcher(client *Client, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		client: client,
		log:    log,
		runs:   make(map[string]*runSlots),
	}
}

// RequestCardHelp dispatches a hint/explain/why-wrong request for the
// given card into the run's card slot.
func (d *Dispatcher) RequestCardHelp(runID string, kind Kind, card CardContext) {
	d.mu.Lock()
	rs := d.slotsFor(runID)
	rs.card.generation++
	gen := rs.card.generation
	rs.card.Slot = Slot{State: SlotLoading, Kind: kind, CardID: card.ID}
	d.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := d.client.CardHelp(ctx, kind, card)

		d.mu.Lock()
		defer d.mu.Unlock()
		if rs.card.generation != gen {
			// A newer request took the slot; drop this resolution.
			return
		}
		if err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"run":  runID,
				"kind": kind,
				"card": card.ID,
			}).Warn("tutor request failed")
			rs.card.Slot = Slot{State: SlotFailed, Kind: kind, CardID: card.ID, Text: cardFallback(kind)}
			return
		}
		rs.card.Slot = Slot{State: SlotResolved, Kind: kind, CardID: card.ID, Text: text}
	}()
}

// RequestAnalysis dispatches weak-area analysis into the run's
// analysis slot.
func (d *Dispatcher) RequestAnalysis(runID, deckName string, accuracy int, missed []MissedCard) {
	d.mu.Lock()
	rs := d.slotsFor(runID)
	rs.analysis.generation++
	gen := rs.analysis.generation
	rs.analysis.Slot = Slot{State: SlotLoading}
	rs.report = nil
	d.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		report, err := d.client.WeakAreas(ctx, deckName, accuracy, missed)

		d.mu.Lock()
		defer d.mu.Unlock()
		if rs.analysis.generation != gen {
			return
		}
		if err != nil {
			d.log.WithError(err).WithField("run", runID).Warn("weak-area analysis failed")
			rs.analysis.Slot = Slot{State: SlotFailed, Text: FallbackAnalysis}
			return
		}
		rs.analysis.Slot = Slot{State: SlotResolved, Text: report.WeakThemes}
		rs.report = report
	}()
}

// CardSlot returns the run's card slot state.
func (d *Dispatcher) CardSlot(runID string) Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rs, ok := d.runs[runID]; ok {
		return rs.card.Slot
	}
	return Slot{State: SlotIdle}
}

// AnalysisSlot returns the run's analysis slot state plus the full
// report when resolved.
func (d *Dispatcher) AnalysisSlot(runID string) (Slot, *WeakAreaReport) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rs, ok := d.runs[runID]; ok {
		return rs.analysis.Slot, rs.report
	}
	return Slot{State: SlotIdle}, nil
}

// ClearCardSlot returns the card slot to idle. Called when the learner
// moves to a different card.
func (d *Dispatcher) ClearCardSlot(runID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if rs, ok := d.runs[runID]; ok {
		rs.card.generation++
		rs.card.Slot = Slot{State: SlotIdle}
	}
}

// DropRun discards all slot state for a run.
func (d *Dispatcher) DropRun(runID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.runs, runID)
}

// slotsFor returns (creating if needed) the slots of runID.
// Caller holds d.mu.
func (d *Dispatcher) slotsFor(runID string) *runSlots {
	rs, ok := d.runs[runID]
	if !ok {
		rs = &runSlots{
			card:     slot{Slot: Slot{State: SlotIdle}},
			analysis: slot{Slot: Slot{State: SlotIdle}},
		}
		d.runs[runID] = rs
	}
	return rs
}

func cardFallback(kind Kind) string {
	if kind == KindHint {
		return FallbackHint
	}
	return FallbackExplain
}
