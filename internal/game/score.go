package game

import "sync"

// ScoreLedger is the process-wide score ledger: total score and number of
// destroyed targets. It outlives missions and scene rebuilds; gameplay code
// receives it by reference and may only mutate it through RecordDestruction
// and Reset. Observer callbacks run synchronously on the mutating goroutine.
type ScoreLedger struct {
	mu        sync.Mutex
	score     int
	destroyed int

	nextSub   int
	scoreSubs map[int]func(int)
	countSubs map[int]func(int)
}

func NewScoreLedger() *ScoreLedger {
	return &ScoreLedger{
		scoreSubs: make(map[int]func(int)),
		countSubs: make(map[int]func(int)),
	}
}

// Score returns the current total score.
func (l *ScoreLedger) Score() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.score
}

// TargetsDestroyed returns the number of destruction credits recorded.
func (l *ScoreLedger) TargetsDestroyed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroyed
}

// RecordDestruction adds the per-target point value and one destroyed
// count, then notifies score observers before count observers. Notification
// is synchronous; there is no ordering guarantee between distinct observers
// of the same kind.
func (l *ScoreLedger) RecordDestruction() {
	l.mu.Lock()
	l.score += PointsPerTarget
	l.destroyed++
	score := l.score
	count := l.destroyed
	scoreFns := subscriberSnapshot(l.scoreSubs)
	countFns := subscriberSnapshot(l.countSubs)
	l.mu.Unlock()

	// Callbacks run outside the lock so observers may read the ledger.
	for _, fn := range scoreFns {
		fn(score)
	}
	for _, fn := range countFns {
		fn(count)
	}
}

// Reset zeroes both counters and notifies score observers with the new
// score. Count observers are deliberately not notified; the HUD keeps the
// lifetime kill tally visible across resets.
func (l *ScoreLedger) Reset() {
	l.mu.Lock()
	l.score = 0
	l.destroyed = 0
	scoreFns := subscriberSnapshot(l.scoreSubs)
	l.mu.Unlock()

	for _, fn := range scoreFns {
		fn(0)
	}
}

// SubscribeScore registers an observer for score changes and returns a
// token for UnsubscribeScore. Function values are not comparable, so
// unsubscription is by token.
func (l *ScoreLedger) SubscribeScore(fn func(newScore int)) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextSub++
	l.scoreSubs[l.nextSub] = fn
	return l.nextSub
}

func (l *ScoreLedger) UnsubscribeScore(token int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.scoreSubs, token)
}

// SubscribeCount registers an observer for destroyed-count changes.
func (l *ScoreLedger) SubscribeCount(fn func(newCount int)) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextSub++
	l.countSubs[l.nextSub] = fn
	return l.nextSub
}

func (l *ScoreLedger) UnsubscribeCount(token int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.countSubs, token)
}

func subscriberSnapshot(subs map[int]func(int)) []func(int) {
	if len(subs) == 0 {
		return nil
	}
	out := make([]func(int), 0, len(subs))
	for _, fn := range subs {
		out = append(out, fn)
	}
	return out
}

// Process-wide registry. Exactly one ledger is live at a time; registration
// is first-writer-wins so a duplicate construction can never displace the
// counters of the live instance.
var (
	ledgerMu   sync.Mutex
	liveLedger *ScoreLedger
)

// SharedScoreLedger returns the process-wide ledger, creating it on first
// use.
func SharedScoreLedger() *ScoreLedger {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if liveLedger == nil {
		liveLedger = NewScoreLedger()
	}
	return liveLedger
}

// RegisterScoreLedger offers l as the process-wide ledger and returns the
// instance that is actually live. The first registration wins; later offers
// are discarded.
func RegisterScoreLedger(l *ScoreLedger) *ScoreLedger {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	if liveLedger == nil {
		liveLedger = l
	}
	return liveLedger
}

// resetLedgerRegistry drops the live instance so tests can exercise the
// first-writer-wins rule from a clean slate.
func resetLedgerRegistry() {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()
	liveLedger = nil
}
