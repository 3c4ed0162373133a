package game

import "testing"

func TestScoreLedgerRecordDestruction(t *testing.T) {
	l := NewScoreLedger()
	for i := 0; i < 4; i++ {
		l.RecordDestruction()
	}
	if got, want := l.Score(), 4*PointsPerTarget; got != want {
		t.Errorf("Score() = %d, want %d", got, want)
	}
	if got := l.TargetsDestroyed(); got != 4 {
		t.Errorf("TargetsDestroyed() = %d, want 4", got)
	}
}

func TestScoreLedgerNotifiesScoreBeforeCount(t *testing.T) {
	l := NewScoreLedger()
	var order []string
	l.SubscribeScore(func(v int) {
		order = append(order, "score")
		if v != PointsPerTarget {
			t.Errorf("score observer got %d, want %d", v, PointsPerTarget)
		}
	})
	l.SubscribeCount(func(v int) {
		order = append(order, "count")
		if v != 1 {
			t.Errorf("count observer got %d, want 1", v)
		}
	})

	l.RecordDestruction()

	if len(order) != 2 || order[0] != "score" || order[1] != "count" {
		t.Fatalf("notification order = %v, want [score count]", order)
	}
}

func TestScoreLedgerResetNotifiesScoreOnly(t *testing.T) {
	l := NewScoreLedger()
	l.RecordDestruction()
	l.RecordDestruction()

	var scoreCalls, countCalls int
	var lastScore int
	l.SubscribeScore(func(v int) { scoreCalls++; lastScore = v })
	l.SubscribeCount(func(int) { countCalls++ })

	l.Reset()

	if scoreCalls != 1 || lastScore != 0 {
		t.Errorf("score observer: %d calls, last %d; want 1 call with 0", scoreCalls, lastScore)
	}
	if countCalls != 0 {
		t.Errorf("count observer called %d times on Reset, want 0", countCalls)
	}
	if l.Score() != 0 || l.TargetsDestroyed() != 0 {
		t.Errorf("after Reset: score %d destroyed %d, want both 0", l.Score(), l.TargetsDestroyed())
	}
}

func TestScoreLedgerUnsubscribe(t *testing.T) {
	l := NewScoreLedger()
	calls := 0
	tok := l.SubscribeScore(func(int) { calls++ })
	l.RecordDestruction()
	l.UnsubscribeScore(tok)
	l.RecordDestruction()
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
}

func TestScoreLedgerRegistryFirstWriterWins(t *testing.T) {
	resetLedgerRegistry()
	defer resetLedgerRegistry()

	first := RegisterScoreLedger(NewScoreLedger())
	first.RecordDestruction()

	// A duplicate construction must not displace the live counters.
	second := RegisterScoreLedger(NewScoreLedger())
	if second != first {
		t.Fatal("second registration displaced the live ledger")
	}
	if got := second.Score(); got != PointsPerTarget {
		t.Errorf("live ledger score = %d, want %d", got, PointsPerTarget)
	}
	if SharedScoreLedger() != first {
		t.Error("SharedScoreLedger returned a different instance")
	}
}

func TestSharedScoreLedgerCreatesOnFirstUse(t *testing.T) {
	resetLedgerRegistry()
	defer resetLedgerRegistry()

	a := SharedScoreLedger()
	b := SharedScoreLedger()
	if a == nil || a != b {
		t.Errorf("SharedScoreLedger not stable: %p vs %p", a, b)
	}
}
