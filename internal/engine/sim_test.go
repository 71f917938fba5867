package engine_test

import (
	"testing"

	"github.com/Mikey-Burns/Setback/internal/engine"
	"github.com/Mikey-Burns/Setback/internal/engine/sim"
)

func TestSelfPlayMatchesManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		if err := sim.RunSelfPlayMatch(seed, 40, 5000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	}
}

func TestSelfPlayReachesGameOver(t *testing.T) {
	over := 0
	for seed := int64(1); seed <= 20; seed++ {
		e := engine.New(engine.StandardPreset(), seed)
		for _, s := range engine.Seats {
			if err := e.RequestSeat(s, s.String()); err != nil {
				t.Fatalf("seat: %v", err)
			}
		}
		for step := 0; step < 10000 && e.Phase() != engine.PhaseGameOver; step++ {
			state := e.Snapshot()
			seat, _ := engine.CurrentPlayer(state)
			legal := engine.LegalActions(state, seat)
			if len(legal) == 0 {
				t.Fatalf("seed %d: no legal action for %v in %v", seed, seat, state.Round.Phase)
			}
			if _, err := e.Apply(seat, legal[0]); err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
		}
		if e.Phase() == engine.PhaseGameOver {
			over++
			evs := e.Events(0)
			if last := evs[len(evs)-1]; last.Kind != engine.EventGameOver {
				t.Fatalf("seed %d: last event %v", seed, last.Kind)
			}
		}
	}
	if over == 0 {
		t.Fatalf("no match reached GAME_OVER")
	}
}

func FuzzSelfPlayMatch(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(20250211))
	f.Fuzz(func(t *testing.T, seed int64) {
		if err := sim.RunSelfPlayMatch(seed, 6, 1000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	})
}
