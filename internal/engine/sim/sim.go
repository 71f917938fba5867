package sim

import (
	"fmt"
	"sort"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

type ActionRecord struct {
	Hand int
	Step int
	Seat engine.Seat
	A    engine.Action
}

// RunSelfPlayMatch seats four scripted players on a fresh engine and plays
// until the match ends or maxHands hands have been scored. Card conservation
// and log ordering are checked after every action.
func RunSelfPlayMatch(seed int64, maxHands int, maxSteps int) error {
	e := engine.New(engine.StandardPreset(), seed)
	for _, s := range engine.Seats {
		if err := e.RequestSeat(s, "sim-"+s.Ordinal()); err != nil {
			return fmt.Errorf("seed=%d seat %v: %w", seed, s, err)
		}
	}

	records := []ActionRecord{}
	seen := 0
	for step := 0; step < maxSteps; step++ {
		state := e.Snapshot()
		if state.Round.Phase == engine.PhaseGameOver || state.Round.Number >= maxHands {
			return nil
		}
		seat, ok := engine.CurrentPlayer(state)
		if !ok {
			return failure(seed, state, step, records, "no current player")
		}
		legal := engine.LegalActions(state, seat)
		if len(legal) == 0 {
			return failure(seed, state, step, records, "no legal actions")
		}
		action := chooseAction(state, legal)
		if _, err := e.Apply(seat, action); err != nil {
			return failure(seed, state, step, records, fmt.Sprintf("apply error: %v", err))
		}
		records = append(records, ActionRecord{Hand: state.Round.Number, Step: step, Seat: seat, A: action})

		after := e.Snapshot()
		if err := checkInvariants(after); err != nil {
			return failure(seed, after, step, records, err.Error())
		}
		evs := e.Events(seen)
		for i, ev := range evs {
			if ev.Seq != seen+i {
				return failure(seed, after, step, records, fmt.Sprintf("event seq %d at index %d", ev.Seq, seen+i))
			}
		}
		if len(evs) == 0 {
			return failure(seed, after, step, records, "accepted action produced no event")
		}
		seen += len(evs)
	}
	return failure(seed, e.Snapshot(), maxSteps, records, "step budget exhausted")
}

// chooseAction bids the lowest legal amount and plays the cheapest legal card.
func chooseAction(state engine.GameState, legal []engine.Action) engine.Action {
	if state.Round.Phase == engine.PhasePlaying {
		return lowestLegalPlay(legal)
	}
	sort.Slice(legal, func(i, j int) bool {
		return legal[i].Amount < legal[j].Amount
	})
	// Open the auction now and then so that contracts other than a forced
	// take get played.
	if state.Round.Number%2 == 1 && len(legal) > 1 {
		return legal[1]
	}
	return legal[0]
}

func lowestLegalPlay(legal []engine.Action) engine.Action {
	best := legal[0]
	bestScore := 1<<31 - 1
	for _, a := range legal {
		if a.Type != engine.ActionPlayCard {
			continue
		}
		score := engine.GamePoints(a.Card.Rank)*100 + int(a.Card.Rank)
		if score < bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

func checkInvariants(state engine.GameState) error {
	if !state.Round.HandsDealt {
		return nil
	}
	total, dup := countCards(state)
	if total != 52 {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if n := len(state.Round.Trick.Cards); n > 3 {
		return fmt.Errorf("invalid trick size: %d", n)
	}
	switch state.Round.Phase {
	case engine.PhaseBidding:
		if len(state.Round.Bids) > 3 || state.Round.Trump != nil {
			return fmt.Errorf("auction state inconsistent: %d bids", len(state.Round.Bids))
		}
	case engine.PhasePlaying:
		if state.Round.BidWinner == engine.SeatNone || state.Round.BidValue < state.Rules.MinBid {
			return fmt.Errorf("playing without a contract")
		}
		played := len(state.Round.Tricks)
		for _, p := range state.Players {
			inTrick := 0
			for _, tc := range state.Round.Trick.Cards {
				if tc.Seat == p.Seat {
					inTrick++
				}
			}
			if len(p.Hand)+played+inTrick != state.Rules.HandSize {
				return fmt.Errorf("%v hand size %d after %d tricks", p.Seat, len(p.Hand), played)
			}
		}
	case engine.PhaseGameOver:
		if state.Winner == engine.TeamNone {
			return fmt.Errorf("game over without a winner")
		}
		if state.Scores[state.Winner] < state.Rules.WinScore {
			return fmt.Errorf("%v won with %d", state.Winner, state.Scores[state.Winner])
		}
	default:
		return fmt.Errorf("engine came to rest in %v", state.Round.Phase)
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range state.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, trick := range state.Round.Tricks {
		for _, tc := range trick.Cards {
			add(tc.Card)
		}
	}
	for _, tc := range state.Round.Trick.Cards {
		add(tc.Card)
	}
	return total, dup
}

func failure(seed int64, state engine.GameState, step int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[h%d s%d %v] %v\n", r.Hand, r.Step, r.Seat, r.A)
	}
	return fmt.Errorf("seed=%d hand=%d step=%d phase=%v scores=%v reason=%s\nlast actions:\n%s",
		seed, state.Round.Number, step, state.Round.Phase, state.Scores, reason, log)
}
