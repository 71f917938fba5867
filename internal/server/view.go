package server

import (
	"time"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

type SeatView struct {
	Seat     string `json:"seat"`
	Occupied bool   `json:"occupied"`
	Cards    int    `json:"cards"`
}

// MatchView is the public summary served by /matches. It never includes
// the cards themselves.
type MatchView struct {
	ID      string     `json:"id"`
	Seats   int        `json:"seats"`
	Phase   string     `json:"phase"`
	Dealer  string     `json:"dealer"`
	Scores  []int      `json:"scores"`
	Winner  string     `json:"winner,omitempty"`
	Players []SeatView `json:"players"`
	Created time.Time  `json:"created"`
}

func BuildMatchView(m *Match) MatchView {
	g := m.Engine.Snapshot()
	players := make([]SeatView, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, SeatView{
			Seat:     p.Seat.String(),
			Occupied: p.Occupant != "",
			Cards:    len(p.Hand),
		})
	}
	view := MatchView{
		ID:      m.ID.String(),
		Seats:   g.SeatsFilled(),
		Phase:   g.Round.Phase.String(),
		Dealer:  g.Round.Dealer.String(),
		Scores:  []int{g.Scores[engine.TeamOne], g.Scores[engine.TeamTwo]},
		Players: players,
		Created: m.Created,
	}
	if g.Winner != engine.TeamNone {
		view.Winner = g.Winner.String()
	}
	return view
}
