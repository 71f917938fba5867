package server

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mikey-Burns/Setback/internal/bots"
	"github.com/Mikey-Burns/Setback/internal/config"
	"github.com/Mikey-Burns/Setback/internal/engine"
	"github.com/Mikey-Burns/Setback/internal/player"
	"github.com/Mikey-Burns/Setback/internal/protocol"
)

var (
	ErrLobbyClosed = errors.New("lobby is closed")
	ErrMatchGone   = errors.New("match is no longer available")
)

// Match is one table: an engine plus the bot seats the lobby runs for it.
type Match struct {
	ID      uuid.UUID
	Engine  *engine.GameEngine
	Created time.Time
	cancel  context.CancelFunc

	// Guarded by the lobby mutex.
	sessions int
}

// Open reports whether a human can still take a seat.
func (m *Match) Open() bool {
	return m.Engine.Phase() == engine.PhaseWaitingForPlayers && m.Engine.SeatsFilled() < len(engine.Seats)
}

// Lobby creates matches and keeps them addressable by id.
type Lobby struct {
	mu      sync.Mutex
	ctx     context.Context
	cfg     config.Config
	log     *slog.Logger
	matches map[uuid.UUID]*Match
	created int
	closed  bool
}

func NewLobby(ctx context.Context, cfg config.Config, log *slog.Logger) *Lobby {
	return &Lobby{
		ctx:     ctx,
		cfg:     cfg,
		log:     log,
		matches: map[uuid.UUID]*Match{},
	}
}

// Create starts a new match and seats the configured number of bots in the
// highest seats, leaving PLAYER_ONE onwards for people.
func (l *Lobby) Create() (*Match, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.createLocked()
}

func (l *Lobby) createLocked() (*Match, error) {
	if l.closed || l.ctx.Err() != nil {
		return nil, ErrLobbyClosed
	}
	seed := l.cfg.MatchSeed(l.created)
	l.created++
	ctx, cancel := context.WithCancel(l.ctx)
	m := &Match{
		ID:      uuid.New(),
		Engine:  engine.New(l.cfg.Rules(), seed),
		Created: time.Now(),
		cancel:  cancel,
	}
	l.matches[m.ID] = m
	l.log.Info("match created", "match", m.ID, "seed", seed, "bots", l.cfg.Bots)

	for i := 0; i < l.cfg.Bots; i++ {
		seat := engine.Seats[len(engine.Seats)-1-i]
		ctrl := player.New(m.Engine)
		if reply := ctrl.ProcessInput(protocol.NewCommandMessage(protocol.RequestFor(seat))); reply != protocol.Selected(seat) {
			l.log.Error("bot seat rejected", "match", m.ID, "seat", seat, "reply", reply)
			continue
		}
		b := l.newBot(seed + int64(seat))
		go runBot(ctx, l.log.With("match", m.ID, "seat", seat), m.Engine, ctrl, b, l.cfg.BotPoll())
	}
	return m, nil
}

func (l *Lobby) newBot(seed int64) bots.Bot {
	if l.cfg.BotLevel == "easy" {
		return bots.NewEasy(seed)
	}
	return bots.NewNormal(seed)
}

func (l *Lobby) Get(id uuid.UUID) (*Match, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.matches[id]
	return m, ok
}

// Join returns the newest match that still has a free seat, creating one
// when every match is full.
func (l *Lobby) Join() (*Match, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrLobbyClosed
	}
	l.sweepLocked()

	var newest *Match
	for _, m := range l.matches {
		if !m.Open() {
			continue
		}
		if newest == nil || m.Created.After(newest.Created) {
			newest = m
		}
	}
	if newest != nil {
		return newest, nil
	}
	return l.createLocked()
}

// Enter records a connected session on m. It fails once m has been dropped.
func (l *Lobby) Enter(m *Match) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLobbyClosed
	}
	if l.matches[m.ID] != m {
		return ErrMatchGone
	}
	m.sessions++
	return nil
}

// Leave undoes Enter. A match is dropped when its last session leaves.
func (l *Lobby) Leave(m *Match) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m.sessions > 0 {
		m.sessions--
	}
	if m.sessions == 0 && l.matches[m.ID] == m {
		l.dropLocked(m, "abandoned")
	}
}

// sweepLocked drops finished matches nobody is connected to.
func (l *Lobby) sweepLocked() {
	for _, m := range l.matches {
		if m.sessions == 0 && m.Engine.Phase() == engine.PhaseGameOver {
			l.dropLocked(m, "finished")
		}
	}
}

func (l *Lobby) dropLocked(m *Match, reason string) {
	m.cancel()
	delete(l.matches, m.ID)
	l.log.Info("match dropped", "match", m.ID, "reason", reason)
}

func (l *Lobby) List() []MatchView {
	l.mu.Lock()
	l.sweepLocked()
	ms := make([]*Match, 0, len(l.matches))
	for _, m := range l.matches {
		ms = append(ms, m)
	}
	l.mu.Unlock()

	sort.Slice(ms, func(i, j int) bool { return ms[i].Created.Before(ms[j].Created) })
	out := make([]MatchView, 0, len(ms))
	for _, m := range ms {
		out = append(out, BuildMatchView(m))
	}
	return out
}

// Close stops every bot loop. No match can be created or entered afterwards.
func (l *Lobby) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	for _, m := range l.matches {
		m.cancel()
	}
}

// runBot plays one seat through its own controller, the same way a remote
// client would: poll for news, then act when the seat is on turn.
func runBot(ctx context.Context, log *slog.Logger, game *engine.GameEngine, ctrl *player.Controller, b bots.Bot, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		for {
			reply := ctrl.ProcessInput(protocol.NewCommandMessage(protocol.NoCommand))
			if reply == protocol.ReplyExit {
				log.Info("bot finished")
				return
			}
			if reply == protocol.ReplyNoCommand {
				break
			}
			log.Debug("bot observed", "event", reply)
		}

		state := game.Snapshot()
		seat, ok := engine.CurrentPlayer(state)
		if !ok || seat != ctrl.MyNumber() {
			continue
		}
		action := b.ChooseAction(state, seat)
		reply := ctrl.ProcessInput(protocol.CommandFor(action))
		log.Info("bot acted", "action", action.String(), "reply", reply)
	}
}
