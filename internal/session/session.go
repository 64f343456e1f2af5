// Package session owns the live player list and life totals for one game.
package session

import (
	"errors"
	"sync"

	"lifecounter/internal/roster"
)

// StartingLife is the life total every player begins with.
const StartingLife = 40

var ErrUnknownPlayer = errors.New("unknown player")

// Player is one seat at the table. ID is the 0-based roster index.
type Player struct {
	ID   int
	Name string
	Life int
}

// Observer is told about every authoritative life change, in order.
type Observer func(id int, life int)

// Session holds authoritative player state until the game is reset.
type Session struct {
	mu       sync.Mutex
	players  []Player
	observer Observer
}

// New builds one player per roster entry at StartingLife.
func New(r roster.Roster) *Session {
	count := roster.Clamp(r.PlayerCount)
	players := make([]Player, count)
	for i := range players {
		name := roster.DefaultName(i)
		if i < len(r.PlayerNames) {
			name = roster.ResolveName(i, r.PlayerNames[i])
		}
		players[i] = Player{ID: i, Name: name, Life: StartingLife}
	}
	return &Session{players: players}
}

// SetObserver registers fn to receive life changes. It is called with the
// session lock held so changes arrive in order; fn must not call back into
// the session.
func (s *Session) SetObserver(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

// Increment adds one life to the player.
func (s *Session) Increment(id int) error {
	return s.adjust(id, 1)
}

// Decrement removes one life from the player. Life may go negative.
func (s *Session) Decrement(id int) error {
	return s.adjust(id, -1)
}

// Dispatch applies a command sent up from a counter.
func (s *Session) Dispatch(cmd Command) error {
	return s.adjust(cmd.PlayerID(), cmd.Delta())
}

func (s *Session) adjust(id int, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.players) {
		return ErrUnknownPlayer
	}
	s.players[id].Life += delta
	if s.observer != nil {
		s.observer(id, s.players[id].Life)
	}
	return nil
}

// Players returns a snapshot of all players in seat order.
func (s *Session) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Player returns one player by id.
func (s *Session) Player(id int) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.players) {
		return Player{}, false
	}
	return s.players[id], true
}

// PlayerCount returns the number of seats.
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Layout returns the board arrangement for this session.
func (s *Session) Layout() Layout {
	return LayoutFor(s.PlayerCount())
}
