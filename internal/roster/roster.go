// Package roster collects the player count and names before a game starts.
package roster

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

const (
	MinPlayers     = 2
	MaxPlayers     = 4
	DefaultPlayers = 2
)

// PlayerCountChoices are the only counts offered by the setup form.
var PlayerCountChoices = []int{2, 3, 4}

var (
	ErrInvalidPlayerCount = errors.New("player count must be 2, 3 or 4")
	ErrInvalidPlayerIndex = errors.New("player index out of range")
)

// Roster is the finalized player list handed to a session.
type Roster struct {
	PlayerCount int
	PlayerNames []string
}

// DefaultName returns the positional name used for a blank entry.
func DefaultName(index int) string {
	return "Player " + strconv.Itoa(index+1)
}

// ResolveName trims text and falls back to the positional default when blank.
func ResolveName(index int, text string) string {
	name := strings.TrimSpace(text)
	if name == "" {
		return DefaultName(index)
	}
	return name
}

// ValidCount reports whether n is one of the offered player counts.
func ValidCount(n int) bool {
	return n >= MinPlayers && n <= MaxPlayers
}

// Clamp forces n into the supported player range.
func Clamp(n int) int {
	if n < MinPlayers {
		return MinPlayers
	}
	if n > MaxPlayers {
		return MaxPlayers
	}
	return n
}

// Setup holds the setup form: a player count and one raw name per slot.
type Setup struct {
	mu    sync.Mutex
	count int
	names []string
}

// NewSetup returns a form with the default count and blank names.
func NewSetup() *Setup {
	return &Setup{
		count: DefaultPlayers,
		names: make([]string, DefaultPlayers),
	}
}

// SetPlayerCount changes the count and blanks every name slot, including
// slots that existed before the change.
func (s *Setup) SetPlayerCount(n int) error {
	if !ValidCount(n) {
		return ErrInvalidPlayerCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
	s.names = make([]string, n)
	return nil
}

// SetName stores text verbatim; normalization happens in Confirm.
func (s *Setup) SetName(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= s.count {
		return ErrInvalidPlayerIndex
	}
	s.names[index] = text
	return nil
}

// PlayerCount returns the selected count.
func (s *Setup) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Names returns a copy of the raw name slots.
func (s *Setup) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Confirm builds the roster from the current form state.
func (s *Setup) Confirm() Roster {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, s.count)
	for i := range names {
		names[i] = ResolveName(i, s.names[i])
	}
	return Roster{PlayerCount: s.count, PlayerNames: names}
}
