package game

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"time"

	"lifecounter/internal/counter"
	"lifecounter/pkg/realtime"
)

// Store holds tables and delegates to realtime.RoomStore for lookup and broadcast.
type Store struct {
	r     *realtime.RoomStore[*Table]
	sched realtime.Scheduler
	opts  counter.Options
}

// NewStore creates an in-memory table store. Counter animations run on sched.
func NewStore(sched realtime.Scheduler, opts counter.Options) *Store {
	if sched == nil {
		sched = realtime.ClockScheduler{}
	}
	return &Store{
		r:     realtime.NewRoomStore[*Table](),
		sched: sched,
		opts:  opts,
	}
}

// CreateTable starts a new table at the setup scene.
func (s *Store) CreateTable() *Table {
	id := newID()
	t := newTable(id, s.sched, s.opts, func(event string) {
		s.r.Publish(id, event)
	})
	s.r.Create(id, t)
	return t
}

// GetTable returns a table by ID if it exists.
func (s *Store) GetTable(id string) (*Table, bool) {
	room, ok := s.r.Get(id)
	if !ok || room.State == nil {
		return nil, false
	}
	return room.State, true
}

// DeleteTable stops a table's animations and forgets it.
func (s *Store) DeleteTable(id string) {
	t, ok := s.r.Delete(id)
	if ok && t != nil {
		t.Close()
	}
}

// Prune forgets tables that have been unused for longer than maxIdle and have
// no open streams. It returns how many were removed.
func (s *Store) Prune(maxIdle time.Duration) int {
	removed := 0
	for _, id := range s.r.Idle(maxIdle) {
		if t, ok := s.r.Delete(id); ok {
			if t != nil {
				t.Close()
			}
			removed++
		}
	}
	return removed
}

// Len reports how many tables are held.
func (s *Store) Len() int {
	return s.r.Len()
}

// Broadcaster returns the broadcaster for a table, or nil if the table is gone.
func (s *Store) Broadcaster(id string) *realtime.Broadcaster {
	return s.r.Broadcaster(id)
}

// Publish notifies subscribers of a table with a typed event.
func (s *Store) Publish(id string, event string) {
	s.r.Publish(id, event)
}

// PublishAll notifies every table, e.g. after the theme changes.
func (s *Store) PublishAll(event string) {
	s.r.PublishAll(event)
}

func newID() string {
	// 10 bytes -> 16 chars of base32, short and url-safe.
	buf := make([]byte, 10)
	_, _ = rand.Read(buf)
	encoder := base32.StdEncoding.WithPadding(base32.NoPadding)
	return strings.ToLower(encoder.EncodeToString(buf))
}

func now() time.Time {
	return time.Now().UTC()
}
