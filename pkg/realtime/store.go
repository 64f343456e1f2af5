package realtime

import (
	"sync"
	"time"
)

// Room is one keyed entry: its state, its subscribers and when it was last used.
type Room[T any] struct {
	ID       string
	State    T
	hub      *Broadcaster
	lastSeen time.Time
}

// RoomStore keeps rooms by id. Each room owns a Broadcaster for its subscribers.
type RoomStore[T any] struct {
	mu    sync.RWMutex
	rooms map[string]*Room[T]
	now   func() time.Time
}

// NewRoomStore creates an empty store.
func NewRoomStore[T any]() *RoomStore[T] {
	return &RoomStore[T]{
		rooms: make(map[string]*Room[T]),
		now:   time.Now,
	}
}

// Create registers state under id, replacing any previous room.
func (s *RoomStore[T]) Create(id string, state T) *Room[T] {
	room := &Room[T]{ID: id, State: state, hub: NewBroadcaster(), lastSeen: s.now()}
	s.mu.Lock()
	s.rooms[id] = room
	s.mu.Unlock()
	return room
}

// Get looks up a room and marks it as used.
func (s *RoomStore[T]) Get(id string) (*Room[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if ok {
		room.lastSeen = s.now()
	}
	return room, ok
}

// Delete removes a room and returns its state. Open subscriptions stay valid
// until their owners unsubscribe.
func (s *RoomStore[T]) Delete(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.rooms, id)
	return room.State, true
}

// Idle returns the ids of rooms unused for longer than maxIdle that have no
// subscribers.
func (s *RoomStore[T]) Idle(maxIdle time.Duration) []string {
	cutoff := s.now().Add(-maxIdle)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []string
	for id, room := range s.rooms {
		if room.lastSeen.Before(cutoff) && room.hub.Subscribers() == 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len reports the number of rooms.
func (s *RoomStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Broadcaster returns the room's broadcaster, or nil for an unknown id.
func (s *RoomStore[T]) Broadcaster(id string) *Broadcaster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if room, ok := s.rooms[id]; ok {
		return room.hub
	}
	return nil
}

// Publish sends event to one room's subscribers. Unknown ids are ignored.
func (s *RoomStore[T]) Publish(id string, event string) {
	if hub := s.Broadcaster(id); hub != nil {
		hub.Publish(event)
	}
}

// PublishAll sends event to every room.
func (s *RoomStore[T]) PublishAll(event string) {
	s.mu.RLock()
	hubs := make([]*Broadcaster, 0, len(s.rooms))
	for _, room := range s.rooms {
		hubs = append(hubs, room.hub)
	}
	s.mu.RUnlock()
	for _, hub := range hubs {
		hub.Publish(event)
	}
}
