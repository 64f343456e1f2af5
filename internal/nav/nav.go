// Package nav models the app's screen stack.
package nav

import (
	"errors"
	"sync"

	"lifecounter/internal/roster"
)

// Scene names a screen.
type Scene string

const (
	SceneSetup Scene = "Setup"
	SceneHome  Scene = "Home"
)

var ErrMissingRoster = errors.New("home scene requires a roster")

// Route is a scene plus its payload. Only SceneHome carries a roster.
type Route struct {
	Scene  Scene
	Roster *roster.Roster
}

// SetupRoute is the root route.
func SetupRoute() Route {
	return Route{Scene: SceneSetup}
}

// HomeRoute is the transition from setup into a session.
func HomeRoute(r roster.Roster) Route {
	names := make([]string, len(r.PlayerNames))
	copy(names, r.PlayerNames)
	return Route{Scene: SceneHome, Roster: &roster.Roster{PlayerCount: r.PlayerCount, PlayerNames: names}}
}

// Navigator is the stack discipline controllers depend on.
type Navigator interface {
	Push(route Route) error
	Reset(route Route) error
	Back() bool
	Current() Route
	Depth() int
}

// Stack is an in-memory Navigator.
type Stack struct {
	mu     sync.Mutex
	routes []Route
}

// NewStack starts a stack at the setup scene.
func NewStack() *Stack {
	return &Stack{routes: []Route{SetupRoute()}}
}

func validate(route Route) error {
	if route.Scene == SceneHome && route.Roster == nil {
		return ErrMissingRoster
	}
	return nil
}

// Push puts route on top of the stack.
func (s *Stack) Push(route Route) error {
	if err := validate(route); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, route)
	return nil
}

// Reset replaces the whole history with route.
func (s *Stack) Reset(route Route) error {
	if err := validate(route); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = []Route{route}
	return nil
}

// Back pops the top route unless it is the root.
func (s *Stack) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Current returns the top route.
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes in history.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.routes)
}
