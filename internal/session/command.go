package session

// Command is an intent sent up from a counter to the session.
type Command interface {
	PlayerID() int
	Delta() int
}

// Increment asks for one more life.
type Increment struct{ ID int }

func (c Increment) PlayerID() int { return c.ID }
func (c Increment) Delta() int    { return 1 }

// Decrement asks for one less life.
type Decrement struct{ ID int }

func (c Decrement) PlayerID() int { return c.ID }
func (c Decrement) Delta() int    { return -1 }

// Dispatcher accepts commands. *Session implements it.
type Dispatcher interface {
	Dispatch(cmd Command) error
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(cmd Command) error

func (f DispatcherFunc) Dispatch(cmd Command) error { return f(cmd) }
