package viewmodel

// Theme holds the active mode and its colors.
type Theme struct {
	Mode       string
	Background string
	Text       string
	Card       string
	Button     string
}

// NameField is one player-name input on the setup form.
type NameField struct {
	Index       int
	Value       string
	Placeholder string
}

// SetupPage holds data for the setup screen.
type SetupPage struct {
	Title       string
	Theme       Theme
	Choices     []int
	PlayerCount int
	Names       []NameField
}

// Counter holds data for one player's counter fragment.
type Counter struct {
	ID        int
	Name      string
	Displayed int
	Indicator string
	Pulse     int
	PulseMs   int
	StepMs    int
	Animating bool
	// Inverted rotates the card for the player sitting across the table.
	Inverted bool
}

// HomePage holds data for the session screen.
type HomePage struct {
	Title  string
	Theme  Theme
	Layout string
	Rows   [][]Counter
}
