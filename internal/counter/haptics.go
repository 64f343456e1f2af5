package counter

// ImpactStyle is the strength of a haptic tap.
type ImpactStyle string

const (
	ImpactLight  ImpactStyle = "light"
	ImpactMedium ImpactStyle = "medium"
	ImpactHeavy  ImpactStyle = "heavy"
)

// Haptics triggers tactile feedback. Impact must not block; it is never
// awaited or retried.
type Haptics interface {
	Impact(style ImpactStyle)
}

// HapticsFunc adapts a function to Haptics.
type HapticsFunc func(style ImpactStyle)

func (f HapticsFunc) Impact(style ImpactStyle) { f(style) }

// NoHaptics discards feedback.
type NoHaptics struct{}

func (NoHaptics) Impact(ImpactStyle) {}
