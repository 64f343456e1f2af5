package session

// Layout names how counters are arranged on the board.
type Layout string

const (
	// LayoutStacked is two full-width halves for face-to-face seating.
	LayoutStacked Layout = "stacked"
	// LayoutTopPair is two cards side by side over one full-width card.
	LayoutTopPair Layout = "top-pair"
	// LayoutGrid is a two-column grid.
	LayoutGrid Layout = "grid"
)

// LayoutFor picks the layout for a player count.
func LayoutFor(playerCount int) Layout {
	switch playerCount {
	case 2:
		return LayoutStacked
	case 3:
		return LayoutTopPair
	default:
		return LayoutGrid
	}
}

// Rows groups seat ids into display rows for the layout.
func (l Layout) Rows(playerCount int) [][]int {
	switch l {
	case LayoutStacked:
		rows := make([][]int, 0, playerCount)
		for i := 0; i < playerCount; i++ {
			rows = append(rows, []int{i})
		}
		return rows
	case LayoutTopPair:
		return [][]int{{0, 1}, {2}}
	default:
		rows := make([][]int, 0, (playerCount+1)/2)
		for i := 0; i < playerCount; i += 2 {
			if i+1 < playerCount {
				rows = append(rows, []int{i, i + 1})
			} else {
				rows = append(rows, []int{i})
			}
		}
		return rows
	}
}
