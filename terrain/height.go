package terrain

import "fmt"

// Height maps a terrain symbol to its elevation:
// 'S' → 0, 'E' → 25, 'a'..'z' → 0..25.
// Any other rune yields ErrInvalidSymbol.
func Height(sym rune) (int, error) {
	switch {
	case sym == StartSymbol:
		return MinHeight, nil
	case sym == GoalSymbol:
		return MaxHeight, nil
	case sym >= 'a' && sym <= 'z':
		return int(sym - 'a'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
}
