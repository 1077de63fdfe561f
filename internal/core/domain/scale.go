package domain

const (
	// DefaultScaleSize is the number of positions on the dial.
	DefaultScaleSize = 40
	// GoalZoneWidth is fixed; the 3/2/1 scoring table assumes it.
	GoalZoneWidth = 5
)

// Scale is the ordered range of positions 0..Size-1 a player can pick from.
type Scale struct {
	Size int `json:"size"`
}

func NewScale(size int) (Scale, error) {
	if size < GoalZoneWidth {
		return Scale{}, ErrInvalidScale
	}
	return Scale{Size: size}, nil
}

// Contains reports whether position is a valid pick on the scale.
func (s Scale) Contains(position int) bool {
	return position >= 0 && position < s.Size
}

// MaxZoneStart is the largest start a goal zone can have on this scale.
func (s Scale) MaxZoneStart() int {
	return s.Size - GoalZoneWidth
}

// GoalZone is the inclusive range [Start, End] that counts as a hit.
type GoalZone struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewGoalZone places a zone of GoalZoneWidth positions starting at start.
func NewGoalZone(scale Scale, start int) (GoalZone, error) {
	end := start + GoalZoneWidth - 1
	if start < 0 || !scale.Contains(end) {
		return GoalZone{}, ErrInvalidGoalZone
	}
	return GoalZone{Start: start, End: end}, nil
}

// Center is the bullseye position. With an even width it rounds down.
func (z GoalZone) Center() int {
	sum := z.Start + z.End
	if sum < 0 && sum%2 != 0 {
		return sum/2 - 1
	}
	return sum / 2
}

func (z GoalZone) Contains(position int) bool {
	return position >= z.Start && position <= z.End
}
