package domain

import "sort"

const (
	BullseyePoints = 3
	NearPoints     = 2
	EdgePoints     = 1
)

// RoundResult is one player's outcome for a revealed round.
type RoundResult struct {
	Player      string `json:"player"`
	Position    *int   `json:"position,omitempty"`
	RoundPoints int    `json:"round_points"`
	Total       int    `json:"total"`
}

// ScoreVote converts a position into points for the given zone. It is total
// over ints: positions outside the zone score 0 and nothing is validated.
func ScoreVote(position int, zone GoalZone) int {
	if !zone.Contains(position) {
		return 0
	}

	distance := position - zone.Center()
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return BullseyePoints
	case 1:
		return NearPoints
	case 2:
		return EdgePoints
	default:
		return 0
	}
}

// ApplyRound scores every player in order and adds the points to their prior
// total. Players missing from votes score 0, players missing from prior start
// at 0. Neither map is modified.
func ApplyRound(players []string, votes map[string]int, zone GoalZone, prior map[string]int) []RoundResult {
	results := make([]RoundResult, 0, len(players))
	for _, player := range players {
		result := RoundResult{Player: player, Total: prior[player]}
		if position, ok := votes[player]; ok {
			p := position
			result.Position = &p
			result.RoundPoints = ScoreVote(position, zone)
		}
		result.Total += result.RoundPoints
		results = append(results, result)
	}
	return results
}

// Rank returns a copy of results ordered by Total, highest first. Ties keep
// their input order.
func Rank(results []RoundResult) []RoundResult {
	ranked := make([]RoundResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}
