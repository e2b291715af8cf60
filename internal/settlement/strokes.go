package settlement

import (
	"math"

	"golf-wager/internal/domain"
)

// CourseHandicap rounds a handicap index to whole strokes, half away from zero.
func CourseHandicap(index float64) int {
	return int(math.Round(index))
}

// Allowance is the number of strokes a handicap receives on a hole of the given
// stroke index: floor(hcp/18) plus one more on the hcp mod 18 hardest holes.
// Plus handicaps give strokes back on the easiest holes.
func Allowance(hcp, strokeIndex int) int {
	base := floorDiv(hcp, HolesPerRound)
	if strokeIndex <= hcp-base*HolesPerRound {
		base++
	}
	return base
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// teamSpot returns the team that receives the extra team stroke in 2v2 play and
// the handicap difference that decides which holes carry it. diff is 0 when the
// teams are level.
func teamSpot(players []domain.Player, hcp map[string]int) (domain.Team, int) {
	var a, b int
	for _, p := range players {
		switch p.Team {
		case domain.TeamA:
			a += hcp[p.ID]
		case domain.TeamB:
			b += hcp[p.ID]
		}
	}
	switch {
	case a > b:
		return domain.TeamA, a - b
	case b > a:
		return domain.TeamB, b - a
	default:
		return "", 0
	}
}

func receivesTeamStroke(diff, strokeIndex int) bool {
	return diff > 0 && strokeIndex <= diff
}

// strokeSpread is the gap between the highest and lowest course handicap in the match.
func strokeSpread(players []domain.Player, hcp map[string]int) int {
	if len(players) == 0 {
		return 0
	}
	lo, hi := hcp[players[0].ID], hcp[players[0].ID]
	for _, p := range players[1:] {
		h := hcp[p.ID]
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return hi - lo
}
