package settlement

import (
	"golf-wager/internal/domain"
)

var (
	testPars    = [HolesPerRound]int{4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4}
	testIndices = [HolesPerRound]int{7, 11, 15, 1, 3, 17, 13, 5, 9, 8, 16, 2, 6, 12, 4, 18, 10, 14}
)

func testCourse() []domain.Hole {
	holes := make([]domain.Hole, HolesPerRound)
	for i := range holes {
		holes[i] = domain.Hole{Number: i + 1, Par: testPars[i], StrokeIndex: testIndices[i]}
	}
	return holes
}

func hcp(v float64) *float64 {
	return &v
}

func player(id string, team domain.Team, index float64) domain.Player {
	return domain.Player{ID: id, DisplayName: id, HandicapIndex: hcp(index), Team: team}
}

// card records gross scores on consecutive holes starting at hole 1.
func card(playerID string, gross ...int) []domain.HoleScore {
	scores := make([]domain.HoleScore, len(gross))
	for i, g := range gross {
		scores[i] = domain.HoleScore{PlayerID: playerID, HoleNumber: i + 1, Gross: g}
	}
	return scores
}

// pars returns par for holes 1..n.
func pars(n int) []int {
	out := make([]int, n)
	copy(out, testPars[:n])
	return out
}

// plus returns par+d for holes 1..n.
func plus(n, d int) []int {
	out := pars(n)
	for i := range out {
		out[i] += d
	}
	return out
}

func tag(scores []domain.HoleScore, hole int, tags ...domain.Tag) []domain.HoleScore {
	for i := range scores {
		if scores[i].HoleNumber == hole {
			scores[i].Tags = domain.NewTags(tags...)
		}
	}
	return scores
}

func nassauConfig(mode domain.TeamMode, wager domain.Money) domain.WagerConfig {
	return domain.WagerConfig{Format: domain.FormatNassau, WagerAmount: wager, TeamMode: mode}
}

func skinsConfig(wager domain.Money) domain.WagerConfig {
	return domain.WagerConfig{Format: domain.FormatSkins, WagerAmount: wager}
}

func concat(cards ...[]domain.HoleScore) []domain.HoleScore {
	var out []domain.HoleScore
	for _, c := range cards {
		out = append(out, c...)
	}
	return out
}

func labels(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Label
	}
	return out
}

func findLine(lines []Line, label string) (Line, bool) {
	for _, l := range lines {
		if l.Label == label {
			return l, true
		}
	}
	return Line{}, false
}

func sumTotals(res *Result) domain.Money {
	var sum domain.Money
	for _, t := range res.Totals {
		sum += t
	}
	return sum
}
