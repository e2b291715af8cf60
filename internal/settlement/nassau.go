package settlement

import (
	"fmt"

	"golf-wager/internal/domain"
)

type holePoints struct {
	a, b     int
	complete bool
}

type leg struct {
	label   string
	from    int
	to      int
	isPress bool
}

var fixedLegs = []leg{
	{label: "Front 9", from: 1, to: 9},
	{label: "Back 9", from: 10, to: 18},
	{label: "Overall", from: 1, to: 18},
}

// resolveNassau produces the leg lines for team A and team B. Amounts on the
// B lines are the negation of the A lines.
func (m *Match) resolveNassau() (teamA, teamB []Line) {
	points := m.nassauPoints()

	for _, lg := range fixedLegs {
		if !legComplete(points, lg.from, lg.to) {
			continue
		}
		a, b := legTotals(points, lg.from, lg.to)
		amount := m.legAmount(a, b)
		teamA = append(teamA, Line{Label: lg.label, Sublabel: scoreline(a, b), Amount: amount})
		teamB = append(teamB, Line{Label: lg.label, Sublabel: scoreline(b, a), Amount: -amount})
	}

	last := lastPlayed(points)
	for _, p := range m.presses {
		if last < p.StartHole || !anyComplete(points, p.StartHole, last) {
			continue
		}
		label := fmt.Sprintf("Press %d (%s)", p.StartHole, p.PressedByTeam)
		a, b := legTotals(points, p.StartHole, last)
		span := holeSpan(p.StartHole, last)

		if !legComplete(points, p.StartHole, last) {
			teamA = append(teamA, Line{Label: label, Sublabel: span + ", " + scoreline(a, b) + " pending", IsPress: true})
			teamB = append(teamB, Line{Label: label, Sublabel: span + ", " + scoreline(b, a) + " pending", IsPress: true})
			continue
		}
		amount := m.legAmount(a, b)
		teamA = append(teamA, Line{Label: label, Sublabel: span + ", " + scoreline(a, b), Amount: amount, IsPress: true})
		teamB = append(teamB, Line{Label: label, Sublabel: span + ", " + scoreline(b, a), Amount: -amount, IsPress: true})
	}
	return teamA, teamB
}

func (m *Match) legAmount(a, b int) domain.Money {
	switch {
	case a > b:
		return m.cfg.WagerAmount
	case b > a:
		return -m.cfg.WagerAmount
	default:
		return 0
	}
}

func (m *Match) nassauPoints() [HolesPerRound]holePoints {
	var points [HolesPerRound]holePoints
	sideA, sideB := m.team(domain.TeamA), m.team(domain.TeamB)
	ids := playerIDs(m.ledger.players)
	weaker, diff := teamSpot(m.ledger.players, m.hcp)

	for n := 1; n <= HolesPerRound; n++ {
		if !m.ledger.IsHoleComplete(ids, n) {
			continue
		}
		hole, _ := m.ledger.Hole(n)
		var hp holePoints
		hp.complete = true

		if m.cfg.TeamMode == domain.TeamModeFours {
			teamStroke := receivesTeamStroke(diff, hole.StrokeIndex)
			netA := m.teamNets(sideA, n, teamStroke && weaker == domain.TeamA)
			netB := m.teamNets(sideB, n, teamStroke && weaker == domain.TeamB)

			award(&hp, compare(minOf(netA), minOf(netB)), 1)
			award(&hp, compare(sumOf(netA), sumOf(netB)), 1)

			if m.cfg.SideBets.BirdiesDouble {
				hp.a += m.birdies(sideA, hole)
				hp.b += m.birdies(sideB, hole)
			}
		} else {
			pa, pb := sideA[0].ID, sideB[0].ID
			na, _ := m.Net(pa, n)
			nb, _ := m.Net(pb, n)
			winner := compare(na, nb)
			value := 1
			if m.cfg.SideBets.BirdiesDouble {
				switch winner {
				case domain.TeamA:
					value += m.birdies(sideA, hole)
				case domain.TeamB:
					value += m.birdies(sideB, hole)
				}
			}
			award(&hp, winner, value)
		}

		if m.cfg.SideBets.Greenies && hole.Par == 3 {
			if m.sideTagged(sideA, n, domain.TagGreenie) {
				hp.a++
			}
			if m.sideTagged(sideB, n, domain.TagGreenie) {
				hp.b++
			}
		}
		points[n-1] = hp
	}
	return points
}

// teamNets returns the side's net scores on a hole in listing order. When the
// side receives the team stroke it goes to its lowest net scorer, first listed
// player on ties.
func (m *Match) teamNets(side []domain.Player, hole int, teamStroke bool) []int {
	nets := make([]int, len(side))
	low := 0
	for i, p := range side {
		nets[i], _ = m.Net(p.ID, hole)
		if nets[i] < nets[low] {
			low = i
		}
	}
	if teamStroke {
		nets[low]--
	}
	return nets
}

// birdies counts players on the side with a gross score under par.
func (m *Match) birdies(side []domain.Player, hole domain.Hole) int {
	count := 0
	for _, p := range side {
		if s, ok := m.ledger.ScoreFor(p.ID, hole.Number); ok && s.Gross < hole.Par {
			count++
		}
	}
	return count
}

func (m *Match) sideTagged(side []domain.Player, hole int, tag domain.Tag) bool {
	for _, p := range side {
		if s, ok := m.ledger.ScoreFor(p.ID, hole); ok && s.Tags.Has(tag) {
			return true
		}
	}
	return false
}

// compare returns the team with the lower score, or "" on a tie.
func compare(a, b int) domain.Team {
	switch {
	case a < b:
		return domain.TeamA
	case b < a:
		return domain.TeamB
	default:
		return ""
	}
}

func award(hp *holePoints, winner domain.Team, value int) {
	switch winner {
	case domain.TeamA:
		hp.a += value
	case domain.TeamB:
		hp.b += value
	}
}

func legComplete(points [HolesPerRound]holePoints, from, to int) bool {
	for n := from; n <= to; n++ {
		if !points[n-1].complete {
			return false
		}
	}
	return true
}

func anyComplete(points [HolesPerRound]holePoints, from, to int) bool {
	for n := from; n <= to; n++ {
		if points[n-1].complete {
			return true
		}
	}
	return false
}

func legTotals(points [HolesPerRound]holePoints, from, to int) (a, b int) {
	for n := from; n <= to; n++ {
		a += points[n-1].a
		b += points[n-1].b
	}
	return a, b
}

func lastPlayed(points [HolesPerRound]holePoints) int {
	for n := HolesPerRound; n >= 1; n-- {
		if points[n-1].complete {
			return n
		}
	}
	return 0
}

func minOf(xs []int) int {
	lo := xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
	}
	return lo
}

func sumOf(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func scoreline(mine, theirs int) string {
	if mine == theirs {
		return fmt.Sprintf("%d-%d push", mine, theirs)
	}
	return fmt.Sprintf("%d-%d", mine, theirs)
}

func holeSpan(from, to int) string {
	if from == to {
		return fmt.Sprintf("hole %d", from)
	}
	return fmt.Sprintf("holes %d-%d", from, to)
}
