package settlement

import (
	"fmt"
	"strings"

	"golf-wager/internal/domain"
)

// carry is the fold accumulator of the skins walk.
type carry struct {
	skins int
	from  int
}

type skinsOutcome struct {
	lines   map[string][]Line
	winners [HolesPerRound]string
	bonus   map[scoreKey]int
}

// resolveSkins walks holes in ascending order. Incomplete holes are skipped
// without touching the carry.
func (m *Match) resolveSkins() skinsOutcome {
	players := m.ledger.players
	ids := playerIDs(players)
	others := domain.Money(len(players) - 1)
	wager := m.cfg.WagerAmount

	out := skinsOutcome{
		lines: make(map[string][]Line, len(players)),
		bonus: make(map[scoreKey]int),
	}
	acc := carry{}
	last := 0

	for n := 1; n <= HolesPerRound; n++ {
		if !m.ledger.IsHoleComplete(ids, n) {
			continue
		}
		last = n
		if acc.skins == 0 {
			acc.from = n
		}

		pot := domain.Money(1+acc.skins) * wager
		winner, ok := m.skinWinner(n)
		if !ok {
			acc.skins++
		} else {
			out.winners[n-1] = winner.ID
			span := skinSpan(acc.from, n, acc.skins+1)
			for _, p := range players {
				if p.ID == winner.ID {
					out.lines[p.ID] = append(out.lines[p.ID], Line{Label: "Skin", Sublabel: span, Amount: pot * others})
					continue
				}
				out.lines[p.ID] = append(out.lines[p.ID], Line{Label: "Skin", Sublabel: span + " to " + winner.DisplayName, Amount: -pot})
			}
			acc = carry{}
		}

		if m.cfg.SideBets.BonusSkins {
			m.bonusSkins(n, out)
		}
	}

	if acc.skins > 0 {
		state := "carrying"
		if last == HolesPerRound {
			state = "unclaimed"
		}
		sub := fmt.Sprintf("%s, %d skin(s) %s", holeSpan(acc.from, last), acc.skins, state)
		for _, p := range players {
			out.lines[p.ID] = append(out.lines[p.ID], Line{Label: "Carry", Sublabel: sub})
		}
	}
	return out
}

// skinWinner returns the unique player with the strictly lowest net on a hole.
func (m *Match) skinWinner(hole int) (domain.Player, bool) {
	var best domain.Player
	bestNet, tied := 0, false
	for i, p := range m.ledger.players {
		net, _ := m.Net(p.ID, hole)
		switch {
		case i == 0 || net < bestNet:
			best, bestNet, tied = p, net, false
		case net == bestNet:
			tied = true
		}
	}
	return best, !tied
}

// bonusSkins pays pin, birdie and eagle units straight from every other player.
func (m *Match) bonusSkins(n int, out skinsOutcome) {
	hole, _ := m.ledger.Hole(n)
	players := m.ledger.players
	others := domain.Money(len(players) - 1)
	for _, p := range players {
		s, _ := m.ledger.ScoreFor(p.ID, n)
		units, reasons := bonusUnits(s, hole)
		if units == 0 {
			continue
		}
		out.bonus[scoreKey{p.ID, n}] = units
		unit := domain.Money(units) * m.cfg.WagerAmount
		sub := fmt.Sprintf("hole %d: %s", n, strings.Join(reasons, ", "))
		for _, q := range players {
			if q.ID == p.ID {
				out.lines[q.ID] = append(out.lines[q.ID], Line{Label: "Bonus skin", Sublabel: sub, Amount: unit * others})
				continue
			}
			out.lines[q.ID] = append(out.lines[q.ID], Line{Label: "Bonus skin", Sublabel: sub + " to " + p.DisplayName, Amount: -unit})
		}
	}
}

func bonusUnits(s domain.HoleScore, hole domain.Hole) (int, []string) {
	units := 0
	var reasons []string
	if s.Tags.Has(domain.TagPin) {
		units++
		reasons = append(reasons, "pin")
	}
	switch {
	case s.Gross <= hole.Par-2:
		units += 2
		reasons = append(reasons, "eagle")
	case s.Gross == hole.Par-1:
		units++
		reasons = append(reasons, "birdie")
	}
	return units, reasons
}

func skinSpan(from, to, skins int) string {
	if skins == 1 {
		return holeSpan(from, to)
	}
	return fmt.Sprintf("%s, %d skins", holeSpan(from, to), skins)
}
