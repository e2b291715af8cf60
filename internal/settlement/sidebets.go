package settlement

import (
	"golf-wager/internal/domain"
)

type trashBet struct {
	label   string
	tag     domain.Tag
	penalty bool
}

func (m *Match) trashBets() []trashBet {
	var bets []trashBet
	if m.cfg.SideBets.Greenies {
		bets = append(bets, trashBet{label: "Greenies", tag: domain.TagGreenie})
	}
	if m.cfg.SideBets.Sandies {
		bets = append(bets, trashBet{label: "Sandies", tag: domain.TagSandie})
	}
	if m.cfg.SideBets.Snake {
		bets = append(bets, trashBet{label: "Snake", tag: domain.TagSnake, penalty: true})
	}
	return bets
}

// resolveTrash settles the dot bets for one side against another, from the
// point of view of a single player on side mine.
func (m *Match) resolveTrash(mine, theirs []domain.Player, suffix string) []Line {
	var lines []Line
	for _, bet := range m.trashBets() {
		my, opp := m.countDots(mine, bet.tag), m.countDots(theirs, bet.tag)
		lines = append(lines, Line{
			Label:    bet.label + suffix,
			Sublabel: scoreline(my, opp),
			Amount:   trashAmount(bet.penalty, my, opp, len(mine), len(theirs), m.cfg.TrashValue),
		})
	}
	return lines
}

// trashAmount is the per-player amount for one dot bet. Each net dot is paid
// by every player on the paying side. For snake holding more dots is the
// penalty, and the scale is always the opposing side's size.
func trashAmount(penalty bool, myDots, oppDots, mySize, oppSize int, value domain.Money) domain.Money {
	if penalty {
		return domain.Money(oppDots-myDots) * value * domain.Money(oppSize)
	}
	net := domain.Money(myDots - oppDots)
	scale := domain.Money(oppSize)
	if net < 0 {
		scale = domain.Money(mySize)
	}
	// An empty paying side falls back to the unscaled amount.
	if amount := net * value * scale; amount != 0 {
		return amount
	}
	return net * value
}

// countDots counts tagged scores for the side across the round. Greenies only
// count on par 3s.
func (m *Match) countDots(side []domain.Player, tag domain.Tag) int {
	count := 0
	for n := 1; n <= HolesPerRound; n++ {
		hole, _ := m.ledger.Hole(n)
		if tag == domain.TagGreenie && hole.Par != 3 {
			continue
		}
		for _, p := range side {
			if s, ok := m.ledger.ScoreFor(p.ID, n); ok && s.Tags.Has(tag) {
				count++
			}
		}
	}
	return count
}
