package settlement

import (
	"golf-wager/internal/domain"
)

// Line is one row of a player's itemized ledger. Positive amounts are received.
type Line struct {
	Label    string       `json:"label"`
	Sublabel string       `json:"sublabel"`
	Amount   domain.Money `json:"amount"`
	IsPress  bool         `json:"is_press"`
}

type Result struct {
	MatchID  string                  `json:"match_id"`
	Lines    map[string][]Line       `json:"lines"`
	Totals   map[string]domain.Money `json:"totals"`
	Rejected []ScoreError            `json:"rejected,omitempty"`
}

// Settle validates the snapshot and returns the full ledger, or an error and no ledger.
func Settle(s Snapshot) (*Result, error) {
	m, err := Prepare(s)
	if err != nil {
		return nil, err
	}
	return m.Settle(), nil
}

// Settle runs the resolvers selected by the wager format and sums each
// player's lines into a total.
func (m *Match) Settle() *Result {
	players := m.ledger.players
	res := &Result{
		MatchID:  m.id,
		Lines:    make(map[string][]Line, len(players)),
		Totals:   make(map[string]domain.Money, len(players)),
		Rejected: m.Rejected(),
	}
	for _, p := range players {
		res.Lines[p.ID] = []Line{}
	}

	switch m.cfg.Format {
	case domain.FormatNassau:
		sideA, sideB := m.team(domain.TeamA), m.team(domain.TeamB)
		legsA, legsB := m.resolveNassau()
		trashA := m.resolveTrash(sideA, sideB, "")
		trashB := m.resolveTrash(sideB, sideA, "")
		for _, p := range sideA {
			res.Lines[p.ID] = append(append(res.Lines[p.ID], legsA...), trashA...)
		}
		for _, p := range sideB {
			res.Lines[p.ID] = append(append(res.Lines[p.ID], legsB...), trashB...)
		}

	case domain.FormatSkins:
		for _, p := range players {
			res.Lines[p.ID] = append(res.Lines[p.ID], m.skins.lines[p.ID]...)
		}
		// Dot bets pair every player against every other player.
		for _, p := range players {
			for _, q := range players {
				if p.ID == q.ID {
					continue
				}
				mine, theirs := []domain.Player{p}, []domain.Player{q}
				res.Lines[p.ID] = append(res.Lines[p.ID], m.resolveTrash(mine, theirs, " vs "+q.DisplayName)...)
			}
		}
	}

	for id, lines := range res.Lines {
		var total domain.Money
		for _, l := range lines {
			total += l.Amount
		}
		res.Totals[id] = total
	}
	return res
}

// SkinDots counts the markers a player earns on a hole for display: in skins,
// one per skin won there plus bonus units; in nassau, one per enabled dot tag.
func (m *Match) SkinDots(hole int, playerID string) int {
	h, ok := m.ledger.Hole(hole)
	if !ok {
		return 0
	}
	switch m.cfg.Format {
	case domain.FormatSkins:
		dots := m.skins.bonus[scoreKey{playerID, hole}]
		if m.skins.winners[hole-1] == playerID {
			dots++
		}
		return dots
	default:
		s, ok := m.ledger.ScoreFor(playerID, hole)
		if !ok {
			return 0
		}
		dots := 0
		for _, bet := range m.trashBets() {
			if bet.tag == domain.TagGreenie && h.Par != 3 {
				continue
			}
			if s.Tags.Has(bet.tag) {
				dots++
			}
		}
		return dots
	}
}
