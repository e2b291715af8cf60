package settlement

import (
	"sort"

	"golf-wager/internal/domain"
)

// Match is a validated snapshot with stroke allocation and net scores derived.
// It is immutable and safe for concurrent use.
type Match struct {
	id       string
	cfg      domain.WagerConfig
	ledger   *Ledger
	presses  []domain.Press
	hcp      map[string]int
	net      map[scoreKey]int
	rejected []ScoreError
	skins    skinsOutcome
}

// Prepare validates a snapshot and derives net scores. Configuration, course,
// roster and press problems are fatal; malformed score rows are only reported.
func Prepare(s Snapshot) (*Match, error) {
	if err := ValidateConfig(s.Config); err != nil {
		return nil, err
	}
	if err := ValidateCourse(s.Holes); err != nil {
		return nil, err
	}
	if err := ValidatePlayers(s.Config, s.Players); err != nil {
		return nil, err
	}
	if err := ValidatePresses(s.Config, s.Presses); err != nil {
		return nil, err
	}

	players := append([]domain.Player(nil), s.Players...)
	ledger, rejected := newLedger(s.Holes, players, s.Scores)

	m := &Match{
		id:       s.MatchID,
		cfg:      s.Config,
		ledger:   ledger,
		presses:  sortedPresses(s.Presses),
		hcp:      make(map[string]int, len(players)),
		rejected: rejected,
	}
	for _, p := range players {
		m.hcp[p.ID] = CourseHandicap(*p.HandicapIndex)
	}
	m.net = deriveNet(ledger, m.hcp)
	if s.Config.Format == domain.FormatSkins {
		m.skins = m.resolveSkins()
	}
	return m, nil
}

// deriveNet computes gross minus individual allowance for every accepted score.
func deriveNet(l *Ledger, hcp map[string]int) map[scoreKey]int {
	net := make(map[scoreKey]int, len(l.scores))
	for k, s := range l.scores {
		hole, _ := l.Hole(k.hole)
		net[k] = s.Gross - Allowance(hcp[k.player], hole.StrokeIndex)
	}
	return net
}

func sortedPresses(presses []domain.Press) []domain.Press {
	out := append([]domain.Press(nil), presses...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartHole != out[j].StartHole {
			return out[i].StartHole < out[j].StartHole
		}
		return out[i].PressedByTeam < out[j].PressedByTeam
	})
	return out
}

func (m *Match) ID() string { return m.id }

func (m *Match) Config() domain.WagerConfig { return m.cfg }

func (m *Match) Ledger() *Ledger { return m.ledger }

// Rejected lists the score rows dropped as malformed.
func (m *Match) Rejected() []ScoreError {
	return append([]ScoreError(nil), m.rejected...)
}

// Allowance returns the individual stroke allowance of a player on a hole.
func (m *Match) Allowance(playerID string, hole int) (int, bool) {
	h, ok := m.ledger.Hole(hole)
	if !ok {
		return 0, false
	}
	hcp, ok := m.hcp[playerID]
	if !ok {
		return 0, false
	}
	return Allowance(hcp, h.StrokeIndex), true
}

// Net returns the individual net score, before any 2v2 team stroke.
func (m *Match) Net(playerID string, hole int) (int, bool) {
	n, ok := m.net[scoreKey{playerID, hole}]
	return n, ok
}

// IsStrokeHole marks holes where the spread between the best and worst
// handicap in the match earns a stroke. Display only.
func (m *Match) IsStrokeHole(hole int) bool {
	h, ok := m.ledger.Hole(hole)
	if !ok {
		return false
	}
	return Allowance(strokeSpread(m.ledger.players, m.hcp), h.StrokeIndex) > 0
}

func (m *Match) team(t domain.Team) []domain.Player {
	var out []domain.Player
	for _, p := range m.ledger.players {
		if p.Team == t {
			out = append(out, p)
		}
	}
	return out
}
