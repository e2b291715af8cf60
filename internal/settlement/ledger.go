package settlement

import (
	"sort"

	"golf-wager/internal/domain"
)

type scoreKey struct {
	player string
	hole   int
}

// Ledger is the validated, normalized view of a match's holes, players and scores.
type Ledger struct {
	holes   [HolesPerRound]domain.Hole
	players []domain.Player
	known   map[string]bool
	scores  map[scoreKey]domain.HoleScore
}

// newLedger indexes scores. Rows that are malformed, or that collide with another
// row for the same player and hole, are dropped and reported.
func newLedger(holes []domain.Hole, players []domain.Player, scores []domain.HoleScore) (*Ledger, []ScoreError) {
	l := &Ledger{
		players: players,
		known:   make(map[string]bool, len(players)),
		scores:  make(map[scoreKey]domain.HoleScore, len(scores)),
	}
	for _, h := range holes {
		l.holes[h.Number-1] = h
	}
	for _, p := range players {
		l.known[p.ID] = true
	}

	var rejected []ScoreError
	counts := make(map[scoreKey]int, len(scores))
	for _, s := range scores {
		reason := ""
		switch {
		case !l.known[s.PlayerID]:
			reason = "player not in match"
		case s.HoleNumber < 1 || s.HoleNumber > HolesPerRound:
			reason = "hole not on course"
		case s.Gross < 1:
			reason = "gross must be at least 1"
		}
		if reason != "" {
			rejected = append(rejected, ScoreError{PlayerID: s.PlayerID, Hole: s.HoleNumber, Reason: reason})
			continue
		}
		k := scoreKey{s.PlayerID, s.HoleNumber}
		counts[k]++
		l.scores[k] = s
	}
	for k, n := range counts {
		if n > 1 {
			delete(l.scores, k)
			rejected = append(rejected, ScoreError{PlayerID: k.player, Hole: k.hole, Reason: "duplicate score"})
		}
	}

	sort.Slice(rejected, func(i, j int) bool {
		a, b := rejected[i], rejected[j]
		if a.PlayerID != b.PlayerID {
			return a.PlayerID < b.PlayerID
		}
		if a.Hole != b.Hole {
			return a.Hole < b.Hole
		}
		return a.Reason < b.Reason
	})
	return l, rejected
}

func (l *Ledger) Hole(number int) (domain.Hole, bool) {
	if number < 1 || number > HolesPerRound {
		return domain.Hole{}, false
	}
	return l.holes[number-1], true
}

func (l *Ledger) Players() []domain.Player {
	return l.players
}

// ScoreFor returns the accepted score of a player on a hole.
func (l *Ledger) ScoreFor(playerID string, hole int) (domain.HoleScore, bool) {
	s, ok := l.scores[scoreKey{playerID, hole}]
	return s, ok
}

// IsHoleComplete reports whether every listed player has a score on the hole.
func (l *Ledger) IsHoleComplete(playerIDs []string, hole int) bool {
	if hole < 1 || hole > HolesPerRound || len(playerIDs) == 0 {
		return false
	}
	for _, id := range playerIDs {
		if _, ok := l.scores[scoreKey{id, hole}]; !ok {
			return false
		}
	}
	return true
}

func playerIDs(players []domain.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}
