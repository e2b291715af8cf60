package settlement

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"golf-wager/internal/domain"
)

type canonicalScore struct {
	Player string `json:"p"`
	Hole   int    `json:"h"`
	Gross  int    `json:"g"`
	Tags   uint8  `json:"t"`
}

type canonicalPress struct {
	Start int    `json:"s"`
	Team  string `json:"t"`
}

// Fingerprint hashes everything that can change a settlement. Score and press
// order do not matter; player order does, since it breaks team-stroke ties.
func (s Snapshot) Fingerprint() string {
	holes := append([]domain.Hole(nil), s.Holes...)
	sort.Slice(holes, func(i, j int) bool { return holes[i].Number < holes[j].Number })

	scores := make([]canonicalScore, len(s.Scores))
	for i, sc := range s.Scores {
		scores[i] = canonicalScore{Player: sc.PlayerID, Hole: sc.HoleNumber, Gross: sc.Gross, Tags: uint8(sc.Tags)}
	}
	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Player != b.Player {
			return a.Player < b.Player
		}
		if a.Hole != b.Hole {
			return a.Hole < b.Hole
		}
		if a.Gross != b.Gross {
			return a.Gross < b.Gross
		}
		return a.Tags < b.Tags
	})

	presses := make([]canonicalPress, len(s.Presses))
	for i, p := range s.Presses {
		presses[i] = canonicalPress{Start: p.StartHole, Team: string(p.PressedByTeam)}
	}
	sort.Slice(presses, func(i, j int) bool {
		if presses[i].Start != presses[j].Start {
			return presses[i].Start < presses[j].Start
		}
		return presses[i].Team < presses[j].Team
	})

	payload, _ := json.Marshal(struct {
		MatchID string             `json:"m"`
		Config  domain.WagerConfig `json:"c"`
		Holes   []domain.Hole      `json:"h"`
		Players []domain.Player    `json:"p"`
		Scores  []canonicalScore   `json:"s"`
		Presses []canonicalPress   `json:"x"`
	}{s.MatchID, s.Config, holes, s.Players, scores, presses})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
