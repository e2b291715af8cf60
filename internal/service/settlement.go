package service

import (
	"context"
	"fmt"

	"golf-wager/internal/cache"
	"golf-wager/internal/constants"
	"golf-wager/internal/domain"
	"golf-wager/internal/repository"
	"golf-wager/internal/settlement"

	"github.com/rs/zerolog"
)

type SettlementService struct {
	matches *repository.MatchRepository
	cache   cache.SettlementCache
	logger  zerolog.Logger
}

func NewSettlementService(matches *repository.MatchRepository, c cache.SettlementCache, logger zerolog.Logger) *SettlementService {
	return &SettlementService{matches: matches, cache: c, logger: logger}
}

// Settlement is a settled match together with the header it was computed for.
type Settlement struct {
	Match  *domain.Match
	Result *settlement.Result
}

func (s *SettlementService) SettleMatch(ctx context.Context, matchID string) (*Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	match, snap, err := s.matches.Snapshot(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}

	fingerprint := snap.Fingerprint()
	log := s.logger.With().Str("match_id", matchID).Str("fingerprint", fingerprint[:12]).Logger()

	if res, ok := s.cached(ctx, fingerprint, log); ok {
		return &Settlement{Match: match, Result: res}, nil
	}

	res, err := settlement.Settle(snap)
	if err != nil {
		log.Warn().Err(err).Msg("settlement rejected")
		return nil, err
	}
	if len(res.Rejected) > 0 {
		log.Warn().Int("rejected", len(res.Rejected)).Msg("settled with rejected scores")
	}

	cacheCtx, cancelCache := context.WithTimeout(ctx, constants.CacheTimeout)
	defer cancelCache()
	if err := s.cache.Set(cacheCtx, fingerprint, res); err != nil {
		log.Warn().Err(err).Msg("failed to cache settlement")
	}

	log.Debug().Int("players", len(res.Totals)).Msg("match settled")
	return &Settlement{Match: match, Result: res}, nil
}

func (s *SettlementService) cached(ctx context.Context, fingerprint string, log zerolog.Logger) (*settlement.Result, bool) {
	ctx, cancel := context.WithTimeout(ctx, constants.CacheTimeout)
	defer cancel()

	res, ok, err := s.cache.Get(ctx, fingerprint)
	if err != nil {
		log.Warn().Err(err).Msg("settlement cache unavailable")
		return nil, false
	}
	if ok {
		log.Debug().Msg("settlement cache hit")
	}
	return res, ok
}

type HoleAnnotation struct {
	Hole         int            `json:"hole"`
	Par          int            `json:"par"`
	StrokeIndex  int            `json:"stroke_index"`
	IsStrokeHole bool           `json:"is_stroke_hole"`
	SkinDots     map[string]int `json:"skin_dots"`
}

// Annotations returns the per-hole scorecard marks: whether handicap strokes
// fall on the hole and each player's dot count.
func (s *SettlementService) Annotations(ctx context.Context, matchID string) ([]HoleAnnotation, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	_, snap, err := s.matches.Snapshot(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	m, err := settlement.Prepare(snap)
	if err != nil {
		return nil, err
	}

	out := make([]HoleAnnotation, 0, settlement.HolesPerRound)
	for n := 1; n <= settlement.HolesPerRound; n++ {
		hole, _ := m.Ledger().Hole(n)
		a := HoleAnnotation{
			Hole:         n,
			Par:          hole.Par,
			StrokeIndex:  hole.StrokeIndex,
			IsStrokeHole: m.IsStrokeHole(n),
			SkinDots:     make(map[string]int, len(snap.Players)),
		}
		for _, p := range m.Ledger().Players() {
			a.SkinDots[p.ID] = m.SkinDots(n, p.ID)
		}
		out = append(out, a)
	}
	return out, nil
}
