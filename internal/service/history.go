package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golf-wager/internal/config"
	"golf-wager/internal/constants"
	"golf-wager/internal/domain"
	"golf-wager/internal/repository"
	"golf-wager/internal/settlement"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type HistoryService struct {
	matches     *repository.MatchRepository
	settlements *SettlementService
	concurrency int
	logger      zerolog.Logger
}

func NewHistoryService(cfg *config.Config, matches *repository.MatchRepository, settlements *SettlementService, logger zerolog.Logger) *HistoryService {
	return &HistoryService{
		matches:     matches,
		settlements: settlements,
		concurrency: cfg.HistoryConcurrency,
		logger:      logger,
	}
}

type MatchSummary struct {
	MatchID  string             `json:"match_id"`
	CourseID string             `json:"course_id"`
	Format   domain.Format      `json:"format"`
	Status   domain.MatchStatus `json:"status"`
	PlayedAt time.Time          `json:"played_at"`
	Net      domain.Money       `json:"net"`
	// Running is the player's cumulative net through this match.
	Running domain.Money `json:"running"`
}

type LeaderboardEntry struct {
	PlayerID    string       `json:"player_id"`
	DisplayName string       `json:"display_name"`
	Net         domain.Money `json:"net"`
	Matches     int          `json:"matches"`
	Wins        int          `json:"wins"`
}

// PlayerHistory lists every match the player is in, oldest first.
func (s *HistoryService) PlayerHistory(ctx context.Context, playerID string) ([]MatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ids, err := s.matches.ListIDsByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	settled, err := s.settleAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]MatchSummary, 0, len(settled))
	var running domain.Money
	for _, st := range settled {
		if st == nil {
			continue
		}
		net := st.Result.Totals[playerID]
		running += net
		out = append(out, MatchSummary{
			MatchID:  st.Match.ID,
			CourseID: st.Match.CourseID,
			Format:   st.Match.Config.Format,
			Status:   st.Match.Status,
			PlayedAt: st.Match.CreatedAt,
			Net:      net,
			Running:  running,
		})
	}

	s.logger.Debug().Str("player_id", playerID).Int("matches", len(out)).Msg("player history built")
	return out, nil
}

// Leaderboard folds every completed match into per-player winnings.
func (s *HistoryService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ids, err := s.matches.ListIDsByStatus(ctx, domain.MatchCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	settled, err := s.settleAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	board := map[string]*LeaderboardEntry{}
	for _, st := range settled {
		if st == nil {
			continue
		}
		for _, p := range st.Match.Players {
			e, ok := board[p.ID]
			if !ok {
				e = &LeaderboardEntry{PlayerID: p.ID}
				board[p.ID] = e
			}
			// latest match wins the display name
			e.DisplayName = p.DisplayName
			net := st.Result.Totals[p.ID]
			e.Net += net
			e.Matches++
			if net > 0 {
				e.Wins++
			}
		}
	}

	out := make([]LeaderboardEntry, 0, len(board))
	for _, e := range board {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Net != out[j].Net {
			return out[i].Net > out[j].Net
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if len(out) > constants.LeaderboardLimit {
		out = out[:constants.LeaderboardLimit]
	}
	return out, nil
}

// settleAll settles matches in parallel and returns them in the order of ids.
// Matches whose stored inputs fail validation are logged and left nil.
func (s *HistoryService) settleAll(ctx context.Context, ids []string) ([]*Settlement, error) {
	out := make([]*Settlement, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			st, err := s.settlements.SettleMatch(gCtx, id)
			if err != nil {
				if settlement.IsInputError(err) {
					s.logger.Warn().Err(err).Str("match_id", id).Msg("skipping unsettleable match")
					return nil
				}
				return fmt.Errorf("failed to settle match %s: %w", id, err)
			}
			out[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
