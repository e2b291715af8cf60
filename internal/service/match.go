package service

import (
	"context"
	"fmt"

	"golf-wager/internal/constants"
	"golf-wager/internal/domain"
	"golf-wager/internal/repository"
	"golf-wager/internal/settlement"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type MatchService struct {
	courses *repository.CourseRepository
	matches *repository.MatchRepository
	scores  *repository.ScoreRepository
	presses *repository.PressRepository
	logger  zerolog.Logger
}

func NewMatchService(
	courses *repository.CourseRepository,
	matches *repository.MatchRepository,
	scores *repository.ScoreRepository,
	presses *repository.PressRepository,
	logger zerolog.Logger,
) *MatchService {
	return &MatchService{courses: courses, matches: matches, scores: scores, presses: presses, logger: logger}
}

type CreateMatchParams struct {
	CourseID string
	Config   domain.WagerConfig
	// Players in listing order; handicap indices are frozen as given.
	Players []domain.Player
}

func (s *MatchService) CreateMatch(ctx context.Context, p CreateMatchParams) (*domain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := settlement.ValidateConfig(p.Config); err != nil {
		return nil, err
	}
	if err := settlement.ValidatePlayers(p.Config, p.Players); err != nil {
		return nil, err
	}
	if _, err := s.courses.Get(ctx, p.CourseID); err != nil {
		return nil, fmt.Errorf("course %s: %w", p.CourseID, err)
	}

	match := &domain.Match{
		ID:       uuid.NewString(),
		CourseID: p.CourseID,
		Config:   p.Config,
		Status:   domain.MatchInProgress,
		Players:  p.Players,
	}
	if err := s.matches.Create(ctx, match); err != nil {
		s.logger.Error().Err(err).Str("course_id", p.CourseID).Msg("failed to create match")
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Str("format", string(p.Config.Format)).
		Int("players", len(p.Players)).
		Msg("match created")
	return match, nil
}

type RecordScoreParams struct {
	MatchID  string
	PlayerID string
	Hole     int
	Gross    int
	Tags     []string
}

// RecordScore stores or replaces one player's score on one hole.
func (s *MatchService) RecordScore(ctx context.Context, p RecordScoreParams) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	tags, err := domain.ParseTags(p.Tags)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Gross < 1 {
		return fmt.Errorf("%w: gross must be at least 1, got %d", ErrInvalidInput, p.Gross)
	}
	if p.Hole < 1 || p.Hole > settlement.HolesPerRound {
		return fmt.Errorf("%w: hole %d out of range", ErrInvalidInput, p.Hole)
	}

	match, err := s.openMatch(ctx, p.MatchID)
	if err != nil {
		return err
	}
	if !onRoster(match, p.PlayerID) {
		return fmt.Errorf("%w: player %s is not in match %s", ErrInvalidInput, p.PlayerID, p.MatchID)
	}

	score := domain.HoleScore{PlayerID: p.PlayerID, HoleNumber: p.Hole, Gross: p.Gross, Tags: tags}
	if err := s.scores.UpsertBatch(ctx, p.MatchID, []domain.HoleScore{score}); err != nil {
		s.logger.Error().Err(err).Str("match_id", p.MatchID).Msg("failed to record score")
		return fmt.Errorf("failed to record score: %w", err)
	}

	s.logger.Debug().
		Str("match_id", p.MatchID).
		Str("player_id", p.PlayerID).
		Int("hole", p.Hole).
		Int("gross", p.Gross).
		Str("tags", tags.String()).
		Msg("score recorded")
	return nil
}

func (s *MatchService) AddPress(ctx context.Context, matchID string, startHole int, team domain.Team) (*domain.Press, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	match, err := s.openMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	press := &domain.Press{StartHole: startHole, PressedByTeam: team}
	if err := settlement.ValidatePresses(match.Config, []domain.Press{*press}); err != nil {
		return nil, err
	}
	if err := s.presses.Add(ctx, matchID, press); err != nil {
		s.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to add press")
		return nil, err
	}

	s.logger.Info().
		Str("match_id", matchID).
		Str("press_id", press.ID).
		Int("start_hole", startHole).
		Str("team", string(team)).
		Msg("press added")
	return press, nil
}

func (s *MatchService) CompleteMatch(ctx context.Context, matchID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.matches.SetStatus(ctx, matchID, domain.MatchCompleted); err != nil {
		return fmt.Errorf("match %s: %w", matchID, err)
	}
	s.logger.Info().Str("match_id", matchID).Msg("match completed")
	return nil
}

func (s *MatchService) openMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	if match.Status == domain.MatchCompleted {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrMatchCompleted)
	}
	return match, nil
}

func onRoster(match *domain.Match, playerID string) bool {
	for _, p := range match.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
