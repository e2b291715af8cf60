package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf-wager/internal/db"
	"golf-wager/internal/domain"
	"golf-wager/internal/settlement"

	"github.com/rs/zerolog"
)

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Create stores the match header and its roster in listing order.
func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now
	if match.Status == "" {
		match.Status = domain.MatchInProgress
	}

	cfg := match.Config
	err = qtx.InsertMatch(ctx, db.InsertMatchParams{
		ID:            match.ID,
		CourseID:      match.CourseID,
		Format:        string(cfg.Format),
		WagerAmount:   int64(cfg.WagerAmount),
		TeamMode:      string(cfg.TeamMode),
		Greenies:      cfg.SideBets.Greenies,
		Sandies:       cfg.SideBets.Sandies,
		Snake:         cfg.SideBets.Snake,
		BirdiesDouble: cfg.SideBets.BirdiesDouble,
		BonusSkins:    cfg.SideBets.BonusSkins,
		TrashValue:    int64(cfg.TrashValue),
		Status:        string(match.Status),
		CreatedAt:     match.CreatedAt,
		UpdatedAt:     match.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}

	for i, p := range match.Players {
		err := qtx.InsertMatchPlayer(ctx, db.InsertMatchPlayerParams{
			MatchID:       match.ID,
			PlayerID:      p.ID,
			DisplayName:   p.DisplayName,
			HandicapIndex: p.HandicapIndex,
			Team:          string(p.Team),
			IsGuest:       p.IsGuest,
			Position:      int64(i),
		})
		if err != nil {
			return fmt.Errorf("failed to insert player %s for match %s: %w", p.ID, match.ID, err)
		}
	}

	return tx.Commit()
}

func (r *MatchRepository) Get(ctx context.Context, id string) (*domain.Match, error) {
	return getMatch(ctx, r.queries, id)
}

func (r *MatchRepository) SetStatus(ctx context.Context, id string, status domain.MatchStatus) error {
	n, err := r.queries.UpdateMatchStatus(ctx, db.UpdateMatchStatusParams{
		Status:    string(status),
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MatchRepository) ListIDsByStatus(ctx context.Context, status domain.MatchStatus) ([]string, error) {
	return r.queries.ListMatchIDsByStatus(ctx, string(status))
}

func (r *MatchRepository) ListIDsByPlayer(ctx context.Context, playerID string) ([]string, error) {
	return r.queries.ListMatchIDsByPlayer(ctx, playerID)
}

// Snapshot reads the match, its course, roster, scores and presses inside one
// read transaction so the engine sees a single point in time.
func (r *MatchRepository) Snapshot(ctx context.Context, id string) (*domain.Match, settlement.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, settlement.Snapshot{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	match, err := getMatch(ctx, qtx, id)
	if err != nil {
		return nil, settlement.Snapshot{}, err
	}
	course, err := getCourse(ctx, qtx, match.CourseID)
	if err != nil {
		return nil, settlement.Snapshot{}, fmt.Errorf("failed to load course %s: %w", match.CourseID, err)
	}
	scores, err := listScores(ctx, qtx, id)
	if err != nil {
		return nil, settlement.Snapshot{}, err
	}
	presses, err := listPresses(ctx, qtx, id)
	if err != nil {
		return nil, settlement.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return nil, settlement.Snapshot{}, err
	}

	return match, settlement.Snapshot{
		MatchID: match.ID,
		Config:  match.Config,
		Holes:   course.Holes,
		Players: match.Players,
		Scores:  scores,
		Presses: presses,
	}, nil
}

func getMatch(ctx context.Context, q *db.Queries, id string) (*domain.Match, error) {
	row, err := q.GetMatch(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	players, err := q.ListMatchPlayers(ctx, id)
	if err != nil {
		return nil, err
	}

	match := &domain.Match{
		ID:       row.ID,
		CourseID: row.CourseID,
		Config: domain.WagerConfig{
			Format:      domain.Format(row.Format),
			WagerAmount: domain.Money(row.WagerAmount),
			TeamMode:    domain.TeamMode(row.TeamMode),
			SideBets: domain.SideBets{
				Greenies:      row.Greenies,
				Sandies:       row.Sandies,
				Snake:         row.Snake,
				BirdiesDouble: row.BirdiesDouble,
				BonusSkins:    row.BonusSkins,
			},
			TrashValue: domain.Money(row.TrashValue),
		},
		Status:    domain.MatchStatus(row.Status),
		Players:   make([]domain.Player, len(players)),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for i, p := range players {
		match.Players[i] = domain.Player{
			ID:            p.PlayerID,
			DisplayName:   p.DisplayName,
			HandicapIndex: p.HandicapIndex,
			Team:          domain.Team(p.Team),
			IsGuest:       p.IsGuest,
		}
	}
	return match, nil
}
