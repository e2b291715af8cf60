package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf-wager/internal/db"
	"golf-wager/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type ScoreRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewScoreRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ScoreRepository {
	return &ScoreRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// UpsertBatch writes hole scores for one match. A second write for the same
// player and hole replaces the first.
func (r *ScoreRepository) UpsertBatch(ctx context.Context, matchID string, scores []domain.HoleScore) error {
	if len(scores) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now().UTC()

	for _, s := range scores {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}

		err = qtx.UpsertHoleScore(ctx, db.UpsertHoleScoreParams{
			ID:         id,
			MatchID:    matchID,
			PlayerID:   s.PlayerID,
			HoleNumber: int64(s.HoleNumber),
			Gross:      int64(s.Gross),
			Tags:       s.Tags.String(),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert score %s/%d: %w", s.PlayerID, s.HoleNumber, err)
		}
	}

	if err := qtx.TouchMatch(ctx, now, matchID); err != nil {
		return fmt.Errorf("failed to touch match %s: %w", matchID, err)
	}

	return tx.Commit()
}

func (r *ScoreRepository) List(ctx context.Context, matchID string) ([]domain.HoleScore, error) {
	return listScores(ctx, r.queries, matchID)
}

func listScores(ctx context.Context, q *db.Queries, matchID string) ([]domain.HoleScore, error) {
	rows, err := q.ListHoleScores(ctx, matchID)
	if err != nil {
		return nil, err
	}

	scores := make([]domain.HoleScore, len(rows))
	for i, row := range rows {
		tags, err := domain.ParseTagList(row.Tags)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", row.ID, err)
		}
		scores[i] = domain.HoleScore{
			PlayerID:   row.PlayerID,
			HoleNumber: int(row.HoleNumber),
			Gross:      int(row.Gross),
			Tags:       tags,
		}
	}
	return scores, nil
}
