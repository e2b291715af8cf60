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

type PressRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPressRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PressRepository {
	return &PressRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PressRepository) Add(ctx context.Context, matchID string, press *domain.Press) error {
	if press.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		press.ID = id
	}

	err := r.queries.InsertPress(ctx, db.InsertPressParams{
		ID:            press.ID,
		MatchID:       matchID,
		StartHole:     int64(press.StartHole),
		PressedByTeam: string(press.PressedByTeam),
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert press for match %s: %w", matchID, err)
	}
	return nil
}

func (r *PressRepository) List(ctx context.Context, matchID string) ([]domain.Press, error) {
	return listPresses(ctx, r.queries, matchID)
}

func listPresses(ctx context.Context, q *db.Queries, matchID string) ([]domain.Press, error) {
	rows, err := q.ListPresses(ctx, matchID)
	if err != nil {
		return nil, err
	}
	presses := make([]domain.Press, len(rows))
	for i, row := range rows {
		presses[i] = domain.Press{
			ID:            row.ID,
			StartHole:     int(row.StartHole),
			PressedByTeam: domain.Team(row.PressedByTeam),
		}
	}
	return presses, nil
}
