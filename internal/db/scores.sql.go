package db

import (
	"context"
	"time"
)

const upsertHoleScore = `
INSERT INTO hole_scores (id, match_id, player_id, hole_number, gross, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (match_id, player_id, hole_number) DO UPDATE SET
    gross = excluded.gross,
    tags = excluded.tags,
    updated_at = excluded.updated_at
`

type UpsertHoleScoreParams struct {
	ID         string
	MatchID    string
	PlayerID   string
	HoleNumber int64
	Gross      int64
	Tags       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) UpsertHoleScore(ctx context.Context, arg UpsertHoleScoreParams) error {
	_, err := q.db.ExecContext(ctx, upsertHoleScore,
		arg.ID,
		arg.MatchID,
		arg.PlayerID,
		arg.HoleNumber,
		arg.Gross,
		arg.Tags,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const listHoleScores = `
SELECT id, match_id, player_id, hole_number, gross, tags, created_at, updated_at
FROM hole_scores
WHERE match_id = ?
ORDER BY hole_number, player_id
`

func (q *Queries) ListHoleScores(ctx context.Context, matchID string) ([]HoleScore, error) {
	rows, err := q.db.QueryContext(ctx, listHoleScores, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HoleScore
	for rows.Next() {
		var i HoleScore
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.PlayerID,
			&i.HoleNumber,
			&i.Gross,
			&i.Tags,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
