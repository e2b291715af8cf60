package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golf-wager/internal/db"
	"golf-wager/internal/domain"

	"github.com/rs/zerolog"
)

type CourseRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCourseRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CourseRepository {
	return &CourseRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Save replaces the course and its full scorecard.
func (r *CourseRepository) Save(ctx context.Context, course *domain.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	if err := qtx.UpsertCourse(ctx, db.UpsertCourseParams{
		ID:        course.ID,
		Name:      course.Name,
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("failed to upsert course %s: %w", course.ID, err)
	}

	if err := qtx.DeleteCourseHoles(ctx, course.ID); err != nil {
		return fmt.Errorf("failed to clear holes for course %s: %w", course.ID, err)
	}
	for _, h := range course.Holes {
		err := qtx.InsertCourseHole(ctx, db.InsertCourseHoleParams{
			CourseID:    course.ID,
			Number:      int64(h.Number),
			Par:         int64(h.Par),
			StrokeIndex: int64(h.StrokeIndex),
		})
		if err != nil {
			return fmt.Errorf("failed to insert hole %d for course %s: %w", h.Number, course.ID, err)
		}
	}

	r.logger.Debug().Str("course_id", course.ID).Int("holes", len(course.Holes)).Msg("course saved")
	return tx.Commit()
}

func (r *CourseRepository) Get(ctx context.Context, id string) (*domain.Course, error) {
	return getCourse(ctx, r.queries, id)
}

func getCourse(ctx context.Context, q *db.Queries, id string) (*domain.Course, error) {
	row, err := q.GetCourse(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	holes, err := q.ListCourseHoles(ctx, id)
	if err != nil {
		return nil, err
	}

	course := &domain.Course{
		ID:        row.ID,
		Name:      row.Name,
		Holes:     make([]domain.Hole, len(holes)),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for i, h := range holes {
		course.Holes[i] = domain.Hole{
			Number:      int(h.Number),
			Par:         int(h.Par),
			StrokeIndex: int(h.StrokeIndex),
		}
	}
	return course, nil
}
