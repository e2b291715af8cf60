package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golf-wager/internal/api"
	"golf-wager/internal/constants"
	"golf-wager/internal/domain"
	"golf-wager/internal/repository"
	"golf-wager/internal/settlement"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CourseService struct {
	directory *api.CourseDirectoryClient
	repo      *repository.CourseRepository
	logger    zerolog.Logger
}

func NewCourseService(directory *api.CourseDirectoryClient, repo *repository.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{directory: directory, repo: repo, logger: logger}
}

// ImportCourse pulls a scorecard from the course directory and stores it under
// the directory's id.
func (s *CourseService) ImportCourse(ctx context.Context, externalID string) (*domain.Course, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: course id is required", ErrInvalidInput)
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Info().Str("course_id", externalID).Msg("importing course")

	resp, err := s.directory.GetScorecard(apiCtx, externalID)
	if err != nil {
		var se *api.StatusError
		switch {
		case errors.Is(err, api.ErrDirectoryDisabled):
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		case errors.As(err, &se) && se.NotFound():
			return nil, fmt.Errorf("course %s: %w", externalID, repository.ErrNotFound)
		}
		s.logger.Error().Err(err).Str("course_id", externalID).Msg("failed to fetch scorecard")
		return nil, fmt.Errorf("failed to fetch scorecard: %w", err)
	}

	course := &domain.Course{
		ID:    externalID,
		Name:  resp.Data.Name,
		Holes: make([]domain.Hole, len(resp.Data.Holes)),
	}
	for i, h := range resp.Data.Holes {
		course.Holes[i] = domain.Hole{Number: h.Number, Par: h.Par, StrokeIndex: h.Handicap}
	}

	if err := s.SaveCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// SaveCourse validates the scorecard and stores it, assigning an id when the
// course has none.
func (s *CourseService) SaveCourse(ctx context.Context, course *domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := settlement.ValidateCourse(course.Holes); err != nil {
		s.logger.Warn().Err(err).Str("course_id", course.ID).Msg("rejecting course")
		return err
	}
	sort.Slice(course.Holes, func(i, j int) bool { return course.Holes[i].Number < course.Holes[j].Number })

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if err := s.repo.Save(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("course_id", course.ID).Msg("failed to save course")
		return fmt.Errorf("failed to save course: %w", err)
	}

	s.logger.Info().Str("course_id", course.ID).Str("name", course.Name).Msg("course saved")
	return nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Get(ctx, id)
}
