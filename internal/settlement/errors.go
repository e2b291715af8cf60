package settlement

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedScore         = errors.New("malformed score")
	ErrIncompleteHandicapData = errors.New("incomplete handicap data")
	ErrInvalidWagerConfig     = errors.New("invalid wager config")
	ErrInvalidCourse          = errors.New("invalid course")
	ErrInvalidPress           = fmt.Errorf("%w: invalid press", ErrInvalidWagerConfig)
)

// ScoreError describes a single rejected hole score.
type ScoreError struct {
	PlayerID string `json:"player_id"`
	Hole     int    `json:"hole"`
	Reason   string `json:"reason"`
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("malformed score for player %s on hole %d: %s", e.PlayerID, e.Hole, e.Reason)
}

func (e *ScoreError) Unwrap() error {
	return ErrMalformedScore
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWagerConfig, fmt.Sprintf(format, args...))
}

func courseError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidCourse, fmt.Sprintf(format, args...))
}

// IsInputError reports whether err came from validating the match inputs
// rather than from a failure to read them.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedScore) ||
		errors.Is(err, ErrIncompleteHandicapData) ||
		errors.Is(err, ErrInvalidWagerConfig) ||
		errors.Is(err, ErrInvalidCourse)
}
