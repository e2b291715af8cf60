package server

import (
	"context"
	"errors"

	"golf-wager/internal/repository"
	"golf-wager/internal/service"
	"golf-wager/internal/settlement"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

func toConnectError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, service.ErrInvalidInput), settlement.IsInputError(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, service.ErrMatchCompleted):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, service.ErrUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	zerolog.Ctx(ctx).Error().Err(err).Msg("internal error")
	return connect.NewError(connect.CodeInternal, err)
}
