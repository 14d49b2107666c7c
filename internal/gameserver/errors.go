package gameserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/idlerealm/worldboss/internal/game/boss"
	"github.com/idlerealm/worldboss/internal/game/character"
)

var notFound = []error{
	boss.ErrTemplateNotFound,
	boss.ErrInstanceNotFound,
	boss.ErrDropRuleNotFound,
	boss.ErrItemNotFound,
	boss.ErrNoActiveInstance,
	character.ErrPlayerNotFound,
}

var alreadyExists = []error{
	boss.ErrTemplateNameTaken,
	boss.ErrDropRuleExists,
}

var failedPrecondition = []error{
	boss.ErrTemplateInUse,
	boss.ErrFightInProgress,
	boss.ErrNoTemplates,
	boss.ErrActiveInstanceExists,
}

var invalidArgument = []error{
	boss.ErrInvalidTemplate,
	boss.ErrInvalidDropRule,
	boss.ErrInvalidSettings,
	boss.ErrInvalidAttack,
}

// toStatus maps a domain error to a gRPC status error. Unmapped errors become
// codes.Internal and the cause is logged rather than sent to the client.
func toStatus(logger *zap.Logger, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case anyIs(err, notFound):
		return status.Error(codes.NotFound, err.Error())
	case anyIs(err, alreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case anyIs(err, failedPrecondition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case anyIs(err, invalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	logger.Error("request failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func anyIs(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
