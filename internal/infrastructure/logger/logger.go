package logger

import (
	"context"
	"errors"

	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/rs/zerolog"
)

func Error(ctx context.Context, loggingErr error) *zerolog.Event {
	return logEvent(ctx, apperr.LogLevelOf(loggingErr), loggingErr)
}

func Warn(ctx context.Context, loggingErr error) *zerolog.Event {
	return logEvent(ctx, apperr.LogLevelWarn, loggingErr)
}

func Info(ctx context.Context) *zerolog.Event {
	return enrich(ctx, zerolog.Ctx(context.WithoutCancel(ctx)).Info())
}

func logEvent(ctx context.Context, level apperr.LogLevel, loggingErr error) *zerolog.Event {
	ctx = context.WithoutCancel(ctx)
	event := enrich(ctx, zerolog.Ctx(ctx).WithLevel(toZerologLevel(level)))

	if loggingErr != nil {
		event = event.Err(loggingErr)
	}

	return event
}

func enrich(ctx context.Context, event *zerolog.Event) *zerolog.Event {
	currentUser, err := contextx.GetUserID(ctx)
	if err != nil {
		if !errors.Is(err, contextx.ErrNotFound) && apperr.ClassOf(err) != apperr.ClassUnauthorized {
			zerolog.Ctx(ctx).Error().Err(err).Msg("logger.enrich: GetUserID")
		}
	} else {
		event = event.Str("current_user_id", currentUser.String())
	}

	return event
}

func toZerologLevel(level apperr.LogLevel) zerolog.Level {
	switch level {
	case apperr.LogLevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
