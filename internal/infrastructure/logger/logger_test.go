package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lexnotes/journal/internal/infrastructure/apperr"
	"github.com/lexnotes/journal/internal/infrastructure/contextx"
	"github.com/lexnotes/journal/internal/infrastructure/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func loggedCtx(buf *bytes.Buffer, userID *uuid.UUID) context.Context {
	l := zerolog.New(buf)
	ctx := l.WithContext(context.Background())
	if userID != nil {
		ctx = contextx.SetUserID(ctx, *userID)
	}
	return ctx
}

func decodeEvent(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	return event
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("error_level_by_default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		userID := uuid.New()

		logger.Error(loggedCtx(&buf, &userID), errors.New("boom")).Msg("handler failed")

		event := decodeEvent(t, &buf)
		require.Equal(t, "error", event["level"])
		require.Equal(t, "boom", event["error"])
		require.Equal(t, "handler failed", event["message"])
		require.Equal(t, userID.String(), event["current_user_id"])
	})

	t.Run("warn_level_from_error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		loggingErr := apperr.New("not found", "not_found", apperr.ClassNotFound, apperr.LogLevelWarn)

		logger.Error(loggedCtx(&buf, nil), loggingErr).Msg("lookup failed")

		event := decodeEvent(t, &buf)
		require.Equal(t, "warn", event["level"])
		require.NotContains(t, event, "current_user_id")
	})
}

func TestWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger.Warn(loggedCtx(&buf, nil), errors.New("slow upstream")).Msg("retrying")

	event := decodeEvent(t, &buf)
	require.Equal(t, "warn", event["level"])
	require.Equal(t, "slow upstream", event["error"])
}

func TestInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	userID := uuid.New()

	logger.Info(loggedCtx(&buf, &userID)).Str("event", "article.published").Msg("dispatched")

	event := decodeEvent(t, &buf)
	require.Equal(t, "info", event["level"])
	require.Equal(t, "article.published", event["event"])
	require.Equal(t, userID.String(), event["current_user_id"])
}
