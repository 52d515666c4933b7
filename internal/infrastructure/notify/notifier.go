package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LogNotifier records workflow events to the log. Mail delivery is an
// external system; this implementation is the default sink until one is
// plugged in.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event string, articleID uuid.UUID, recipients []string, meta map[string]string) error {
	e := log.Ctx(ctx).Info().
		Str("event", event).
		Str("article_id", articleID.String()).
		Strs("recipients", recipients)
	for k, v := range meta {
		e = e.Str(k, v)
	}
	e.Msg("notify")

	return nil
}
