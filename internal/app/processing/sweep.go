package processing

import (
	"context"

	"github.com/lexnotes/journal/internal/infrastructure/logger"
)

type SweepConfig struct {
	Schedule  string `mapstructure:"schedule" json:"schedule"`
	BatchSize int    `mapstructure:"batch_size" json:"batch_size"`
}

// Sweep retries work the inline pipeline dropped: versions still missing
// their counterpart format and change-log entries still missing a diff
// summary. Both lists shrink to empty when the system is healthy.
type Sweep struct {
	proc *Processor
	cfg  SweepConfig
}

func NewSweep(proc *Processor, cfg SweepConfig) *Sweep {
	if cfg.Schedule == "" {
		cfg.Schedule = "@every 5m"
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}

	return &Sweep{proc: proc, cfg: cfg}
}

func (s *Sweep) Name() string     { return "processing_sweep" }
func (s *Sweep) Schedule() string { return s.cfg.Schedule }

func (s *Sweep) Run(ctx context.Context) {
	versions, err := s.proc.versions.ListMissingCounterpart(ctx, s.cfg.BatchSize)
	if err != nil {
		logger.Error(ctx, err).Msg("processing.Sweep: failed to list versions missing a counterpart")
	}
	converted := 0
	for _, v := range versions {
		if err = s.proc.EnsureCounterpart(ctx, v); err != nil {
			logger.Warn(ctx, err).
				Str("article_id", v.ArticleID.String()).
				Msg("processing.Sweep: counterpart conversion failed")
			continue
		}
		converted++
	}

	entries, err := s.proc.entries.ListMissingDiff(ctx, s.cfg.BatchSize)
	if err != nil {
		logger.Error(ctx, err).Msg("processing.Sweep: failed to list entries missing a diff")
	}
	diffed := 0
	for _, e := range entries {
		if err = s.proc.ComputeDiff(ctx, e); err != nil {
			logger.Warn(ctx, err).
				Str("entry_id", e.ID.String()).
				Msg("processing.Sweep: diff computation failed")
			continue
		}
		diffed++
	}

	if len(versions) > 0 || len(entries) > 0 {
		logger.Info(ctx).
			Int("counterparts_converted", converted).
			Int("diffs_computed", diffed).
			Msg("processing.Sweep: run complete")
	}
}
