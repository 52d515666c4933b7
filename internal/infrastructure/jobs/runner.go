package jobs

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	cron "github.com/robfig/cron"
	"github.com/rs/zerolog/log"
)

// CronJob is a named unit of background work with a cron schedule.
// Runs of the same job never overlap; a tick is skipped while the
// previous run is still in flight.
type CronJob interface {
	Name() string
	Schedule() string
	Run(ctx context.Context)
}

type Runner struct {
	cron    *cron.Cron
	jobs    []CronJob
	running mapset.Set[string]
	mu      sync.Mutex
}

func NewRunner(jobs []CronJob) *Runner {
	return &Runner{
		cron:    cron.New(),
		jobs:    jobs,
		running: mapset.NewSet[string](),
	}
}

func (r *Runner) Start(ctx context.Context) error {
	for _, job := range r.jobs {
		err := r.cron.AddFunc(job.Schedule(), func() {
			r.mu.Lock()
			if r.running.Contains(job.Name()) {
				r.mu.Unlock()
				log.Warn().Str("job", job.Name()).Msg("jobs.Runner: previous run still in progress, skipping")
				return
			}
			r.running.Add(job.Name())
			r.mu.Unlock()

			defer func() {
				r.mu.Lock()
				defer r.mu.Unlock()
				r.running.Remove(job.Name())
			}()

			job.Run(ctx)
		})
		if err != nil {
			return err
		}
	}

	r.cron.Start()

	return nil
}

func (r *Runner) Stop() {
	log.Info().Msg("jobs.Runner: stopping")
	r.cron.Stop()
}
