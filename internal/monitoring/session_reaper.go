package monitoring

import (
	"github.com/bizlingo/bizlingo-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// SessionReaper periodically deletes expired sessions so revoked and stale
// logins do not accumulate in storage.
type SessionReaper struct {
	sessions services.SessionServiceProvider
	cron     *cron.Cron
	schedule string
}

// NewSessionReaper creates a reaper running on the given cron expression.
func NewSessionReaper(sessions services.SessionServiceProvider, schedule string) *SessionReaper {
	return &SessionReaper{
		sessions: sessions,
		cron:     cron.New(),
		schedule: schedule,
	}
}

// Start registers the cron job and begins the schedule. It also reaps once
// immediately so a restart clears anything that expired while down.
func (r *SessionReaper) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, r.reap); err != nil {
		return err
	}
	log.Info().Str("schedule", r.schedule).Msg("Starting session reaper")
	r.reap()
	r.cron.Start()
	return nil
}

// Stop halts the schedule. Running jobs finish.
func (r *SessionReaper) Stop() {
	log.Info().Msg("Stopping session reaper")
	<-r.cron.Stop().Done()
}

func (r *SessionReaper) reap() {
	purged, err := r.sessions.PurgeExpired()
	if err != nil {
		log.Error().Err(err).Msg("SessionReaper: failed to purge expired sessions")
		return
	}
	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("SessionReaper: expired sessions removed")
	}
}
