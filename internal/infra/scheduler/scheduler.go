package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const dailyJobTimeout = 1 * time.Minute

// GroupNotifier posts the nearest-event message to the group chat.
type GroupNotifier interface {
	SendNearestToGroup(ctx context.Context) error
}

type ReminderScheduler struct {
	cronEngine    *cron.Cron
	notifier      GroupNotifier
	logger        *logrus.Entry
	cronSpecDaily string
}

// NewReminderScheduler evaluates cronSpecDaily (e.g. "0 9 * * *") in loc, the
// zone the events are reckoned in, not the server's local time.
func NewReminderScheduler(
	notifier GroupNotifier,
	logger *logrus.Entry,
	loc *time.Location,
	cronSpecDaily string,
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine:    cron.New(cron.WithLocation(loc)),
		notifier:      notifier,
		logger:        logger,
		cronSpecDaily: cronSpecDaily,
	}
}

func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDaily, s.runDaily)
	if err != nil {
		return fmt.Errorf("could not add daily reminder cron job %q: %w", s.cronSpecDaily, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecDaily).Info("Reminder scheduler started")
	return nil
}

// runDaily is the body of the daily job.
func (s *ReminderScheduler) runDaily() {
	s.logger.Info("Cron job triggered for the daily nearest-event message.")
	ctx, cancel := context.WithTimeout(context.Background(), dailyJobTimeout)
	defer cancel()

	if err := s.notifier.SendNearestToGroup(ctx); err != nil {
		s.logger.WithError(err).Error("Daily nearest-event message failed")
	}
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
