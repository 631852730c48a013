// internal/app/reminder_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event_reminder_bot/internal/domain/declension"
	"event_reminder_bot/internal/domain/event"
	"event_reminder_bot/internal/domain/nearest"
	domainTelegram "event_reminder_bot/internal/domain/telegram"
	"event_reminder_bot/internal/infra/metrics"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	msgNoEvents      = "Список событий пуст."
	msgNothingLeft   = "В этом году событий больше нет."
	headerSingle     = "Ближайшее событие"
	headerMultiple   = "Ближайшие события"
	whenToday        = "сегодня"
	whenInFormat     = "через %s"
	nearestMsgFormat = "%s (%s):\n%s"
)

// Clock supplies the current calendar date in the bot's time zone.
type Clock interface {
	Today() time.Time
}

// ReminderService answers "what is the nearest event" from the stored records.
type ReminderService struct {
	repo           event.Repository
	telegramClient domainTelegram.Client
	clock          Clock
	limits         event.Limits
	group          domainTelegram.Target
	logger         *logrus.Entry
}

func NewReminderService(
	repo event.Repository,
	tc domainTelegram.Client,
	clock Clock,
	limits event.Limits,
	group domainTelegram.Target,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		repo:           repo,
		telegramClient: tc,
		clock:          clock,
		limits:         limits,
		group:          group,
		logger:         logger,
	}
}

// occurrence pairs a validated event with the concrete date it falls on this year.
type occurrence struct {
	source   *event.Event
	concrete *event.Event
}

// line renders the occurrence for the message body. Floating rules carry the
// year of their anchor, which says nothing about age, so only fixed dates get
// the elapsed-years suffix.
func (o occurrence) line(currentYear int) string {
	if o.source.SpecialRule() {
		return o.concrete.Summary()
	}
	return o.source.DisplayText(currentYear)
}

// Today exposes the service clock to transport handlers.
func (s *ReminderService) Today() time.Time {
	return s.clock.Today()
}

// NearestMessage builds the text announcing the nearest upcoming event(s) as seen from today.
func (s *ReminderService) NearestMessage(ctx context.Context, today time.Time) (string, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list events: %w", err)
	}
	if len(records) == 0 {
		return msgNoEvents, nil
	}

	occurrences, skipped := s.buildOccurrences(records, today.Year())
	if skipped != nil {
		s.logger.WithError(skipped).WithField("skipped", len(skipped.Errors)).Warn("Some stored events were left out of the search")
	}

	res := nearest.Select(today, occurrences, func(o occurrence) (int, int) {
		return o.concrete.Day(), o.concrete.Month()
	})
	if !res.Found() {
		return msgNothingLeft, nil
	}

	lines := make([]string, 0, len(res.Items))
	for _, o := range res.Items {
		lines = append(lines, o.line(today.Year()))
	}
	s.logger.WithFields(logrus.Fields{"days": res.Days, "events": len(lines)}).Debug("Nearest events selected")
	return formatNearest(res.Days, lines), nil
}

// buildOccurrences validates records and moves floating rules into year, the anchor
// year included. Records that cannot take part are returned as a multierror and
// counted, never fatal.
func (s *ReminderService) buildOccurrences(records []*event.StoredRecord, year int) ([]occurrence, *multierror.Error) {
	var skipped *multierror.Error
	occurrences := make([]occurrence, 0, len(records))

	for _, rec := range records {
		ev, err := event.NewWithLimits(rec.Record, s.limits)
		if err != nil {
			metrics.SkippedRecords.WithLabelValues(metrics.ReasonInvalid).Inc()
			skipped = multierror.Append(skipped, fmt.Errorf("event %d (%s): %w", rec.ID, rec.DayMonth, err))
			continue
		}

		concrete := ev
		if ev.SpecialRule() {
			concrete, err = ev.Project(year)
			if err != nil {
				reason := metrics.ReasonInvalid
				if errors.Is(err, event.ErrUnrepresentableOccurrence) {
					reason = metrics.ReasonUnrepresentable
				}
				metrics.SkippedRecords.WithLabelValues(reason).Inc()
				skipped = multierror.Append(skipped, fmt.Errorf("event %d (%s): %w", rec.ID, ev, err))
				continue
			}
		}
		occurrences = append(occurrences, occurrence{source: ev, concrete: concrete})
	}
	return occurrences, skipped
}

func formatNearest(days int, lines []string) string {
	header := headerSingle
	if len(lines) > 1 {
		header = headerMultiple
	}
	when := whenToday
	if days > 0 {
		count, _ := declension.FullValue(days, declension.UnitDays)
		when = fmt.Sprintf(whenInFormat, count)
	}
	return fmt.Sprintf(nearestMsgFormat, header, when, strings.Join(lines, "\n"))
}

// SendNearestToGroup posts today's nearest-event message to the configured group chat.
func (s *ReminderService) SendNearestToGroup(ctx context.Context) error {
	today := s.clock.Today()
	logCtx := s.logger.WithFields(logrus.Fields{
		"chat_id": s.group.ChatID,
		"date":    today.Format("2006-01-02"),
	})

	text, err := s.NearestMessage(ctx, today)
	if err != nil {
		metrics.MessageErrors.WithLabelValues(metrics.TriggerSchedule).Inc()
		logCtx.WithError(err).Error("Failed to build nearest-event message")
		return err
	}

	if err := s.telegramClient.SendMessage(s.group, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault}); err != nil {
		metrics.MessageErrors.WithLabelValues(metrics.TriggerSchedule).Inc()
		logCtx.WithError(err).Error("Failed to send nearest-event message to group")
		return fmt.Errorf("failed to send nearest-event message: %w", err)
	}
	metrics.MessagesSent.WithLabelValues(metrics.TriggerSchedule).Inc()
	logCtx.Info("Nearest-event message sent to group")
	return nil
}
