package app

import (
	"context"
	"io"
	"time"

	"event_reminder_bot/internal/domain/event"
	domainTelegram "event_reminder_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

type fakeRepo struct {
	records []*event.StoredRecord
	listErr error
	nextID  int64
}

func (r *fakeRepo) Create(_ context.Context, rec *event.StoredRecord) error {
	r.nextID++
	rec.ID = r.nextID
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeRepo) ListAll(context.Context) ([]*event.StoredRecord, error) {
	return r.records, r.listErr
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return event.ErrRecordNotFound
}

func stored(records ...event.Record) *fakeRepo {
	repo := &fakeRepo{}
	for _, r := range records {
		_ = repo.Create(context.Background(), &event.StoredRecord{Record: r})
	}
	return repo
}

type sentMessage struct {
	to   domainTelegram.Target
	text string
}

type fakeClient struct {
	sent []sentMessage
	err  error
}

func (c *fakeClient) SendMessage(to domainTelegram.Target, text string, _ *telebot.SendOptions) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, sentMessage{to: to, text: text})
	return nil
}

type fixedClock time.Time

func (c fixedClock) Today() time.Time { return time.Time(c) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
