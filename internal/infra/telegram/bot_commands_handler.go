// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"time"

	"event_reminder_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	msgGreeting     = "Привет! Нажми нужную кнопку."
	msgTest         = "Просто тест!"
	msgNearestError = "Не удалось получить ближайшее событие. Попробуйте позже."
	msgUserHelp     = "Я напоминаю о ближайших событиях: каждый день присылаю сообщение в группу.\n\n" +
		"/next - Ближайшее событие\n" +
		"/test - Проверить, что бот отвечает\n" +
		"/help - Показать это сообщение"
)

// NearestMessenger builds the nearest-event text. *app.ReminderService implements it.
type NearestMessenger interface {
	Today() time.Time
	NearestMessage(ctx context.Context, today time.Time) (string, error)
}

var (
	menu       = &telebot.ReplyMarkup{}
	btnNearest = menu.Data("Ближайшее событие", "nearest_date")
	btnTest    = menu.Data("Тест", "test_me")
)

func init() {
	menu.Inline(menu.Row(btnNearest), menu.Row(btnTest))
}

// replyOptions answers a request made inside a forum topic in the configured
// bot thread. Private chats get no thread.
func replyOptions(msg *telebot.Message, threadID int) *telebot.SendOptions {
	opts := &telebot.SendOptions{}
	if msg != nil && msg.ThreadID != 0 {
		opts.ThreadID = threadID
	}
	return opts
}

func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	reminders NearestMessenger,
	adminTelegramID int64,
	threadID int,
	baseLogger *logrus.Entry,
) {
	commandsLogger := baseLogger.WithField("handler_group", "user_commands")

	b.Handle("/start", func(c telebot.Context) error {
		commandsLogger.WithFields(logrus.Fields{"command": "/start", "sender_id": senderID(c)}).Info("Processing /start command")
		opts := replyOptions(c.Message(), threadID)
		opts.ReplyMarkup = menu
		return c.Send(msgGreeting, opts)
	})

	test := func(c telebot.Context) error {
		commandsLogger.WithFields(logrus.Fields{"command": "test", "sender_id": senderID(c)}).Debug("Processing test request")
		return c.Send(msgTest, replyOptions(c.Message(), threadID))
	}
	b.Handle("/test", test)
	b.Handle(&btnTest, func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			commandsLogger.WithError(err).Warn("Failed to acknowledge callback")
		}
		return test(c)
	})

	next := func(c telebot.Context) error {
		logCtx := commandsLogger.WithFields(logrus.Fields{"command": "next", "sender_id": senderID(c)})
		logCtx.Info("Processing nearest-event request")

		text, err := reminders.NearestMessage(ctx, reminders.Today())
		if err != nil {
			metrics.MessageErrors.WithLabelValues(metrics.TriggerCommand).Inc()
			logCtx.WithError(err).Error("Failed to build nearest-event message")
			return c.Send(msgNearestError, replyOptions(c.Message(), threadID))
		}
		if err := c.Send(text, replyOptions(c.Message(), threadID)); err != nil {
			metrics.MessageErrors.WithLabelValues(metrics.TriggerCommand).Inc()
			return err
		}
		metrics.MessagesSent.WithLabelValues(metrics.TriggerCommand).Inc()
		return nil
	}
	b.Handle("/next", next)
	b.Handle(&btnNearest, func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			commandsLogger.WithError(err).Warn("Failed to acknowledge callback")
		}
		return next(c)
	})

	b.Handle("/help", func(c telebot.Context) error {
		if senderID(c) == adminTelegramID {
			return c.Send(msgUserHelp+"\n\n"+msgAdminHelp, replyOptions(c.Message(), threadID))
		}
		return c.Send(msgUserHelp, replyOptions(c.Message(), threadID))
	})
}

func senderID(c telebot.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
