package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"event_reminder_bot/internal/app"
	"event_reminder_bot/internal/domain/calendar"
	"event_reminder_bot/internal/domain/event"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	msgUnauthorized = "Ошибка: У вас нет прав для выполнения этой команды."
	msgAdminHelp    = "Команды администратора:\n" +
		"/add ДДММ [ГГГГ] [rule[:N]] описание - Добавить событие. rule делает дату плавающей: " +
		"N-й такой же день недели месяца, без N - последний.\n" +
		"/list - Показать все события\n" +
		"/delete <ID> - Удалить событие"
	msgAddUsage    = "Неверный формат команды. Используйте: /add ДДММ [ГГГГ] [rule[:N]] описание"
	msgDeleteUsage = "Неверный формат команды. Используйте: /delete <ID>"
)

// RegisterAdminHandlers registers handlers for admin commands.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, adminService *app.AdminService, adminTelegramID int64, threadID int, today func() time.Time, baseLogger *logrus.Entry) {
	b.Handle("/add", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/add",
			"sender_id": senderID(c),
		})
		handlerLogger.Info("Command received")

		if senderID(c) != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send(msgUnauthorized, replyOptions(c.Message(), threadID))
		}

		rec, err := parseAddArgs(c.Args())
		if err != nil {
			handlerLogger.WithField("args_count", len(c.Args())).Warn("Invalid command format")
			return c.Send(msgAddUsage, replyOptions(c.Message(), threadID))
		}

		stored, ev, err := adminService.AddEvent(ctx, senderID(c), rec)
		if err != nil {
			handlerLogger.WithError(err).Warn("Failed to add event")
			return c.Send(describeAddError(err), replyOptions(c.Message(), threadID))
		}

		handlerLogger.WithFields(logrus.Fields{"event_id": stored.ID, "event": ev.String()}).Info("Event added successfully")
		return c.Send(fmt.Sprintf("Событие добавлено (ID: %d): %s", stored.ID, describeEvent(ev, today().Year())), replyOptions(c.Message(), threadID))
	})

	b.Handle("/list", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/list",
			"sender_id": senderID(c),
		})
		handlerLogger.Info("Command received")

		entries, err := adminService.ListEvents(ctx, senderID(c))
		if err != nil {
			if errors.Is(err, app.ErrAdminNotAuthorized) {
				handlerLogger.Warn("Unauthorized access attempt")
				return c.Send(msgUnauthorized, replyOptions(c.Message(), threadID))
			}
			handlerLogger.WithError(err).Error("Failed to list events")
			return c.Send("Произошла ошибка при получении списка событий.", replyOptions(c.Message(), threadID))
		}
		if len(entries) == 0 {
			return c.Send("Список событий пуст.", replyOptions(c.Message(), threadID))
		}

		year := today().Year()
		var sb strings.Builder
		sb.WriteString("События:\n")
		for _, e := range entries {
			if e.Err != nil {
				sb.WriteString(fmt.Sprintf("%d. %s - некорректная запись: %v\n", e.Stored.ID, e.Stored.DayMonth, e.Err))
				continue
			}
			sb.WriteString(fmt.Sprintf("%d. %s\n", e.Stored.ID, describeEvent(e.Event, year)))
		}
		return c.Send(strings.TrimRight(sb.String(), "\n"), replyOptions(c.Message(), threadID))
	})

	b.Handle("/delete", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/delete",
			"sender_id": senderID(c),
		})
		handlerLogger.Info("Command received")

		if senderID(c) != adminTelegramID {
			handlerLogger.Warn("Unauthorized access attempt")
			return c.Send(msgUnauthorized, replyOptions(c.Message(), threadID))
		}

		args := c.Args()
		if len(args) != 1 {
			return c.Send(msgDeleteUsage, replyOptions(c.Message(), threadID))
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			handlerLogger.WithField("arg", args[0]).Warn("Invalid event ID format")
			return c.Send("Ошибка: ID события должен быть числом.", replyOptions(c.Message(), threadID))
		}
		handlerLogger = handlerLogger.WithField("event_id", id)

		if err := adminService.RemoveEvent(ctx, senderID(c), id); err != nil {
			switch {
			case errors.Is(err, event.ErrRecordNotFound):
				handlerLogger.Warn("Event to remove not found")
				return c.Send(fmt.Sprintf("Событие с ID %d не найдено.", id), replyOptions(c.Message(), threadID))
			default:
				handlerLogger.WithError(err).Error("Failed to remove event")
				return c.Send("Произошла ошибка при удалении события.", replyOptions(c.Message(), threadID))
			}
		}
		handlerLogger.Info("Event removed successfully")
		return c.Send(fmt.Sprintf("Событие %d удалено.", id), replyOptions(c.Message(), threadID))
	})
}

// describeAddError turns a validation failure into a message for the admin.
func describeAddError(err error) string {
	var rangeErr *event.DayOutOfRangeError
	switch {
	case errors.As(err, &rangeErr):
		return rangeErr.Error() + "."
	case errors.Is(err, event.ErrInvalidFormat):
		return "Некорректная дата. Нужно 4 цифры вида ДДММ."
	case errors.Is(err, event.ErrInvalidMonth):
		return "Такого месяца нет."
	case errors.Is(err, event.ErrNoAnchorYear):
		return "Для плавающего правила нужен год образца, например: /add 2811 2024 правило День благодарения."
	case errors.Is(err, event.ErrInvalidYear):
		return "Год не подходит: " + err.Error()
	case errors.Is(err, event.ErrInvalidWeekNumber):
		return "Номер недели должен быть от 1 до 6."
	default:
		return "Произошла ошибка при добавлении события."
	}
}

// describeEvent renders an event for admin listings, including its floating rule.
func describeEvent(ev *event.Event, currentYear int) string {
	if !ev.SpecialRule() {
		return ev.DisplayText(currentYear)
	}
	params, err := ev.SpecialParams()
	if err != nil {
		return ev.Summary()
	}
	weekday := calendar.WeekdayShortName(params.Weekday)
	rule := "последний " + weekday
	if ev.WeekNumber() != 0 {
		rule = fmt.Sprintf("%d-й %s", ev.WeekNumber(), weekday)
	}
	return fmt.Sprintf("%s [%s, образец %s]", ev.Summary(), rule, ev)
}
