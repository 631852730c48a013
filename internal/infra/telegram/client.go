// internal/infra/telegram/client.go
package telegram

import (
	domainTelegram "event_reminder_bot/internal/domain/telegram"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to a user, group or forum topic.
func (tba *TelebotAdapter) SendMessage(to domainTelegram.Target, text string, options *telebot.SendOptions) error {
	_, err := tba.bot.Send(telebot.ChatID(to.ChatID), text, inThread(options, to.ThreadID))
	return err
}

// inThread returns a copy of options addressed to threadID; the caller's value is left as is.
func inThread(options *telebot.SendOptions, threadID int) *telebot.SendOptions {
	var opts telebot.SendOptions
	if options != nil {
		opts = *options
	}
	opts.ThreadID = threadID
	return &opts
}
