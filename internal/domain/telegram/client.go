package telegram

import "gopkg.in/telebot.v3"

// Target addresses a chat and, in forum supergroups, a topic inside it.
type Target struct {
	ChatID   int64
	ThreadID int // 0 for the main chat
}

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(to Target, text string, options *telebot.SendOptions) error
}
