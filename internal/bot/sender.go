package bot

import (
	"group-timetable-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

type apiSender struct {
	api *tgbotapi.BotAPI
}

// NewSender wraps the API handle as a service.Sender for the reminder and
// broadcast services.
func NewSender(api *tgbotapi.BotAPI) service.Sender {
	return &apiSender{api: api}
}

func (s *apiSender) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := s.api.Send(msg)
	return err
}
