package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	buttonWhereIsClass = "Where is the class?"
	buttonWhoDeveloper = "Who is the developer?"
)

func createMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonWhereIsClass),
			tgbotapi.NewKeyboardButton(buttonWhoDeveloper),
		),
	)
}
