package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"group-timetable-bot/internal/timetable"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const developerText = "*Developer:* @Moltentungsten (Yash Kumar Raut)\n" +
	"Timetable: CVRGU, Group-7, Sem-5.\n" +
	"Dept. Coordinator: Dr. B.N. Behera.\n" +
	"University Coordinator: Dr. G. Mohanta."

const helpText = `*Commands*

• /today – today's timetable
• /tomorrow – tomorrow's timetable
• /week – week at a glance
• /next – next class from now
• /now – what is happening right now
• /subscribe – reminders 10 min before each class
• /unsubscribe – stop reminders
• /setgroup <name> – change your group
• /announce <msg> – admin broadcast
• /help – this help`

// Обработка сообщения здесь
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	log.Printf("[%s] %s", message.From.UserName, message.Text)

	chatID := message.Chat.ID

	// Every chat that talks to the bot becomes a broadcast recipient.
	if err := b.BroadcastService.RememberChat(chatID, chatTitle(message.Chat), message.Chat.Type); err != nil {
		log.Printf("Ошибка сохранения чата %d: %v", chatID, err)
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStartCommand(message)
		case "help":
			b.sendMarkdown(chatID, helpText)
		case "today":
			b.handleDayCommand(message, 0)
		case "tomorrow":
			b.handleDayCommand(message, 1)
		case "week":
			b.handleWeekCommand(message)
		case "next":
			b.handleNextCommand(message)
		case "now":
			b.handleWhereIsClass(message)
		case "subscribe":
			b.handleSubscribeCommand(message)
		case "unsubscribe":
			b.handleUnsubscribeCommand(message)
		case "setgroup":
			b.handleSetGroupCommand(message)
		case "announce":
			b.handleAnnounceCommand(message)
		default:
			b.sendMessage(chatID, "Unknown command. Try /help.")
		}
		return
	}

	// Free-text routing for the keyboard buttons.
	text := strings.ToLower(strings.TrimSpace(message.Text))
	switch {
	case strings.Contains(text, "where is the class"):
		b.handleWhereIsClass(message)
	case strings.Contains(text, "who is the developer"):
		b.sendMarkdown(chatID, developerText)
	default:
		b.sendMessage(chatID, "Please use the provided buttons or /help.")
	}
}

func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	user, err := b.UserService.RegisterOrUpdate(
		int64(message.From.ID),
		message.From.FirstName,
		message.From.LastName,
		message.From.UserName,
	)
	if err != nil {
		log.Printf("Ошибка регистрации пользователя: %v", err)
		b.sendMessage(message.Chat.ID, "❌ Registration failed, please try again.")
		return
	}

	text := fmt.Sprintf("*Welcome!* You are registered under *%s*.\n\n", user.GroupName) + helpText
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = createMainKeyboard()
	b.api.Send(msg)
}

func (b *Bot) handleDayCommand(message *tgbotapi.Message, daysAhead int) {
	group := b.UserService.GroupFor(int64(message.From.ID))
	tt, ok := b.timetables.Get(group)
	if !ok {
		b.sendMessage(message.Chat.ID, "❌ Timetable for your group was not found.")
		return
	}

	day := b.now().AddDate(0, 0, daysAhead).Weekday()
	label := "Today's"
	if daysAhead == 1 {
		label = "Tomorrow's"
	}

	text := fmt.Sprintf("*%s schedule for %s:*\n\n%s", label, group, renderDay(tt, day))
	b.sendMarkdown(message.Chat.ID, text)
}

func (b *Bot) handleWeekCommand(message *tgbotapi.Message) {
	group := b.UserService.GroupFor(int64(message.From.ID))
	tt, ok := b.timetables.Get(group)
	if !ok {
		b.sendMessage(message.Chat.ID, "❌ Timetable for your group was not found.")
		return
	}

	b.sendMarkdown(message.Chat.ID, fmt.Sprintf("*Week at a glance for %s:*\n\n%s", group, renderWeek(tt)))
}

func (b *Bot) handleNextCommand(message *tgbotapi.Message) {
	group := b.UserService.GroupFor(int64(message.From.ID))
	now := b.now()

	next, err := b.resolver.NextFrom(group, now.Weekday(), timetable.ClockOf(now))
	if err != nil {
		b.sendMessage(message.Chat.ID, "❌ Timetable for your group was not found.")
		return
	}
	if next == nil {
		b.sendMessage(message.Chat.ID, "No upcoming classes found.")
		return
	}

	b.sendMarkdown(message.Chat.ID, "*Next class*\n"+renderUpcoming(next))
}

func (b *Bot) handleWhereIsClass(message *tgbotapi.Message) {
	group := b.UserService.GroupFor(int64(message.From.ID))
	tt, ok := b.timetables.Get(group)
	if !ok {
		b.sendMessage(message.Chat.ID, "❌ Timetable for your group was not found.")
		return
	}

	now := b.now()
	res, err := b.resolver.Resolve(group, now.Weekday(), timetable.ClockOf(now))
	if err != nil {
		log.Printf("Ошибка резолвера: %v", err)
		b.sendMessage(message.Chat.ID, "❌ Could not resolve the timetable right now.")
		return
	}

	b.sendMarkdown(message.Chat.ID, renderResolution(tt, res))
}

func (b *Bot) handleSubscribeCommand(message *tgbotapi.Message) {
	group := b.UserService.GroupFor(int64(message.From.ID))

	created, err := b.SubscriberService.Subscribe(message.Chat.ID, group)
	if err != nil {
		log.Printf("Ошибка подписки чата %d: %v", message.Chat.ID, err)
		b.sendMessage(message.Chat.ID, "❌ Could not subscribe, please try again.")
		return
	}

	if created {
		b.sendMarkdown(message.Chat.ID,
			fmt.Sprintf("✅ Subscribed: I'll remind you *10 minutes before* each class of *%s*.", group))
		return
	}
	b.sendMessage(message.Chat.ID, "You are already subscribed.")
}

func (b *Bot) handleUnsubscribeCommand(message *tgbotapi.Message) {
	removed, err := b.SubscriberService.Unsubscribe(message.Chat.ID)
	if err != nil {
		log.Printf("Ошибка отписки чата %d: %v", message.Chat.ID, err)
		b.sendMessage(message.Chat.ID, "❌ Could not unsubscribe, please try again.")
		return
	}

	if removed {
		b.sendMessage(message.Chat.ID, "✅ Reminders are off.")
		return
	}
	b.sendMessage(message.Chat.ID, "You were not subscribed.")
}

func (b *Bot) handleSetGroupCommand(message *tgbotapi.Message) {
	group := strings.TrimSpace(message.CommandArguments())
	if group == "" {
		b.sendMarkdown(message.Chat.ID, fmt.Sprintf("*Usage:* /setgroup %s", b.defaultGroup))
		return
	}

	// Make sure the user row exists before updating its group.
	if _, err := b.UserService.RegisterOrUpdate(
		int64(message.From.ID),
		message.From.FirstName,
		message.From.LastName,
		message.From.UserName,
	); err != nil {
		log.Printf("Ошибка регистрации пользователя: %v", err)
		b.sendMessage(message.Chat.ID, "❌ Could not update your group, please try again.")
		return
	}

	if err := b.UserService.SetGroup(int64(message.From.ID), group); err != nil {
		if errors.Is(err, timetable.ErrUnknownGroup) {
			b.sendMessage(message.Chat.ID,
				fmt.Sprintf("Unknown group '%s'. Supported: %s", group, strings.Join(b.timetables.Groups(), ", ")))
			return
		}
		log.Printf("Ошибка смены группы: %v", err)
		b.sendMessage(message.Chat.ID, "❌ Could not update your group, please try again.")
		return
	}

	b.sendMarkdown(message.Chat.ID, fmt.Sprintf("Updated your group to *%s*.", group))
}

func (b *Bot) handleAnnounceCommand(message *tgbotapi.Message) {
	if !b.isAdmin(int64(message.From.ID)) {
		b.sendMessage(message.Chat.ID, "You are not allowed to use /announce.")
		return
	}

	text := strings.TrimSpace(message.CommandArguments())
	if text == "" {
		b.sendMessage(message.Chat.ID, "Usage: /announce <message>")
		return
	}

	sent, failed, err := b.BroadcastService.Announce(text)
	if err != nil {
		log.Printf("Ошибка рассылки: %v", err)
		b.sendMessage(message.Chat.ID, "❌ Broadcast failed.")
		return
	}

	reply := fmt.Sprintf("Announcement sent to %d chat(s).", sent)
	if failed > 0 {
		reply += fmt.Sprintf(" Failed for %d chat(s).", failed)
	}
	b.sendMessage(message.Chat.ID, reply)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	b.api.Send(msg)
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func chatTitle(chat *tgbotapi.Chat) string {
	if chat.Title != "" {
		return chat.Title
	}
	return strings.TrimSpace(chat.FirstName + " " + chat.LastName)
}
