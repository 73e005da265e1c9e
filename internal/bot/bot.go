package bot

import (
	"fmt"
	"log"
	"time"

	"group-timetable-bot/internal/models/config"
	"group-timetable-bot/internal/service"
	"group-timetable-bot/internal/timetable"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// NewAPI authorizes against the Telegram Bot API.
func NewAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Bot.Debug

	log.Printf("🤖 Бот инициализирован: %s (debug: %v)", api.Self.UserName, cfg.Bot.Debug)
	log.Printf("👑 Администраторы: %v", cfg.Bot.AdminIDs)

	return api, nil
}

type Bot struct {
	api               *tgbotapi.BotAPI
	UserService       service.UserService
	SubscriberService service.SubscriberService
	BroadcastService  service.BroadcastService

	resolver   *timetable.Resolver
	timetables *timetable.Set

	adminIDs     []int64
	defaultGroup string
	loc          *time.Location
}

func NewBot(
	api *tgbotapi.BotAPI,
	userService service.UserService,
	subscriberService service.SubscriberService,
	broadcastService service.BroadcastService,
	resolver *timetable.Resolver,
	timetables *timetable.Set,
	cfg *config.Config,
	loc *time.Location,
) *Bot {
	return &Bot{
		api:               api,
		UserService:       userService,
		SubscriberService: subscriberService,
		BroadcastService:  broadcastService,
		resolver:          resolver,
		timetables:        timetables,
		adminIDs:          cfg.Bot.AdminIDs,
		defaultGroup:      cfg.Schedule.DefaultGroup,
		loc:               loc,
	}
}

func (b *Bot) Start() error {
	log.Printf("Авторизован как %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) now() time.Time {
	return time.Now().In(b.loc)
}

func (b *Bot) isAdmin(userID int64) bool {
	for _, id := range b.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
