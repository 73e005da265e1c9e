package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"group-timetable-bot/internal/bot"
	"group-timetable-bot/internal/models/config"
	"group-timetable-bot/internal/repository"
	"group-timetable-bot/internal/repository/chat"
	"group-timetable-bot/internal/repository/subscriber"
	"group-timetable-bot/internal/repository/user"
	"group-timetable-bot/internal/service"
	broadcast_service "group-timetable-bot/internal/service/broadcast"
	reminder_service "group-timetable-bot/internal/service/reminder"
	subscriber_service "group-timetable-bot/internal/service/subscriber"
	user_service "group-timetable-bot/internal/service/user"
	"group-timetable-bot/internal/timetable"
	"group-timetable-bot/internal/web"
	database "group-timetable-bot/pkg"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			newLocation,
			database.NewPostgres,
			newTimetables,
			timetable.NewResolver,

			user.NewUserRepository,
			chat.NewChatRepository,
			subscriber.NewSubscriberRepository,

			bot.NewAPI,
			bot.NewSender,

			newUserService,
			subscriber_service.NewSubscriberService,
			broadcast_service.NewBroadcastService,
			newReminderService,

			bot.NewBot,
			newWebHandler,
		),
		fx.Invoke(run),
	).Run()
}

func newLocation(cfg *config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Printf("Error loading timezone %s: %v, falling back to UTC", cfg.Schedule.Timezone, err)
		return time.UTC
	}
	return loc
}

func newTimetables(cfg *config.Config) (*timetable.Set, error) {
	return timetable.Load(cfg.Schedule.TimetableFile)
}

func newUserService(userRepo repository.UserRepository, timetables *timetable.Set, cfg *config.Config) service.UserService {
	return user_service.NewUserService(userRepo, timetables, cfg.Schedule.DefaultGroup)
}

func newReminderService(
	subscriberRepo repository.SubscriberRepository,
	resolver *timetable.Resolver,
	sender service.Sender,
	loc *time.Location,
	cfg *config.Config,
) service.ReminderService {
	return reminder_service.NewReminderService(
		subscriberRepo,
		resolver,
		sender,
		loc,
		cfg.Schedule.ReminderLead,
		cfg.Schedule.PollInterval,
		cfg.Schedule.DefaultGroup,
	)
}

func newWebHandler(resolver *timetable.Resolver, timetables *timetable.Set, cfg *config.Config, loc *time.Location) *web.Handler {
	return web.NewHandler(resolver, timetables, cfg.Schedule.DefaultGroup, loc)
}

func run(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	telegramBot *bot.Bot,
	reminders service.ReminderService,
	handler *web.Handler,
	cfg *config.Config,
) {
	mux := http.NewServeMux()
	handler.Register(mux)
	server := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: mux}

	pollCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Printf("🚀 Запуск в окружении: %s", cfg.Environment)

			go func() {
				if err := telegramBot.Start(); err != nil {
					log.Printf("❌ Ошибка запуска бота: %v", err)
					shutdowner.Shutdown()
				}
			}()

			go reminders.Run(pollCtx)

			go func() {
				log.Printf("🌐 HTTP API слушает на :%s", cfg.HTTPPort)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("❌ Ошибка HTTP сервера: %v", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("🛑 Получен сигнал завершения...")
			cancel()
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			log.Println("👋 Корректное завершение работы")
			return nil
		},
	})
}
