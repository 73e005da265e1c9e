package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig глобальная конфигурация приложения
var AppConfig *Config

// Config основной конфиг
type Config struct {
	Environment string
	HTTPPort    string
	Bot         BotConfig
	Schedule    ScheduleConfig
	Database    DatabaseConfig
}

type BotConfig struct {
	Token    string
	Debug    bool
	AdminIDs []int64 // ID администраторов, которым разрешён /announce
}

type ScheduleConfig struct {
	Timezone      string
	TimetableFile string // пусто = встроенное расписание
	DefaultGroup  string
	ReminderLead  time.Duration
	PollInterval  time.Duration
}

// Load загружает конфигурацию
func Load() (*Config, error) {
	env := getEnv("ENVIRONMENT", "development")

	AppConfig = &Config{
		Environment: env,
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Bot: BotConfig{
			Token:    getEnv("BOT_TOKEN", ""),
			Debug:    getEnvAsBool("BOT_DEBUG", env != "production"),
			AdminIDs: parseAdminIDs(getEnv("ADMIN_IDS", "")),
		},
		Schedule: ScheduleConfig{
			Timezone:      getEnv("TIMEZONE", "Asia/Kolkata"),
			TimetableFile: getEnv("TIMETABLE_FILE", ""),
			DefaultGroup:  getEnv("DEFAULT_GROUP", "Group-7"),
			ReminderLead:  time.Duration(getEnvAsInt("REMINDER_LEAD_MINUTES", 10)) * time.Minute,
			PollInterval:  time.Duration(getEnvAsInt("REMINDER_POLL_SECONDS", 60)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "timetable-db"),
			SSLMode:  getSSLMode(env),
		},
	}

	if err := validate(); err != nil {
		return nil, err
	}
	return AppConfig, nil
}

// validate проверяет обязательные параметры
func validate() error {
	var errors []string

	if AppConfig.Bot.Token == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	if AppConfig.Database.Username == "" {
		errors = append(errors, "DB_USER is required")
	}

	if AppConfig.Database.Password == "" && AppConfig.Environment == "production" {
		errors = append(errors, "DB_PASSWORD is required in production")
	}

	if AppConfig.Schedule.ReminderLead <= 0 {
		errors = append(errors, "REMINDER_LEAD_MINUTES must be positive")
	}

	if AppConfig.Schedule.PollInterval <= 0 {
		errors = append(errors, "REMINDER_POLL_SECONDS must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errors, ", "))
	}

	return nil
}

// getSSLMode возвращает режим SSL в зависимости от окружения
func getSSLMode(env string) string {
	if env == "production" {
		return "require"
	}
	return "disable"
}

// parseAdminIDs парсит список ID администраторов
func parseAdminIDs(ids string) []int64 {
	if ids == "" {
		return []int64{}
	}

	var result []int64
	for _, idStr := range strings.Split(ids, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64); err == nil {
			result = append(result, id)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
