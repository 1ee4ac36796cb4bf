package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the bot and the admin CLI need at startup. It is
// built once in main and passed down explicitly; no package keeps ambient
// copies of it.
type Config struct {
	BotToken   string
	WebhookURL string

	ServerPort string
	Env        string

	DatabasePath string

	AdminIDs []int64

	// Sizing of the inbound update queue and its consumers.
	QueueSize int
	Workers   int
}

// Load reads configuration from the environment (and a .env file if one is
// present in the working directory).
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "bot_database.db")
	viper.SetDefault("UPDATE_QUEUE_SIZE", 64)
	viper.SetDefault("UPDATE_WORKERS", 4)

	// Missing .env is fine, the process environment still applies.
	_ = viper.ReadInConfig()

	return &Config{
		BotToken:     viper.GetString("BOT_TOKEN"),
		WebhookURL:   viper.GetString("WEBHOOK_URL"),
		ServerPort:   viper.GetString("SERVER_PORT"),
		Env:          viper.GetString("SERVER_ENV"),
		DatabasePath: viper.GetString("DATABASE_PATH"),
		AdminIDs:     ParseAdminIDs(viper.GetString("ADMIN_IDS")),
		QueueSize:    viper.GetInt("UPDATE_QUEUE_SIZE"),
		Workers:      viper.GetInt("UPDATE_WORKERS"),
	}
}

// ParseAdminIDs parses a comma-separated list of Telegram user ids. Blank
// and malformed entries are skipped.
func ParseAdminIDs(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// IsAdmin reports whether the given user id is on the admin allow-list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
