package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	// Config is the composition root's view of the environment. The
	// core packages themselves take these values as constructor
	// arguments and never read the environment directly.
	Config struct {
		Database
		OpenLibrary
	}

	Database struct {
		Path string
	}

	OpenLibrary struct {
		BaseURL string
		Timeout time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("openlibrary_base_url", DefaultOpenLibraryBaseURL)
	v.SetDefault("openlibrary_timeout", "10s")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		OpenLibrary: OpenLibrary{
			BaseURL: v.GetString("OPENLIBRARY_BASE_URL"),
			Timeout: v.GetDuration("OPENLIBRARY_TIMEOUT"),
		},
	}
}
