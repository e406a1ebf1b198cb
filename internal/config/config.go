package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	LogLevel       string `env:"DRAFT_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"DRAFT_LOG_FORMAT" envDefault:"console"`
	ChampionSource string `env:"DRAFT_CHAMPION_SOURCE" envDefault:"embedded"`
	ChampionFile   string `env:"DRAFT_CHAMPION_FILE"`
	DatabaseURL    string `env:"DATABASE_URL"`
	BlueName       string `env:"DRAFT_BLUE_NAME" envDefault:"Blue"`
	RedName        string `env:"DRAFT_RED_NAME" envDefault:"Red"`
	SpectateAddr   string `env:"DRAFT_SPECTATE_ADDR"`
}

// Load reads the given .env files (default ".env"), skipping any that do not
// exist, then parses the process environment. Variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.ChampionSource {
	case SourceEmbedded:
	case SourceFile:
		if c.ChampionFile == "" {
			return errors.New("DRAFT_CHAMPION_FILE is required for the file champion source")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres champion source")
		}
	default:
		return fmt.Errorf("unknown champion source %q", c.ChampionSource)
	}
	return nil
}
