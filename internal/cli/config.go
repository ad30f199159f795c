package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/seedgen/pkg/logger"
)

// Config is the full tool configuration.
// Values come from the environment first; command-line flags override them.
type Config struct {
	Dir         string   `env:"SEEDGEN_DIR" envDefault:"public/locales"`
	Languages   []string `env:"SEEDGEN_LANGUAGES" envSeparator:"," envDefault:"en,de,es,fr,nl"`
	Reference   string   `env:"SEEDGEN_REFERENCE" envDefault:"en"`
	Namespace   string   `env:"SEEDGEN_NAMESPACE" envDefault:"translation"`
	Sections    []string `env:"SEEDGEN_SECTIONS" envSeparator:"," envDefault:"common,app,portfolio,stats,projects_preview,contact_page,slogan_generator"`
	Variable    string   `env:"SEEDGEN_VARIABLE" envDefault:"ADDITIONAL_SITE_CONTENT"`
	MergeTarget string   `env:"SEEDGEN_MERGE_TARGET" envDefault:"SEED_SITE_CONTENT"`
	Header      string   `env:"SEEDGEN_HEADER" envDefault:"Generated SEED DATA - Add to SeedData.tsx"`
	LogLevel    string   `env:"SEEDGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"SEEDGEN_LOG_FORMAT" envDefault:"text"`
	Sentry      logger.SentryConfig
	Indent      int `env:"SEEDGEN_INDENT" envDefault:"4"`
}

// LoadConfig reads Config from environ. A nil map reads the process environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
