package cli

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/seedgen/pkg/i18n"
	"github.com/dmitrymomot/seedgen/pkg/logger"
	"github.com/dmitrymomot/seedgen/pkg/seed"
)

const sentryFlushTimeout = 2 * time.Second

// NewCommand builds the seedgen root command.
// environ overrides the process environment; pass nil to use os.Environ.
func NewCommand(environ map[string]string) *cobra.Command {
	cfg, envErr := LoadConfig(environ)

	cmd := &cobra.Command{
		Use:   "seedgen",
		Short: "Combine per-language translation files into a seed data literal",
		Long: `seedgen reads {dir}/{lang}/{namespace}.json (or .yaml/.yml) for every language,
walks the selected top-level sections of the reference language and prints an
object literal where every string carries its value in all languages.

Missing or malformed translation files are reported and treated as empty.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Dir, "dir", "d", cfg.Dir, "locales directory containing one folder per language")
	flags.StringSliceVarP(&cfg.Languages, "languages", "l", cfg.Languages, "languages to combine, in output order")
	flags.StringVarP(&cfg.Reference, "reference", "r", cfg.Reference, "language whose document shape drives the output")
	flags.StringVarP(&cfg.Namespace, "namespace", "n", cfg.Namespace, "document name inside each language folder")
	flags.StringSliceVarP(&cfg.Sections, "sections", "s", cfg.Sections, "top-level sections to extract, in output order")
	flags.StringVar(&cfg.Variable, "var", cfg.Variable, "name of the generated constant")
	flags.StringVar(&cfg.MergeTarget, "merge-target", cfg.MergeTarget, "existing constant named in the merge hint (empty to omit)")
	flags.StringVar(&cfg.Header, "header", cfg.Header, "leading comment (empty to omit)")
	flags.IntVar(&cfg.Indent, "indent", cfg.Indent, "spaces per nesting level")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, cfg Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Output: cmd.ErrOrStderr(),
		Format: format,
		Level:  level,
		Sentry: cfg.Sentry,
	})
	if cfg.Sentry.DSN != "" {
		defer logger.Flush(sentryFlushTimeout)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.ContextWithAttrs(ctx, slog.String("run_id", uuid.NewString()))

	catalog, err := i18n.Load(ctx, os.DirFS(cfg.Dir),
		i18n.WithLanguages(cfg.Languages...),
		i18n.WithReferenceLanguage(cfg.Reference),
		i18n.WithNamespace(cfg.Namespace),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	emitter, err := seed.New(catalog,
		seed.WithSections(cfg.Sections...),
		seed.WithVariable(cfg.Variable),
		seed.WithMergeTarget(cfg.MergeTarget),
		seed.WithHeader(cfg.Header),
		seed.WithIndent(strings.Repeat(" ", max(cfg.Indent, 0))),
		seed.WithMissingHandler(func(lang string, path i18n.KeyPath) {
			log.DebugContext(ctx, "missing translation",
				slog.String("lang", lang),
				slog.String("key", path.String()),
			)
		}),
	)
	if err != nil {
		return err
	}

	stats, err := emitter.Emit(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	attrs := []any{
		slog.Int("sections", len(emitter.Sections())),
		slog.Int("leaves", stats.Leaves),
		slog.Int("failed_documents", len(catalog.Failures())),
	}
	for _, lang := range catalog.Languages() {
		if n := stats.Missing[lang]; n > 0 {
			attrs = append(attrs, slog.Int("missing_"+lang, n))
		}
	}
	log.InfoContext(ctx, "seed data generated", attrs...)

	return nil
}
