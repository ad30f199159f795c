// Command seedgen prints a seed data literal combining every language's
// translation of the selected sections.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/seedgen/internal/cli"
	"github.com/dmitrymomot/seedgen/pkg/logger"
)

func main() {
	if err := cli.NewCommand(nil).ExecuteContext(context.Background()); err != nil {
		log := logger.New(logger.Config{Format: logger.FormatText})
		log.Error("seedgen failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
