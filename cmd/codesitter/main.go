package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/urfave/cli/v3"

	"codesitter/analyzers"
	_ "codesitter/lang" // register built-in analyzer builders
	"codesitter/output"
)

func main() {
	setupLogging()

	app := &cli.Command{
		Name:  "codesitter",
		Usage: "explore code with tree-sitter",
		Commands: []*cli.Command{
			queryCommand(),
			symbolsCommand(),
			outlineCommand(),
			refsCommand(),
			languagesCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		output.WriteError("%s", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

var bootstrapOnce sync.Once

// bootstrap populates the default registry: discovery first (built-in
// builders plus the plugin directory), then the generic fallbacks.
// RegisterDefaults must run last so it can defer to the analyzers
// discovery found.
func bootstrap(cmd *cli.Command) {
	bootstrapOnce.Do(func() {
		analyzers.Discover(cmd.String("plugins"))
		analyzers.RegisterDefaults()
	})
}

// pluginsFlag is shared by every command.
func pluginsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "plugins",
		Usage: "directory of analyzer definition files",
	}
}
