package main

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"codesitter/analysis"
	"codesitter/analyzers"
	"codesitter/output"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "run a tree-sitter query",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "tree-sitter query string",
			},
			&cli.StringFlag{
				Name:  "query-file",
				Usage: "path to a tree-sitter query file",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Value:   "go",
				Usage:   "language the query targets",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "root path to scan",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "single file to query",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output for LLM context limits",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   int64(runtime.NumCPU()),
				Usage:   "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Value: 2 * 1024 * 1024,
				Usage: "skip files larger than this",
			},
			pluginsFlag(),
		},
		Action: runQuery,
	}
}

func runQuery(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	querySource, err := resolveQuery(cmd.String("query"), cmd.String("query-file"))
	if err != nil {
		return err
	}

	opts := analysis.QueryOptions{
		Query:    querySource,
		Language: cmd.String("lang"),
		Path:     cmd.String("path"),
		File:     cmd.String("file"),
		Jobs:     int(cmd.Int("jobs")),
		MaxBytes: cmd.Int("max-bytes"),
	}

	matches, err := engine().Query(opts)
	if err != nil {
		return err
	}

	return writeJSON(cmd, matches)
}

func resolveQuery(text, filePath string) (string, error) {
	if text != "" && filePath != "" {
		return "", errors.New("use --query or --query-file, not both")
	}
	if text != "" {
		return text, nil
	}
	if filePath == "" {
		return "", errors.New("--query or --query-file is required")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func symbolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "symbols",
		Usage: "extract symbols from code",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "restrict to one language (default: all registered)",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "root path to scan",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "single file to analyze",
			},
			&cli.StringFlag{
				Name:  "visibility",
				Value: "all",
				Usage: "filter: all, public, private",
			},
			&cli.BoolFlag{
				Name:  "include-source",
				Usage: "include source code snippets",
			},
			&cli.IntFlag{
				Name:  "max-source-lines",
				Value: 10,
				Usage: "max lines for source snippets",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   int64(runtime.NumCPU()),
				Usage:   "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Value: 2 * 1024 * 1024,
				Usage: "skip files larger than this",
			},
			pluginsFlag(),
		},
		Action: runSymbols,
	}
}

func runSymbols(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	opts := analysis.SymbolsOptions{
		Language:       cmd.String("lang"),
		Path:           cmd.String("path"),
		File:           cmd.String("file"),
		Visibility:     cmd.String("visibility"),
		IncludeSource:  cmd.Bool("include-source"),
		MaxSourceLines: int(cmd.Int("max-source-lines")),
		Jobs:           int(cmd.Int("jobs")),
		MaxBytes:       cmd.Int("max-bytes"),
	}

	results, err := engine().Symbols(opts)
	if err != nil {
		return err
	}

	return writeJSON(cmd, results)
}

func outlineCommand() *cli.Command {
	return &cli.Command{
		Name:  "outline",
		Usage: "get file structure overview",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "file to analyze (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "force a language instead of resolving the extension",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			&cli.BoolFlag{
				Name:  "include-source",
				Usage: "include source code snippets",
			},
			&cli.IntFlag{
				Name:  "max-source-lines",
				Value: 5,
				Usage: "max lines for source snippets",
			},
			pluginsFlag(),
		},
		Action: runOutline,
	}
}

func runOutline(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	opts := analysis.OutlineOptions{
		File:           cmd.String("file"),
		Language:       cmd.String("lang"),
		IncludeSource:  cmd.Bool("include-source"),
		MaxSourceLines: int(cmd.Int("max-source-lines")),
	}

	outline, err := engine().Outline(opts)
	if err != nil {
		return err
	}

	return writeJSON(cmd, outline)
}

func refsCommand() *cli.Command {
	return &cli.Command{
		Name:  "refs",
		Usage: "find references to a symbol",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "symbol name to find references for (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "restrict to one language (default: all registered)",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "root path to scan",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "single file to search",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			&cli.BoolFlag{
				Name:  "include-context",
				Value: true,
				Usage: "include surrounding code context",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   int64(runtime.NumCPU()),
				Usage:   "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "max-bytes",
				Value: 2 * 1024 * 1024,
				Usage: "skip files larger than this",
			},
			pluginsFlag(),
		},
		Action: runRefs,
	}
}

func runRefs(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	opts := analysis.RefsOptions{
		Symbol:         cmd.String("symbol"),
		Language:       cmd.String("lang"),
		Path:           cmd.String("path"),
		File:           cmd.String("file"),
		IncludeContext: cmd.Bool("include-context"),
		Jobs:           int(cmd.Int("jobs")),
		MaxBytes:       cmd.Int("max-bytes"),
	}

	result, err := engine().Refs(opts)
	if err != nil {
		return err
	}

	return writeJSON(cmd, result)
}

func engine() *analysis.Engine {
	return analysis.New(analyzers.Default)
}

func writeJSON(cmd *cli.Command, v any) error {
	out := output.New(output.Config{Compact: cmd.Bool("compact")})
	return out.Write(v)
}
