package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"codesitter/analyzers"
)

// languagesInfo is the output of the languages command.
type languagesInfo struct {
	Languages  []string            `json:"languages"`
	Extensions map[string]string   `json:"extensions"`
	Analyzers  map[string][]string `json:"analyzers"`
}

// detectResult is the output of languages detect.
type detectResult struct {
	File     string `json:"file"`
	Language string `json:"language"`
	Analyzer string `json:"analyzer"`
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "list registered analyzers and their extensions",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			pluginsFlag(),
		},
		Action: runLanguages,
		Commands: []*cli.Command{
			detectCommand(),
		},
	}
}

func runLanguages(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	reg := analyzers.Default
	info := languagesInfo{
		Languages:  reg.Languages(),
		Extensions: reg.Extensions(),
		Analyzers:  reg.Analyzers(),
	}

	return writeJSON(cmd, info)
}

func detectCommand() *cli.Command {
	return &cli.Command{
		Name:  "detect",
		Usage: "detect the analyzer for a file from its content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "file to classify (required)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output",
			},
			pluginsFlag(),
		},
		Action: runDetect,
	}
}

func runDetect(_ context.Context, cmd *cli.Command) error {
	bootstrap(cmd)

	file := cmd.String("file")
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	a, ok := analyzers.Default.DetectLanguage(file, content)
	if !ok {
		return fmt.Errorf("no analyzer found for %s", file)
	}

	return writeJSON(cmd, detectResult{
		File:     file,
		Language: a.LanguageName(),
		Analyzer: fmt.Sprintf("%T", a),
	})
}
