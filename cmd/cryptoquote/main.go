// Package main provides the cryptoquote command-line tool.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vdparikh/cryptoquote/cmd/cryptoquote/commands"
	"github.com/vdparikh/cryptoquote/internal/config"
	"github.com/vdparikh/cryptoquote/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration error", slog.Any("error", err))
		os.Exit(1)
	}

	cmd := newApp(cfg, logger, commands.DefaultIO())
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func newApp(cfg *config.Config, logger *slog.Logger, streams commands.IOTuple) *cli.Command {
	return &cli.Command{
		Name:           "cryptoquote",
		Usage:          "Generate substitution-cipher cryptoquote puzzles",
		Version:        "1.0.0",
		Writer:         streams.Writer,
		DefaultCommand: "encrypt",
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "Encrypt a quote with a supplied, random or keyset-derived key",
				ArgsUsage: "[quote words...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "key",
						Aliases: []string{"k"},
						Value:   cfg.Key,
						Usage:   "26-letter substitution key (random when empty)",
					},
					&cli.StringFlag{
						Name:      "keyset",
						Value:     cfg.KeysetFile,
						Usage:     "Tink PRF keyset file to derive the key from",
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:  "tweak",
						Value: cfg.Tweak,
						Usage: "Public tweak for keyset derivation",
					},
					&cli.StringFlag{
						Name:  "label",
						Usage: "Label for keyset derivation (defaults to the quote)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   cfg.OutputFormat,
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					text, err := commands.ReadText(cmd.Args().Slice(), streams.Reader)
					if err != nil {
						return err
					}
					return commands.RunEncrypt(ctx, logger, streams.Writer, commands.EncryptOptions{
						Text:       text,
						Key:        cmd.String("key"),
						KeysetFile: cmd.String("keyset"),
						Tweak:      cmd.String("tweak"),
						Label:      cmd.String("label"),
						Format:     cmd.String("format"),
					})
				},
			},
			{
				Name:  "keygen",
				Usage: "Print a random substitution key, optionally writing a new Tink keyset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "keyset-out",
						Usage:     "Write a new Tink PRF keyset to this file",
						TakesFile: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeygen(ctx, logger, streams.Writer, cmd.String("keyset-out"))
				},
			},
		},
	}
}
