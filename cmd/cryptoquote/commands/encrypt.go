// Package commands contains CLI command implementations for the cryptoquote tool.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vdparikh/cryptoquote"
	"github.com/vdparikh/cryptoquote/internal/config"
	"github.com/vdparikh/cryptoquote/tinkquote"
)

// EncryptOptions carries the inputs of the encrypt command.
type EncryptOptions struct {
	// Text is the plaintext quote.
	Text string
	// Key is an explicit substitution key. Empty means random or derived.
	Key string
	// KeysetFile points at a Tink PRF keyset. When set, the key is derived
	// from it instead of generated.
	KeysetFile string
	// Tweak and Label select the derived key. Label defaults to the
	// normalized quote, so the same quote always gets the same key.
	Tweak string
	Label string
	// Format is config.FormatText or config.FormatJSON.
	Format string
}

// puzzle is the JSON shape of an encrypted quote.
type puzzle struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Quote       string `json:"quote"`
	Cryptoquote string `json:"cryptoquote"`
}

// RunEncrypt builds a cryptoquote from opts and writes it to w.
func RunEncrypt(ctx context.Context, logger *slog.Logger, w io.Writer, opts EncryptOptions) error {
	if strings.TrimSpace(opts.Text) == "" {
		return errors.New("quote text is required")
	}
	if opts.Key != "" && opts.KeysetFile != "" {
		return errors.New("--key and --keyset are mutually exclusive")
	}
	format, err := parseFormat(opts.Format)
	if err != nil {
		return err
	}

	quote := cryptoquote.NewQuote(opts.Text)

	key, source, err := resolveKey(opts, quote)
	if err != nil {
		return err
	}

	cq, err := cryptoquote.New(quote, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt quote: %w", err)
	}

	id := uuid.NewString()
	logger.InfoContext(ctx, "quote encrypted",
		slog.String("puzzle_id", id),
		slog.String("key_source", source),
		slog.String("key", key.String()),
		slog.Int("length", quote.Len()),
	)

	return writePuzzle(w, format, puzzle{
		ID:          id,
		Key:         key.String(),
		Quote:       quote.String(),
		Cryptoquote: cq.String(),
	})
}

// resolveKey picks the key for quote and reports where it came from.
func resolveKey(opts EncryptOptions, quote *cryptoquote.Quote) (*cryptoquote.Key, string, error) {
	if opts.KeysetFile != "" {
		handle, err := tinkquote.LoadKeyset(opts.KeysetFile)
		if err != nil {
			return nil, "", err
		}
		deriver, err := tinkquote.New(handle, []byte(opts.Tweak))
		if err != nil {
			return nil, "", err
		}

		label := opts.Label
		if label == "" {
			label = quote.String()
		}
		key, err := deriver.DeriveKey([]byte(label))
		if err != nil {
			return nil, "", err
		}
		return key, "keyset", nil
	}

	key, err := cryptoquote.NewKey(opts.Key)
	if err != nil {
		return nil, "", err
	}
	if opts.Key == "" {
		return key, "random", nil
	}
	return key, "supplied", nil
}

func writePuzzle(w io.Writer, format string, p puzzle) error {
	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	_, err := fmt.Fprintf(w, "Key:         %s\nQuote:       %s\nCryptoquote: %s\n", p.Key, p.Quote, p.Cryptoquote)
	return err
}
