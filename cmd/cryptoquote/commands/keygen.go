package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vdparikh/cryptoquote"
	"github.com/vdparikh/cryptoquote/tinkquote"
)

// RunKeygen prints a random substitution key. When keysetOut is set it also
// writes a new Tink PRF keyset there for use with encrypt --keyset.
func RunKeygen(ctx context.Context, logger *slog.Logger, w io.Writer, keysetOut string) error {
	key, err := cryptoquote.NewKey("")
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	if _, err := fmt.Fprintln(w, key.String()); err != nil {
		return err
	}

	if keysetOut == "" {
		return nil
	}

	handle, err := tinkquote.NewKeysetHandle()
	if err != nil {
		return err
	}
	if err := tinkquote.StoreKeyset(handle, keysetOut); err != nil {
		return err
	}

	logger.InfoContext(ctx, "keyset written", slog.String("path", keysetOut))
	_, err = fmt.Fprintf(w, "Keyset written to %s\n", keysetOut)
	return err
}
