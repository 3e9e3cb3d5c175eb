package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdparikh/cryptoquote/cmd/cryptoquote/commands"
	"github.com/vdparikh/cryptoquote/internal/config"
)

func runApp(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := newApp(cfg, logger, commands.IOTuple{Reader: strings.NewReader(stdin), Writer: &out})
	err := app.Run(context.Background(), append([]string{"cryptoquote"}, args...))
	return out.String(), err
}

func TestApp_Encrypt(t *testing.T) {
	out, err := runApp(t, &config.Config{}, "",
		"encrypt", "--key", "ZYXWVUTSRQPONMLKJIHGFEDCBA", "This", "is", "a", "quote.")
	require.NoError(t, err)
	assert.Contains(t, out, "Cryptoquote: GSRH RH Z JFLGV.")
}

func TestApp_EncryptFromStdin(t *testing.T) {
	out, err := runApp(t, &config.Config{}, "AB\n",
		"encrypt", "-k", "BACDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err)
	assert.Contains(t, out, "Cryptoquote: BA\n")
}

func TestApp_ConfigDefaults(t *testing.T) {
	cfg := &config.Config{Key: "ZYXWVUTSRQPONMLKJIHGFEDCBA", OutputFormat: config.FormatJSON}
	out, err := runApp(t, cfg, "", "encrypt", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, `"cryptoquote": "ZYX"`)
}

func TestApp_ImproperKey(t *testing.T) {
	_, err := runApp(t, &config.Config{}, "", "encrypt", "--key", "AABCDEFGHIJKLMNOPQRSTUVWXY", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "improper key")
}

func TestApp_Keygen(t *testing.T) {
	out, err := runApp(t, &config.Config{}, "", "keygen")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 26)
}
