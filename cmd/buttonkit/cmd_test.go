package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/buttonkit/button"
	"github.com/networkteam/buttonkit/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "buttonkit dev")
	assert.Contains(t, out, "commit: none")
}

func TestRenderCmd_Flags(t *testing.T) {
	out, err := execute(t, "render", "--variant", "outline", "--color", "error", "--size", "sm", "--shape", "pill", "--label", "Delete", "--attr", "type=submit")
	require.NoError(t, err)

	want, err := button.Classes(button.Props{Variant: button.VariantOutline, Color: button.ColorError, Size: button.SizeSm, Shape: button.ShapePill})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<button "), out)
	assert.Contains(t, out, `class="`+want+`"`)
	assert.Contains(t, out, `type="submit"`)
	assert.Equal(t, ">Delete</button>\n", out[strings.LastIndex(out, ">Delete"):])
}

func TestRenderCmd_AsChild(t *testing.T) {
	out, err := execute(t, "render", "--as-child", "--href", "/docs", "--label", "Docs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<a "), out)
	assert.Contains(t, out, `href="/docs"`)
}

func TestRenderCmd_InvalidOption(t *testing.T) {
	_, err := execute(t, "render", "--variant", "primary")
	assert.ErrorIs(t, err, button.ErrInvalidOption)
}

func TestRenderCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - label: One\n  - label: Two\n    variant: ghost\n"), 0o600))

	out, err := execute(t, "render", "--file", path)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "<button "))
	assert.Contains(t, out, ">One</button>")
	assert.Contains(t, out, ">Two</button>")
}

func TestRenderCmd_Highlight(t *testing.T) {
	out, err := execute(t, "render", "--highlight", "--label", "Shiny")
	require.NoError(t, err)

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Shiny")
}

func TestServeFlags_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttonkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: localhost:9000\ntitle: From file\n"), 0o600))

	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--title", "From flag", "--path-prefix", "/_buttons"}))

	flags := &serveFlags{}
	flags.configPath, _ = cmd.Flags().GetString("config")
	flags.title, _ = cmd.Flags().GetString("title")
	flags.pathPrefix, _ = cmd.Flags().GetString("path-prefix")

	cfg, err := flags.config(cmd)
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Addr)
	assert.Equal(t, "From flag", cfg.Title)
	assert.Equal(t, "/_buttons", cfg.PathPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestServeFlags_InvalidAddr(t *testing.T) {
	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", "nowhere"}))

	flags := &serveFlags{addr: "nowhere"}
	_, err := flags.config(cmd)
	assert.Error(t, err)
}

func TestNewServer_PathPrefix(t *testing.T) {
	cfg := config.Default()
	cfg.PathPrefix = "/_buttons/"

	srv := newServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/_buttons/", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_buttons/preview?variant=soft", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<button "))

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_buttons/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/_buttons/source?`)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttonkit.log")
	var stderr bytes.Buffer

	logger, closeLog, err := newLogger(&stderr, slog.LevelInfo, path)
	require.NoError(t, err)

	logger.Debug("only in file")
	logger.Info("everywhere")
	require.NoError(t, closeLog())

	assert.NotContains(t, stderr.String(), "only in file")
	assert.Contains(t, stderr.String(), "everywhere")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"only in file"`)
	assert.Contains(t, string(data), `"msg":"everywhere"`)
}
