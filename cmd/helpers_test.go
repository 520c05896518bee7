package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/command"
	"github.com/mj1618/macos-haptics/internal/config"
	"github.com/mj1618/macos-haptics/internal/output"
	"github.com/mj1618/macos-haptics/internal/platform"
	"github.com/mj1618/macos-haptics/internal/platform/mocks"
	"github.com/mj1618/macos-haptics/internal/server"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addClientFlags(c.Flags())
	c.Flags().String("transport", "stdio", "")
	c.Flags().Int("port", 8080, "")
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newFlagCommand(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haptics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transport: websocket\nport: 9000\ncodec: cbor\n"), 0o644))

	cfg, err := loadConfig(newFlagCommand(t, "--config", path, "--port", "9100", "--retry-transient"))
	require.NoError(t, err)
	assert.Equal(t, "websocket", cfg.Transport)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "cbor", cfg.Codec)
	assert.True(t, cfg.RetryTransient)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	_, err := loadConfig(newFlagCommand(t, "--codec", "xml"))
	assert.Error(t, err)
}

func TestNewClient_Local(t *testing.T) {
	orig := platform.NewProviderFunc
	defer func() { platform.NewProviderFunc = orig }()
	platform.NewProviderFunc = nil

	c, release, err := newClient(context.Background(), config.Default())
	require.NoError(t, err)
	defer release()

	assert.False(t, c.IsSupported(context.Background()))
	assert.ErrorIs(t, c.Perform(context.Background()), haptics.ErrUnsupportedPlatform)
}

func TestNewClient_BadServer(t *testing.T) {
	cfg := config.Default()
	cfg.Server = "ftp://nowhere"
	_, _, err := newClient(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPerformCommand_OverWebSocket(t *testing.T) {
	performer := mocks.NewMockHapticPerformer(t)
	performer.EXPECT().Perform(haptics.Alignment, haptics.Now).Return(nil).Once()

	srv := server.New(command.New(&platform.Provider{Haptics: performer}), server.Options{Permissions: config.Default().Permissions})
	ts := httptest.NewServer(srv.WebSocketHandler())
	defer ts.Close()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	oldFormat := output.OutputFormat
	defer func() { output.OutputFormat = oldFormat }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{"perform", "--pattern", "alignment", "--time", "now", "--server", wsURL, "--format", "json"})
	err := rootCmd.Execute()
	w.Close()
	os.Stdout = old
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var result output.PerformResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.OK)
	assert.Equal(t, "alignment", result.Pattern)
	assert.Equal(t, "now", result.PerformanceTime)
}
