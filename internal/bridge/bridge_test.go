package bridge_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/bridge"
	"github.com/mj1618/macos-haptics/internal/command"
	"github.com/mj1618/macos-haptics/internal/config"
	"github.com/mj1618/macos-haptics/internal/platform"
	"github.com/mj1618/macos-haptics/internal/platform/mocks"
	"github.com/mj1618/macos-haptics/internal/server"
	"github.com/mj1618/macos-haptics/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(performer platform.HapticPerformer, perms config.Permissions) *server.Server {
	var provider *platform.Provider
	if performer != nil {
		provider = &platform.Provider{Haptics: performer}
	}
	return server.New(command.New(provider), server.Options{Permissions: perms})
}

// transports returns one connected channel per transport for srv.
func transports(t *testing.T, srv *server.Server) map[string]bridge.Conn {
	t.Helper()
	ctx := context.Background()

	inproc, err := bridge.NewInProcess(ctx, srv.MCP())
	require.NoError(t, err)
	t.Cleanup(func() { _ = inproc.Close() })

	ts := httptest.NewServer(srv.WebSocketHandler())
	t.Cleanup(ts.Close)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	conns := map[string]bridge.Conn{"mcp": inproc}
	for _, codec := range wire.Codecs {
		ws, err := bridge.DialWebSocket(ctx, wsURL, codec)
		require.NoError(t, err)
		require.Equal(t, codec.Name(), ws.Codec().Name())
		t.Cleanup(func() { _ = ws.Close() })
		conns["ws+"+codec.Name()] = ws
	}
	return conns
}

func TestChannels_Scenario(t *testing.T) {
	performer := mocks.NewMockHapticPerformer(t)
	// One support query and one perform per transport.
	performer.EXPECT().Available().Return(true).Times(3)
	performer.EXPECT().Perform(haptics.LevelChange, haptics.DrawCompleted).Return(nil).Times(3)

	for name, ch := range transports(t, newServer(performer, config.Default().Permissions)) {
		t.Run(name, func(t *testing.T) {
			c := haptics.New(ch)
			ctx := context.Background()
			assert.True(t, c.IsSupported(ctx))
			assert.True(t, c.IsSupported(ctx))
			require.NoError(t, c.Perform(ctx, haptics.WithPattern(haptics.LevelChange), haptics.At(haptics.DrawCompleted)))
		})
	}
}

func TestChannels_DefaultPerform(t *testing.T) {
	performer := mocks.NewMockHapticPerformer(t)
	performer.EXPECT().Perform(haptics.Generic, haptics.Default).Return(nil).Times(3)

	for name, ch := range transports(t, newServer(performer, config.Default().Permissions)) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, haptics.New(ch).Perform(context.Background()))
		})
	}
}

func TestChannels_DispatchFailureMessage(t *testing.T) {
	performer := mocks.NewMockHapticPerformer(t)
	performer.EXPECT().Perform(haptics.Alignment, haptics.Now).Return(errors.New("performer went away")).Times(3)

	for name, ch := range transports(t, newServer(performer, config.Default().Permissions)) {
		t.Run(name, func(t *testing.T) {
			err := haptics.New(ch).Perform(context.Background(), haptics.WithPattern(haptics.Alignment), haptics.At(haptics.Now))
			var perr *haptics.PerformError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), "performer went away")
		})
	}
}

func TestChannels_UnsupportedPlatform(t *testing.T) {
	for name, ch := range transports(t, newServer(nil, config.Default().Permissions)) {
		t.Run(name, func(t *testing.T) {
			c := haptics.New(ch)
			assert.False(t, c.IsSupported(context.Background()))
			assert.ErrorIs(t, c.Perform(context.Background()), haptics.ErrUnsupportedPlatform)
		})
	}
}

func TestChannels_DeniedCommands(t *testing.T) {
	perms := config.Permissions{Perform: config.Deny, IsSupported: config.Deny}
	for name, ch := range transports(t, newServer(mocks.NewMockHapticPerformer(t), perms)) {
		t.Run(name, func(t *testing.T) {
			c := haptics.New(ch)
			assert.False(t, c.IsSupported(context.Background()))

			err := c.Perform(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), wire.CodeForbidden)
		})
	}
}

func TestWebSocket_ConcurrentCalls(t *testing.T) {
	performer := mocks.NewMockHapticPerformer(t)
	performer.EXPECT().Perform(haptics.Generic, haptics.Now).Return(nil).Times(50)

	conns := transports(t, newServer(performer, config.Default().Permissions))
	ch := conns["ws+json"]

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- ch.Perform(context.Background(), haptics.NewRequest(haptics.At(haptics.Now)))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestWebSocket_ClosedChannelError(t *testing.T) {
	srv := newServer(mocks.NewMockHapticPerformer(t), config.Default().Permissions)
	ts := httptest.NewServer(srv.WebSocketHandler())
	defer ts.Close()

	ch, err := bridge.DialWebSocket(context.Background(), "ws"+strings.TrimPrefix(ts.URL, "http"), wire.JSON)
	require.NoError(t, err)
	require.NoError(t, ch.Close())

	_, err = ch.IsSupported(context.Background())
	var chErr *haptics.ChannelError
	require.ErrorAs(t, err, &chErr)
	assert.Equal(t, haptics.CommandIsSupported, chErr.Command)

	// The facade swallows channel failures on the support path.
	assert.False(t, haptics.New(ch).IsSupported(context.Background()))
}

func TestDial_Schemes(t *testing.T) {
	_, err := bridge.Dial(context.Background(), "ftp://example.com", "json")
	assert.Error(t, err)

	_, err = bridge.Dial(context.Background(), "ws://127.0.0.1:1/ws", "xml")
	assert.Error(t, err)
}
