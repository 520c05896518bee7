package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/wire"
)

var errClosed = errors.New("channel closed")

// WSChannel sends haptics commands over one WebSocket connection. Calls may
// overlap; replies are routed back by call ID.
type WSChannel struct {
	conn  *websocket.Conn
	codec wire.Codec

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan wire.Reply
	err     error

	done chan struct{}
}

// DialWebSocket connects to a haptics WebSocket endpoint, e.g.
// ws://localhost:8080/ws, offering codec's subprotocol.
func DialWebSocket(ctx context.Context, url string, codec wire.Codec) (*WSChannel, error) {
	dialer := *websocket.DefaultDialer
	dialer.Subprotocols = []string{codec.Subprotocol()}

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	c := &WSChannel{
		conn:    conn,
		codec:   wire.CodecForSubprotocol(conn.Subprotocol()),
		pending: make(map[string]chan wire.Reply),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Codec returns the codec negotiated with the server.
func (c *WSChannel) Codec() wire.Codec {
	return c.codec
}

// IsSupported implements haptics.Channel.
func (c *WSChannel) IsSupported(ctx context.Context) (bool, error) {
	reply, err := c.invoke(ctx, haptics.CommandIsSupported, nil)
	if err != nil {
		return false, err
	}
	return supportedFrom(reply)
}

// Perform implements haptics.Channel.
func (c *WSChannel) Perform(ctx context.Context, req haptics.Request) error {
	reply, err := c.invoke(ctx, haptics.CommandPerform, wire.PerformArgs(req))
	if err != nil {
		return err
	}
	return reply.Err()
}

// Close sends a close frame and waits for the reader to stop. Pending and
// later calls fail with a *haptics.ChannelError.
func (c *WSChannel) Close() error {
	c.fail(errClosed)

	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()

	err := c.conn.Close()
	<-c.done
	return err
}

func (c *WSChannel) invoke(ctx context.Context, cmd string, args map[string]any) (wire.Reply, error) {
	id := uuid.NewString()
	replyCh := make(chan wire.Reply, 1)

	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: err}
	}
	c.pending[id] = replyCh
	c.mu.Unlock()

	data, err := c.codec.Marshal(wire.Call{ID: id, Cmd: cmd, Args: args})
	if err != nil {
		c.forget(id)
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: fmt.Errorf("encode call: %w", err)}
	}

	c.writeMu.Lock()
	err = c.conn.WriteMessage(c.codec.MessageType(), data)
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: err}
	}

	select {
	case reply, ok := <-replyCh:
		if !ok {
			return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: c.closeErr()}
		}
		return reply, nil
	case <-ctx.Done():
		c.forget(id)
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: ctx.Err()}
	}
}

func (c *WSChannel) readLoop() {
	defer close(c.done)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.fail(err)
			return
		}
		var reply wire.Reply
		if err := c.codec.Unmarshal(data, &reply); err != nil {
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[reply.ID]
		delete(c.pending, reply.ID)
		c.mu.Unlock()
		if ok {
			ch <- reply
		}
	}
}

// fail records the first terminal error and releases every pending call.
func (c *WSChannel) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

func (c *WSChannel) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *WSChannel) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return errClosed
	}
	return c.err
}

var _ haptics.Channel = (*WSChannel)(nil)
