package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mj1618/macos-haptics/internal/wire"
)

const closeWriteWait = time.Second

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		Subprotocols: wire.Subprotocols(),
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(r, s.allowedOrigins)
		},
	}
}

// originAllowed accepts requests without an Origin header (non-browser
// clients), the opaque "null" origin of file:// pages, non-web schemes such
// as app:// or tauri://, same-origin pages, and anything listed in allowed.
// Other http(s) origins are rejected.
func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "null" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(strings.TrimSuffix(a, "/"), origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return strings.EqualFold(u.Host, r.Host)
	default:
		return true
	}
}

// WebSocketHandler accepts invocation connections. Each connection may
// carry any number of concurrent calls; replies are matched by call ID.
func (s *Server) WebSocketHandler() http.Handler {
	upgrader := s.upgrader()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("websocket upgrade failed", "origin", r.Header.Get("Origin"), "error", err)
			return
		}
		codec := wire.CodecForSubprotocol(conn.Subprotocol())
		s.logger.Debug("websocket connected", "remote", r.RemoteAddr, "codec", codec.Name())
		s.serveConn(r.Context(), conn, codec)
	})
}

func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn, codec wire.Codec) {
	defer conn.Close()

	var (
		writeMu sync.Mutex
		wg      sync.WaitGroup
	)
	defer wg.Wait()

	send := func(reply wire.Reply) {
		data, err := codec.Marshal(reply)
		if err != nil {
			s.logger.Warn("encode reply", "id", reply.ID, "error", err)
			return
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteMessage(codec.MessageType(), data); err != nil {
			s.logger.Debug("write reply", "id", reply.ID, "error", err)
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket read", "error", err)
			}
			return
		}

		var call wire.Call
		if err := codec.Unmarshal(data, &call); err != nil {
			id, ok := callID(codec, data)
			if !ok {
				// Nothing to address a reply to; the peer's pending calls
				// would otherwise wait forever.
				s.logger.Warn("undecodable websocket call, closing", "error", err)
				msg := websocket.FormatCloseMessage(websocket.CloseProtocolError, "malformed call")
				_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
				return
			}
			send(wire.Reply{ID: id, Error: "malformed call: " + err.Error(), Code: wire.CodeBadRequest})
			continue
		}

		wg.Add(1)
		go func(call wire.Call) {
			defer wg.Done()
			reply := s.call(ctx, call.Cmd, call.Args)
			reply.ID = call.ID
			send(reply)
		}(call)
	}
}

// callID recovers the id of a call whose other fields failed to decode.
func callID(codec wire.Codec, data []byte) (string, bool) {
	var head struct {
		ID string `json:"id" cbor:"id"`
	}
	if err := codec.Unmarshal(data, &head); err != nil || head.ID == "" {
		return "", false
	}
	return head.ID, true
}
