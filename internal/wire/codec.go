package wire

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/gorilla/websocket"
)

// WebSocket subprotocols, one per codec.
const (
	SubprotocolJSON = "haptics.v1+json"
	SubprotocolCBOR = "haptics.v1+cbor"
)

// Codec encodes envelopes for one WebSocket subprotocol.
type Codec interface {
	Name() string
	Subprotocol() string
	// MessageType is the websocket frame type the codec writes.
	MessageType() int
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Subprotocol() string                { return SubprotocolJSON }
func (jsonCodec) MessageType() int                   { return websocket.TextMessage }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type cborCodec struct{}

func (cborCodec) Name() string                       { return "cbor" }
func (cborCodec) Subprotocol() string                { return SubprotocolCBOR }
func (cborCodec) MessageType() int                   { return websocket.BinaryMessage }
func (cborCodec) Marshal(v any) ([]byte, error)      { return cbor.Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

var (
	JSON Codec = jsonCodec{}
	CBOR Codec = cborCodec{}
)

// Codecs lists every codec, preferred first.
var Codecs = []Codec{JSON, CBOR}

// CodecByName returns the codec called name ("json" or "cbor").
func CodecByName(name string) (Codec, error) {
	for _, c := range Codecs {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unsupported codec: %s (use json or cbor)", name)
}

// CodecForSubprotocol returns the codec negotiated by a handshake. An empty
// subprotocol means the peer did not negotiate, and JSON is used.
func CodecForSubprotocol(sub string) Codec {
	for _, c := range Codecs {
		if c.Subprotocol() == sub {
			return c
		}
	}
	return JSON
}

// Subprotocols lists the subprotocols a server offers.
func Subprotocols() []string {
	subs := make([]string, len(Codecs))
	for i, c := range Codecs {
		subs[i] = c.Subprotocol()
	}
	return subs
}
