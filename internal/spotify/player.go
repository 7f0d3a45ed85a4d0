package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tuneshell/internal/logger"
	"tuneshell/pkg/tunetypes"
)

// Player implements tunetypes.PlaybackController. Construction opens the
// persistent real-time connection; a background receive loop keeps the
// locally cached playback state fresh independently of command traffic.
// Commands themselves go over the HTTP client.
type Player struct {
	client *Client
	conn   *websocket.Conn
	connID string

	mu        sync.Mutex
	lastState json.RawMessage

	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewPlayer dials the real-time endpoint and starts the receive loop.
func NewPlayer(ctx context.Context, client *Client) (*Player, error) {
	creds, err := client.credentials(ctx)
	if err != nil {
		return nil, err
	}

	connID := uuid.NewString()
	header := http.Header{}
	header.Set("Authorization", "Bearer "+creds.AccessToken)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, client.wsURL+"?connection_id="+connID, header)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, err
	}

	p := &Player{
		client: client,
		conn:   conn,
		connID: connID,
		done:   make(chan struct{}),
	}
	go p.receiveLoop()
	logger.Debug("Real-time connection opened", "connection_id", connID)
	return p, nil
}

// realtimeMessage is the envelope pushed by the remote side.
type realtimeMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (p *Player) receiveLoop() {
	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			select {
			case <-p.done:
				// Shutting down.
			default:
				logger.Warn("Real-time connection lost", "error", err)
			}
			return
		}

		var msg realtimeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("Discarding malformed real-time message", "error", err)
			continue
		}
		if msg.Type == "player_state" {
			p.mu.Lock()
			p.lastState = msg.Payload
			p.mu.Unlock()
		}
	}
}

// LastState returns the most recent playback state pushed over the
// real-time connection, or nil if none has arrived yet.
func (p *Player) LastState() json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastState
}

type playerCommand struct {
	URI          string  `json:"uri,omitempty"`
	Context      string  `json:"context,omitempty"`
	N            int     `json:"n,omitempty"`
	PositionMS   int     `json:"position_ms,omitempty"`
	Level        float64 `json:"level,omitempty"`
	Shuffle      *bool   `json:"shuffle,omitempty"`
	Repeat       *bool   `json:"repeat,omitempty"`
	DeviceID     string  `json:"device_id,omitempty"`
	ConnectionID string  `json:"connection_id,omitempty"`
}

// Play starts playback of uri, optionally inside contextURI.
func (p *Player) Play(ctx context.Context, uri, contextURI string) error {
	return p.client.post(ctx, "/v1/player/play", playerCommand{URI: uri, Context: contextURI}, nil)
}

// Pause pauses playback.
func (p *Player) Pause(ctx context.Context) error {
	return p.client.post(ctx, "/v1/player/pause", nil, nil)
}

// Resume resumes playback.
func (p *Player) Resume(ctx context.Context) error {
	return p.client.post(ctx, "/v1/player/resume", nil, nil)
}

// Skip moves n tracks forward, or backwards for negative n.
func (p *Player) Skip(ctx context.Context, n int) error {
	return p.client.post(ctx, "/v1/player/skip", playerCommand{N: n}, nil)
}

// Seek jumps to positionMS in the current track.
func (p *Player) Seek(ctx context.Context, positionMS int) error {
	return p.client.post(ctx, "/v1/player/seek", playerCommand{PositionMS: positionMS}, nil)
}

// Queue appends uri to the playback queue.
func (p *Player) Queue(ctx context.Context, uri string) error {
	return p.client.post(ctx, "/v1/player/queue", playerCommand{URI: uri}, nil)
}

// SetVolume sets the playback volume, level in [0.0, 1.0].
func (p *Player) SetVolume(ctx context.Context, level float64) error {
	return p.client.post(ctx, "/v1/player/volume", playerCommand{Level: level}, nil)
}

// SetMode sets the playback mode as a shuffle/repeat flag pair.
func (p *Player) SetMode(ctx context.Context, mode tunetypes.Mode) error {
	shuffle := mode == tunetypes.ModeShuffle
	repeat := mode == tunetypes.ModeRepeat
	return p.client.post(ctx, "/v1/player/mode", playerCommand{Shuffle: &shuffle, Repeat: &repeat}, nil)
}

// SetDevice transfers playback to the given device.
func (p *Player) SetDevice(ctx context.Context, deviceID string) error {
	return p.client.post(ctx, "/v1/player/transfer", playerCommand{DeviceID: deviceID, ConnectionID: p.connID}, nil)
}

// Close releases the real-time connection. Safe to call more than once.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		deadline := time.Now().Add(time.Second)
		_ = p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		p.closeErr = p.conn.Close()
		logger.Debug("Real-time connection closed", "connection_id", p.connID)
	})
	return p.closeErr
}
