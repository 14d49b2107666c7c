package gameserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// Default EventHub tuning.
const (
	DefaultEventBuffer       = 64
	DefaultEventWriteTimeout = 5 * time.Second
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// EventHub fans committed boss events out to websocket subscribers. It
// implements boss.Publisher; a subscriber whose buffer is full misses the
// event instead of stalling the publisher.
type EventHub struct {
	logger       *zap.Logger
	buffer       int
	writeTimeout time.Duration
	upgrader     websocket.Upgrader

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	closed bool
}

var _ boss.Publisher = (*EventHub)(nil)

// NewEventHub creates a hub. Non-positive buffer or writeTimeout fall back to
// the defaults.
//
// Precondition: logger must be non-nil.
func NewEventHub(logger *zap.Logger, buffer int, writeTimeout time.Duration) *EventHub {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	if writeTimeout <= 0 {
		writeTimeout = DefaultEventWriteTimeout
	}
	return &EventHub{
		logger:       logger,
		buffer:       buffer,
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		subs: make(map[*subscriber]struct{}),
	}
}

// Publish encodes ev once and queues it for every subscriber.
func (h *EventHub) Publish(ev boss.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("encoding boss event", zap.String("kind", string(ev.Kind)), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			h.logger.Debug("dropping boss event for slow subscriber",
				zap.String("kind", string(ev.Kind)),
				zap.String("remote", sub.conn.RemoteAddr().String()),
			)
		}
	}
}

// Subscribers returns the number of connected subscribers.
func (h *EventHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// ServeHTTP upgrades the request to a websocket and streams events until the
// client disconnects or the hub is closed. Client messages are discarded.
func (h *EventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, h.buffer)}
	if !h.add(sub) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.writeTimeout))
		conn.Close()
		return
	}
	h.logger.Debug("event subscriber connected", zap.String("remote", r.RemoteAddr))

	go h.readLoop(sub)
	h.writeLoop(sub)
}

func (h *EventHub) add(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.subs[sub] = struct{}{}
	return true
}

func (h *EventHub) remove(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	sub.close()
}

// readLoop drains the connection so close frames are processed.
func (h *EventHub) readLoop(sub *subscriber) {
	defer h.remove(sub)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *EventHub) writeLoop(sub *subscriber) {
	defer func() {
		h.remove(sub)
		sub.conn.Close()
	}()
	for data := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("event subscriber write failed", zap.Error(err))
			return
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = sub.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.writeTimeout))
}

// Close disconnects every subscriber and rejects new ones.
func (h *EventHub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := h.subs
	h.subs = make(map[*subscriber]struct{})
	h.mu.Unlock()
	for sub := range subs {
		sub.close()
	}
}
