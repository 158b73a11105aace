package main

import (
	json "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const focusWriteTimeout = time.Second * 2

// focusSendBuffer is how many focus moves a slow client may lag behind before moves are dropped for it
const focusSendBuffer = 16

type FocusMessage struct {
	Element string `json:"element"`
}

type focusClient struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// FocusBroadcaster pushes every focus move to the connected websocket clients
type FocusBroadcaster struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[string]*focusClient
}

func NewFocusBroadcaster(logger *slog.Logger) *FocusBroadcaster {
	return &FocusBroadcaster{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: map[string]*focusClient{},
	}
}

func (b *FocusBroadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &focusClient{id: uuid.NewString(), conn: conn, send: make(chan []byte, focusSendBuffer)}
	b.mu.Lock()
	b.clients[client.id] = client
	b.mu.Unlock()
	b.logger.Debug("focus client connected", "client", client.id)

	go b.writeLoop(client)

	defer func() {
		b.mu.Lock()
		delete(b.clients, client.id)
		close(client.send)
		b.mu.Unlock()
		_ = conn.Close()
		b.logger.Debug("focus client disconnected", "client", client.id)
	}()

	// clients only listen, reading detects the disconnect
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop is the only writer of data frames for the client, it ends when send is closed.
// A failed write closes the connection, the read loop then unregisters the client.
func (b *FocusBroadcaster) writeLoop(client *focusClient) {
	for message := range client.send {
		_ = client.conn.SetWriteDeadline(time.Now().Add(focusWriteTimeout))
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			b.logger.Warn("focus message send failed", "client", client.id, "error", err)
			_ = client.conn.Close()
			return
		}
	}
}

// Broadcast is registered as an element registry focus listener.
// It runs on the UI thread and never waits for a client.
func (b *FocusBroadcaster) Broadcast(elementId string) {
	message, err := json.Marshal(FocusMessage{Element: elementId})
	if err != nil {
		b.logger.Error("focus message encode failed", "error", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, client := range b.clients {
		select {
		case client.send <- message:
		default:
			b.logger.Warn("focus client lags behind, message dropped", "client", client.id, "element", elementId)
		}
	}
}

func (b *FocusBroadcaster) ClientsCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.clients)
}

// Close disconnects every client
func (b *FocusBroadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	deadline := time.Now().Add(focusWriteTimeout)
	for _, client := range b.clients {
		// control frames may be written next to the write loop
		_ = client.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), deadline)
		_ = client.conn.Close()
	}
}
