package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// client - one upgraded connection. gorilla allows a single concurrent
// writer, so every write goes through the client's own mutex.
type client struct {
	id     string
	userID string
	sock   *websocket.Conn
	mu     sync.Mutex
}

func (that *client) send(msg Message) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.sock.WriteJSON(msg)
}

// Hub - tracks which connection belongs to which user and which users are
// joined to which room, and fans events out accordingly. It implements the
// room manager's broadcaster.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client             // userID -> connection
	rooms   map[string]map[string]struct{} // roomID -> userIDs
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]*client),
		rooms:   make(map[string]map[string]struct{}),
	}
}

// Register - binds a user id to a connection. A reconnect simply replaces the
// previous binding.
func (that *Hub) Register(userID string, conn *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	conn.userID = userID
	that.clients[userID] = conn
}

// Disconnect - drops the connection's user binding and room memberships,
// unless the user has already re-registered on a newer connection.
func (that *Hub) Disconnect(conn *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if conn.userID == "" {
		return
	}

	current, ok := that.clients[conn.userID]
	if !ok || current.id != conn.id {
		return
	}

	delete(that.clients, conn.userID)
	for _, members := range that.rooms {
		delete(members, conn.userID)
	}
}

func (that *Hub) JoinRoom(roomID, userID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	members, ok := that.rooms[roomID]
	if !ok {
		members = make(map[string]struct{})
		that.rooms[roomID] = members
	}
	members[userID] = struct{}{}
}

func (that *Hub) LeaveRoom(roomID, userID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms[roomID], userID)
}

// ToRoom - delivers an event to every user currently joined to the room, in
// the order operations were applied to that room.
func (that *Hub) ToRoom(roomID, event string, payload any) {
	msg := newMessage(event, payload)

	that.mu.RLock()
	defer that.mu.RUnlock()

	for userID := range that.rooms[roomID] {
		conn, ok := that.clients[userID]
		if !ok {
			continue
		}

		if err := conn.send(msg); err != nil {
			that.logger.Error("failed to send room event", "roomID", roomID, "userID", userID, "event", event, "error", err)
		}
	}
}

// ToUser - delivers an event to a single user's connection only.
func (that *Hub) ToUser(userID, event string, payload any) {
	msg := newMessage(event, payload)

	that.mu.RLock()
	conn, ok := that.clients[userID]
	that.mu.RUnlock()

	if !ok {
		that.logger.Warn("connection not found for user", "userID", userID, "event", event)
		return
	}

	if err := conn.send(msg); err != nil {
		that.logger.Error("failed to send user event", "userID", userID, "event", event, "error", err)
	}
}

func newMessage(event string, payload any) Message {
	msg := Message{Action: event}
	if payload != nil {
		msg.Payload = json.RawMessage(mustMarshal(payload))
	}

	return msg
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
