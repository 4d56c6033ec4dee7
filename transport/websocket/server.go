package websocket

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type roomManager interface {
	CreateRoom(ctx context.Context, game, userID, roomID string) error
	JoinRoom(ctx context.Context, game, userID, roomID string) error
	JoinRandom(ctx context.Context, game, userID string) error
	LeaveRoom(ctx context.Context, userID, roomID string)

	PlaceMove(ctx context.Context, cellID, userID, roomID string) error
	ResetBoard(ctx context.Context, roomID string) error
	DeclareWinner(ctx context.Context, roomID string, cellIDs []string) error
	UpdatePlayerPoints(ctx context.Context, roomID string) error
}

type Server struct {
	logger  *slog.Logger
	manager roomManager
	hub     *Hub

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, conn *client, message *Message) error
}

func New(logger *slog.Logger, manager roomManager, hub *Hub) *Server {
	server := &Server{
		logger:  logger,
		manager: manager,
		hub:     hub,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]func(context.Context, *client, *Message) error),
	}

	server.handlers[ActionCreateRoom] = server.handleCreateRoom
	server.handlers[ActionJoinRoom] = server.handleJoinRoom
	server.handlers[ActionJoinRandom] = server.handleJoinRandom
	server.handlers[ActionLeaveRoom] = server.handleLeaveRoom
	server.handlers[ActionPlayGame] = server.handlePlayGame
	server.handlers[ActionPlaceSymbol] = server.handlePlaceSymbol
	server.handlers[ActionResetBoard] = server.handleResetBoard
	server.handlers[ActionShowWinner] = server.handleShowWinner
	server.handlers[ActionUpdatePlayerPoints] = server.handleUpdatePlayerPoints

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the connection and processes its messages until
// the client goes away.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	sock, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &client{
		id:   uuid.NewString(),
		sock: sock,
	}

	defer func() {
		that.hub.Disconnect(conn)
		_ = sock.Close()
	}()

	log.Info("WebSocket connection established", "connID", conn.id)

	for {
		var message Message
		if err = sock.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "connID", conn.id, "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
