package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/matchmaking"
	"github.com/rocketscienceinc/gameroom-backend/internal/pkg"
)

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	AddPoint(ctx context.Context, userID string) error
}

// broadcaster - delivery of events to every user joined to a room, or to one
// user. The websocket hub implements it.
type broadcaster interface {
	JoinRoom(roomID, userID string)
	LeaveRoom(roomID, userID string)
	ToRoom(roomID, event string, payload any)
	ToUser(userID, event string, payload any)
}

// RoomManager - the room lifecycle and turn state machine. It validates every
// client action, runs the read-modify-write-persist cycle for a room under
// that room's lock, and emits the resulting broadcast events.
type RoomManager struct {
	logger *slog.Logger

	roomRepo  roomRepo
	scoreRepo scoreRepo
	queue     *matchmaking.Queue
	bcast     broadcaster

	roomLocks *pkg.KeyedMutex
}

func NewRoomManager(logger *slog.Logger, roomRepo roomRepo, scoreRepo scoreRepo, queue *matchmaking.Queue, bcast broadcaster) *RoomManager {
	return &RoomManager{
		logger: logger,

		roomRepo:  roomRepo,
		scoreRepo: scoreRepo,
		queue:     queue,
		bcast:     bcast,

		roomLocks: pkg.NewKeyedMutex(),
	}
}

// CreateRoom - creates a room with the requester seated first. Creating a room
// whose id already exists is equivalent to joining it.
func (that *RoomManager) CreateRoom(ctx context.Context, game, userID, roomID string) error {
	log := that.logger.With("method", "CreateRoom", "roomID", roomID)

	if game == "" || userID == "" || roomID == "" {
		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "invalid data for creating a room"})
		return apperror.ErrInvalidRequest
	}

	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	_, err := that.roomRepo.GetByID(ctx, roomID)
	if err == nil {
		return that.joinRoomLocked(ctx, game, userID, roomID)
	}

	if !errors.Is(err, apperror.ErrRoomNotFound) {
		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "error creating room"})
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	room := entity.NewRoom(roomID, game, userID)

	// A failed write commits nothing, so the room is never left half-created.
	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "error creating room"})
		return fmt.Errorf("failed to create room: %w", err)
	}

	that.bcast.JoinRoom(roomID, userID)
	that.bcast.ToRoom(roomID, EventRoomCreated, RoomCreatedPayload{RoomID: roomID, UserID: userID})
	that.bcast.ToRoom(roomID, EventRoomJoined, RoomJoinedPayload{RoomID: roomID, UserID: userID, Users: room.Users})

	log.Info("room created", "userID", userID)

	return nil
}

// JoinRoom - seats the requester in an existing room. A missing room, a full
// room, or a repeated join all answer the requester with the capacity event
// and leave stored state untouched.
func (that *RoomManager) JoinRoom(ctx context.Context, game, userID, roomID string) error {
	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	return that.joinRoomLocked(ctx, game, userID, roomID)
}

func (that *RoomManager) joinRoomLocked(ctx context.Context, game, userID, roomID string) error {
	log := that.logger.With("method", "JoinRoom", "roomID", roomID)

	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		that.bcast.ToUser(userID, EventRoomFull, nil)

		if errors.Is(err, apperror.ErrRoomNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	if err = room.AddUser(userID); err != nil {
		that.bcast.ToUser(userID, EventRoomFull, nil)
		return nil
	}

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "error joining room"})
		return fmt.Errorf("failed to update room: %w", err)
	}

	that.bcast.JoinRoom(roomID, userID)
	that.bcast.ToRoom(roomID, EventRoomJoined, RoomJoinedPayload{RoomID: roomID, UserID: userID, Users: room.Users})
	that.bcast.ToRoom(roomID, EventPlayGame, PlayGamePayload{Game: game, RoomID: roomID})

	log.Info("user joined room", "userID", userID)

	return nil
}

// JoinRandom - queues the requester for anonymous pairing. Once two users
// wait, the two longest-waiting are paired into a fresh room; with fewer than
// two the requester simply keeps waiting.
func (that *RoomManager) JoinRandom(ctx context.Context, game, userID string) error {
	log := that.logger.With("method", "JoinRandom")

	that.queue.Enqueue(userID)

	first, second, ok := that.queue.TryDequeuePair()
	if !ok {
		log.Info("waiting for more players in the queue", "userID", userID)
		return nil
	}

	roomID := pkg.GenerateRoomID()

	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	room := entity.NewMatchedRoom(roomID, game, first, second)

	if err := that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		// Put the pair back so neither player is stranded out of the queue.
		that.queue.Enqueue(first)
		that.queue.Enqueue(second)

		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "error creating room"})
		return fmt.Errorf("failed to create room: %w", err)
	}

	that.bcast.JoinRoom(roomID, first)
	that.bcast.JoinRoom(roomID, second)

	that.bcast.ToRoom(roomID, EventRoomCreated, RoomCreatedPayload{RoomID: roomID, UserID: userID})
	that.bcast.ToRoom(roomID, EventRoomJoined, RoomJoinedPayload{RoomID: roomID, UserID: userID, Users: room.Users})
	that.bcast.ToRoom(roomID, EventPlayGame, PlayGamePayload{Game: game, RoomID: roomID})

	log.Info("paired players into room", "roomID", roomID, "first", first, "second", second)

	return nil
}

// LeaveRoom - detaches the user's connection from the room. The stored room
// keeps its seats: leaving never frees one.
func (that *RoomManager) LeaveRoom(_ context.Context, userID, roomID string) {
	that.bcast.LeaveRoom(roomID, userID)
	that.bcast.ToRoom(roomID, EventUserLeftRoom, UserLeftRoomPayload{UserID: userID})
}

// PlaceMove - records a move for the user holding the turn. Moves after a
// declared win and moves out of turn are dropped without any response.
func (that *RoomManager) PlaceMove(ctx context.Context, cellID, userID, roomID string) error {
	log := that.logger.With("method", "PlaceMove", "roomID", roomID)

	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, apperror.ErrRoomNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	if room.Won {
		return nil
	}

	if !room.IsTurn(userID) {
		return nil
	}

	that.bcast.ToRoom(roomID, EventUpdateBoard, UpdateBoardPayload{CellID: cellID, Symbol: room.CurrentSymbol()})

	room.RecordMove(cellID)

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		that.bcast.ToUser(userID, EventError, ErrorPayload{Message: "error recording move"})
		return fmt.Errorf("failed to update room: %w", err)
	}

	// Win detection is the client rule engine's job.
	that.bcast.ToRoom(roomID, EventCheckWin, nil)

	log.Info("move recorded", "userID", userID, "cellID", cellID)

	return nil
}

// ResetBoard - clears moves and the win flag so the room can play again.
// Clients are told to reset before the write lands; readers must tolerate
// that brief window.
func (that *RoomManager) ResetBoard(ctx context.Context, roomID string) error {
	that.bcast.ToRoom(roomID, EventResetBoard, nil)

	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	room.Reset()

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

// DeclareWinner - accepts the caller's win determination and blocks further
// moves until a reset. The cell ids are not validated against any game rules.
func (that *RoomManager) DeclareWinner(ctx context.Context, roomID string, cellIDs []string) error {
	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	room.Won = true

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	that.bcast.ToRoom(roomID, EventHighlightWinner, HighlightWinnerPayload{CellIDs: cellIDs})

	return nil
}

// UpdatePlayerPoints - credits the seat that made the last accepted move and
// returns the turn to it, then publishes the room's points.
func (that *RoomManager) UpdatePlayerPoints(ctx context.Context, roomID string) error {
	log := that.logger.With("method", "UpdatePlayerPoints", "roomID", roomID)

	that.roomLocks.Lock(roomID)
	defer that.roomLocks.Unlock(roomID)

	room, err := that.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room by id: %w", err)
	}

	seat := room.AwardPoint()

	if err = that.roomRepo.CreateOrUpdate(ctx, room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	that.bcast.ToRoom(roomID, EventDisplayPoints, DisplayPointsPayload{Points: room.Points})

	if seat < len(room.Users) {
		if err = that.scoreRepo.AddPoint(ctx, room.Users[seat]); err != nil {
			log.Error("failed to save score", "userID", room.Users[seat], "error", err)
		}
	}

	return nil
}
