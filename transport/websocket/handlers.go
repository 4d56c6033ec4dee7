package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/usecase"
)

func (that *Server) handleCreateRoom(ctx context.Context, conn *client, msg *Message) error {
	var payload CreateRoomPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	that.hub.Register(payload.UserID, conn)

	return that.manager.CreateRoom(ctx, payload.Game, payload.UserID, payload.RoomID)
}

func (that *Server) handleJoinRoom(ctx context.Context, conn *client, msg *Message) error {
	var payload JoinRoomPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	that.hub.Register(payload.UserID, conn)

	return that.manager.JoinRoom(ctx, payload.Game, payload.UserID, payload.RoomID)
}

func (that *Server) handleJoinRandom(ctx context.Context, conn *client, msg *Message) error {
	var payload JoinRandomPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	that.hub.Register(payload.UserID, conn)

	return that.manager.JoinRandom(ctx, payload.Game, payload.UserID)
}

func (that *Server) handleLeaveRoom(ctx context.Context, conn *client, msg *Message) error {
	var payload LeaveRoomPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	that.hub.Register(payload.UserID, conn)
	that.manager.LeaveRoom(ctx, payload.UserID, payload.RoomID)

	return nil
}

// handlePlayGame - answers with the game page URL for the room. Building the
// URL is a transport concern, the room manager never sees it.
func (that *Server) handlePlayGame(_ context.Context, conn *client, msg *Message) error {
	var payload PlayGamePayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	url := fmt.Sprintf("/games/%s?room_id=%s", payload.Game, payload.RoomID)
	that.hub.ToRoom(payload.RoomID, eventRedirect, RedirectPayload{URL: url})

	return nil
}

func (that *Server) handlePlaceSymbol(ctx context.Context, conn *client, msg *Message) error {
	var payload PlaceSymbolPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	that.hub.Register(payload.UserID, conn)

	return that.manager.PlaceMove(ctx, payload.CellID, payload.UserID, payload.RoomID)
}

func (that *Server) handleResetBoard(ctx context.Context, conn *client, msg *Message) error {
	var payload ResetBoardPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	return that.manager.ResetBoard(ctx, payload.RoomID)
}

func (that *Server) handleShowWinner(ctx context.Context, conn *client, msg *Message) error {
	var payload ShowWinnerPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	return that.manager.DeclareWinner(ctx, payload.RoomID, payload.CellIDs)
}

func (that *Server) handleUpdatePlayerPoints(ctx context.Context, conn *client, msg *Message) error {
	var payload UpdatePlayerPointsPayload
	if err := decodePayload(conn, msg, &payload); err != nil {
		return err
	}

	return that.manager.UpdatePlayerPoints(ctx, payload.RoomID)
}

type validator interface {
	Validate() error
}

// decodePayload - unmarshals and validates an inbound payload. A malformed or
// incomplete payload answers the requesting connection only, never the room.
func decodePayload(conn *client, msg *Message, payload validator) error {
	if err := json.Unmarshal(msg.Payload, payload); err != nil {
		_ = conn.send(newMessage(usecase.EventError, usecase.ErrorPayload{Message: "malformed payload"}))
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := payload.Validate(); err != nil {
		_ = conn.send(newMessage(usecase.EventError, usecase.ErrorPayload{Message: err.Error()}))
		return fmt.Errorf("invalid payload: %w", err)
	}

	return nil
}
