package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

// Inbound action names, as the browser clients send them.
const (
	ActionCreateRoom         = "create_room"
	ActionJoinRoom           = "join_room"
	ActionJoinRandom         = "join_random"
	ActionLeaveRoom          = "leave_room"
	ActionPlayGame           = "play_game"
	ActionPlaceSymbol        = "placeSymbol"
	ActionResetBoard         = "resetBoard"
	ActionShowWinner         = "showWinner"
	ActionUpdatePlayerPoints = "updatePlayerPoints"
)

// eventRedirect - the one outbound event owned by the transport itself.
const eventRedirect = "redirect"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Every inbound payload is a typed schema validated at the boundary before it
// reaches the room manager.

type CreateRoomPayload struct {
	Game   string `json:"game"`
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
}

func (that *CreateRoomPayload) Validate() error {
	if that.Game == "" || that.UserID == "" || that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type JoinRoomPayload struct {
	Game   string `json:"game"`
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
}

func (that *JoinRoomPayload) Validate() error {
	if that.Game == "" || that.UserID == "" || that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type JoinRandomPayload struct {
	Game   string `json:"game"`
	UserID string `json:"user_id"`
}

func (that *JoinRandomPayload) Validate() error {
	if that.Game == "" || that.UserID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type LeaveRoomPayload struct {
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
}

func (that *LeaveRoomPayload) Validate() error {
	if that.UserID == "" || that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type PlayGamePayload struct {
	Game   string `json:"game"`
	RoomID string `json:"room_id"`
}

func (that *PlayGamePayload) Validate() error {
	if that.Game == "" || that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type PlaceSymbolPayload struct {
	CellID string `json:"cell_id"`
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
}

func (that *PlaceSymbolPayload) Validate() error {
	if that.CellID == "" || that.UserID == "" || that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type ResetBoardPayload struct {
	RoomID string `json:"room_id"`
}

func (that *ResetBoardPayload) Validate() error {
	if that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type ShowWinnerPayload struct {
	RoomID  string   `json:"room_id"`
	CellIDs []string `json:"cell_ids"`
}

func (that *ShowWinnerPayload) Validate() error {
	if that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type UpdatePlayerPointsPayload struct {
	RoomID string `json:"room_id"`
}

func (that *UpdatePlayerPointsPayload) Validate() error {
	if that.RoomID == "" {
		return apperror.ErrInvalidRequest
	}
	return nil
}

type RedirectPayload struct {
	URL string `json:"url"`
}
