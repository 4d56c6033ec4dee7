package usecase

// Outbound event names. Together with the payload field tags these are the
// wire contract with the browser clients, so they keep their original casing.
const (
	EventError           = "error"
	EventRoomCreated     = "room_created"
	EventRoomJoined      = "room_joined"
	EventRoomFull        = "room_maximum_capacity"
	EventPlayGame        = "play_game"
	EventUserLeftRoom    = "user_left_room"
	EventUpdateBoard     = "updateBoard"
	EventCheckWin        = "checkWin"
	EventResetBoard      = "resetBoard"
	EventHighlightWinner = "highlightWinner"
	EventDisplayPoints   = "displayPoints"
)

type ErrorPayload struct {
	Message string `json:"message"`
}

type RoomCreatedPayload struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

type RoomJoinedPayload struct {
	RoomID string   `json:"room_id"`
	UserID string   `json:"user_id"`
	Users  []string `json:"users"`
}

type PlayGamePayload struct {
	Game   string `json:"game"`
	RoomID string `json:"room_id"`
}

type UserLeftRoomPayload struct {
	UserID string `json:"user_id"`
}

type UpdateBoardPayload struct {
	CellID string `json:"cell_id"`
	Symbol string `json:"symbol_class"`
}

type HighlightWinnerPayload struct {
	CellIDs []string `json:"cell_ids"`
}

type DisplayPointsPayload struct {
	Points []int `json:"points"`
}
