package apperror

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request: required fields are missing")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is at maximum capacity")
	ErrAlreadyJoined  = errors.New("user already joined this room")
)
