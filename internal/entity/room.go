package entity

import (
	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

const (
	// MaxSeats - a room never holds more than two participants.
	MaxSeats = 2

	SymbolCross  = "cross"
	SymbolCircle = "circle"
)

// Room - a single game session with up to two seated participants.
// Seat order equals join order equals turn order.
type Room struct {
	ID            string   `json:"id"`
	Game          string   `json:"game"`
	Users         []string `json:"users"`
	Symbols       []string `json:"symbol_class_names"`
	Points        []int    `json:"points"`
	Moves         []string `json:"moves"`
	Won           bool     `json:"won"`
	CurrentPlayer int      `json:"current_player"`
}

// NewRoom - creates a room with its first participant seated at seat 0.
func NewRoom(id, game, userID string) *Room {
	return &Room{
		ID:            id,
		Game:          game,
		Users:         []string{userID},
		Symbols:       []string{SymbolCross, SymbolCircle},
		Points:        []int{0},
		Moves:         []string{},
		Won:           false,
		CurrentPlayer: 0,
	}
}

// NewMatchedRoom - creates a room with both seats taken, used by random matchmaking.
func NewMatchedRoom(id, game, firstUserID, secondUserID string) *Room {
	return &Room{
		ID:            id,
		Game:          game,
		Users:         []string{firstUserID, secondUserID},
		Symbols:       []string{SymbolCross, SymbolCircle},
		Points:        []int{0, 0},
		Moves:         []string{},
		Won:           false,
		CurrentPlayer: 0,
	}
}

func (that *Room) IsFull() bool {
	return len(that.Users) >= MaxSeats
}

func (that *Room) HasUser(userID string) bool {
	for _, id := range that.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// AddUser - seats a user at the next free seat. The users and points slices are
// replaced, never mutated in place, so a concurrent reader holding the old
// room never observes a torn update.
func (that *Room) AddUser(userID string) error {
	if that.IsFull() {
		return apperror.ErrRoomFull
	}

	if that.HasUser(userID) {
		return apperror.ErrAlreadyJoined
	}

	users := make([]string, 0, len(that.Users)+1)
	users = append(users, that.Users...)
	that.Users = append(users, userID)

	points := make([]int, 0, len(that.Points)+1)
	points = append(points, that.Points...)
	that.Points = append(points, 0)

	return nil
}

// IsTurn - reports whether the given user holds the current turn.
// Always false until both seats are taken.
func (that *Room) IsTurn(userID string) bool {
	if !that.IsFull() {
		return false
	}

	return that.Users[that.CurrentPlayer] == userID
}

// CurrentSymbol - the seat marker of the player whose turn it is.
func (that *Room) CurrentSymbol() string {
	return that.Symbols[that.CurrentPlayer]
}

// RecordMove - appends the move and advances the turn to the other seat.
func (that *Room) RecordMove(cellID string) {
	moves := make([]string, 0, len(that.Moves)+1)
	moves = append(moves, that.Moves...)
	that.Moves = append(moves, cellID)

	that.CurrentPlayer = (that.CurrentPlayer + 1) % MaxSeats
}

// PreviousSeat - the seat that made the last accepted move.
func (that *Room) PreviousSeat() int {
	return (that.CurrentPlayer + MaxSeats - 1) % MaxSeats
}

// AwardPoint - credits the seat that made the last accepted move and returns
// the turn to it. Returns the credited seat index.
func (that *Room) AwardPoint() int {
	seat := that.PreviousSeat()
	if seat >= len(that.Points) {
		seat = 0
	}

	points := make([]int, len(that.Points))
	copy(points, that.Points)
	points[seat]++
	that.Points = points

	that.CurrentPlayer = seat

	return seat
}

// Reset - clears the board state so a new game can start in the same room.
func (that *Room) Reset() {
	that.Moves = []string{}
	that.Won = false
	that.CurrentPlayer = 0
}
