package entity

import (
	"testing"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	// Given: a fresh room created by its first user
	room := NewRoom("R1", "tic-tac-toe", "alice")

	// Then: the room state should correspond to the expected initial state
	expectedRoom := &Room{
		ID:            "R1",
		Game:          "tic-tac-toe",
		Users:         []string{"alice"},
		Symbols:       []string{SymbolCross, SymbolCircle},
		Points:        []int{0},
		Moves:         []string{},
		Won:           false,
		CurrentPlayer: 0,
	}

	require.Equal(t, expectedRoom, room)
}

func TestRoom_AddUser(t *testing.T) {
	t.Run("Second user takes the second seat", func(t *testing.T) {
		// Given: a room with one seated user
		room := NewRoom("R1", "tic-tac-toe", "alice")

		// When: a second user joins
		err := room.AddUser("bob")

		// Then: both seats are taken and points stay parallel to users
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, room.Users)
		assert.Equal(t, []int{0, 0}, room.Points)
	})

	t.Run("Error on full room", func(t *testing.T) {
		// Given: a room with both seats taken
		room := NewMatchedRoom("R1", "tic-tac-toe", "alice", "bob")

		// When: a third user tries to join
		err := room.AddUser("carol")

		// Then: the join is rejected and state is unchanged
		require.ErrorIs(t, err, apperror.ErrRoomFull)
		assert.Equal(t, []string{"alice", "bob"}, room.Users)
	})

	t.Run("Error on repeated join", func(t *testing.T) {
		// Given: a room where alice already sits
		room := NewRoom("R1", "tic-tac-toe", "alice")

		// When: alice joins again
		err := room.AddUser("alice")

		// Then: no duplicate seat appears
		require.ErrorIs(t, err, apperror.ErrAlreadyJoined)
		assert.Equal(t, []string{"alice"}, room.Users)
		assert.Equal(t, []int{0}, room.Points)
	})

	t.Run("Replaces the slices instead of mutating them", func(t *testing.T) {
		// Given: a reader holding the slices from before the join
		room := NewRoom("R1", "tic-tac-toe", "alice")
		usersBefore := room.Users
		pointsBefore := room.Points

		// When: a second user joins
		require.NoError(t, room.AddUser("bob"))

		// Then: the old slices are untouched
		assert.Equal(t, []string{"alice"}, usersBefore)
		assert.Equal(t, []int{0}, pointsBefore)
	})
}

func TestRoom_IsTurn(t *testing.T) {
	t.Run("No turns before both seats are taken", func(t *testing.T) {
		// Given: a room with a single user
		room := NewRoom("R1", "tic-tac-toe", "alice")

		// Then: nobody holds the turn yet
		assert.False(t, room.IsTurn("alice"))
	})

	t.Run("First seat starts", func(t *testing.T) {
		// Given: a full room
		room := NewMatchedRoom("R1", "tic-tac-toe", "alice", "bob")

		// Then: seat 0 holds the turn
		assert.True(t, room.IsTurn("alice"))
		assert.False(t, room.IsTurn("bob"))
	})
}

func TestRoom_RecordMove(t *testing.T) {
	// Given: a full room
	room := NewMatchedRoom("R1", "tic-tac-toe", "alice", "bob")

	// When: three moves are recorded
	room.RecordMove("4")
	room.RecordMove("0")
	room.RecordMove("8")

	// Then: moves keep arrival order and the turn alternated each time
	assert.Equal(t, []string{"4", "0", "8"}, room.Moves)
	assert.Equal(t, 1, room.CurrentPlayer)
	assert.Equal(t, SymbolCircle, room.CurrentSymbol())
}

func TestRoom_AwardPoint(t *testing.T) {
	t.Run("Credits the seat that moved last", func(t *testing.T) {
		// Given: a full room where alice just moved, so the turn sits with bob
		room := NewMatchedRoom("R1", "tic-tac-toe", "alice", "bob")
		room.RecordMove("4")
		require.Equal(t, 1, room.CurrentPlayer)

		// When: a point is awarded
		seat := room.AwardPoint()

		// Then: alice's seat is credited and gets the turn back
		assert.Equal(t, 0, seat)
		assert.Equal(t, []int{1, 0}, room.Points)
		assert.Equal(t, 0, room.CurrentPlayer)
	})

	t.Run("Falls back to seat 0 in a half-empty room", func(t *testing.T) {
		// Given: a waiting room with a single seat
		room := NewRoom("R1", "tic-tac-toe", "alice")

		// When: a point is awarded
		seat := room.AwardPoint()

		// Then: the only seat is credited
		assert.Equal(t, 0, seat)
		assert.Equal(t, []int{1}, room.Points)
	})
}

func TestRoom_Reset(t *testing.T) {
	// Given: a played-out room with a declared win
	room := NewMatchedRoom("R1", "tic-tac-toe", "alice", "bob")
	room.RecordMove("0")
	room.RecordMove("4")
	room.RecordMove("1")
	room.Won = true

	// When: the room is reset
	room.Reset()

	// Then: the board state is back at the start, seats and points survive
	assert.Empty(t, room.Moves)
	assert.False(t, room.Won)
	assert.Equal(t, 0, room.CurrentPlayer)
	assert.Equal(t, []string{"alice", "bob"}, room.Users)
}
