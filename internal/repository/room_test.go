package repository

import (
	"testing"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: a room with one seated user
	room := entity.NewRoom("123", "tic-tac-toe", "alice")

	// When: CreateOrUpdate is called
	err := roomRepo.CreateOrUpdate(ctx, room)

	// Then: no error should be returned, and room is stored
	require.NoError(t, err)
}

func TestRoomRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a stored room with some played state
		room := entity.NewMatchedRoom("123", "tic-tac-toe", "alice", "bob")
		room.RecordMove("4")

		err := roomRepo.CreateOrUpdate(ctx, room)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedRoom, err := roomRepo.GetByID(ctx, room.ID)

		// Then: the retrieved room should match the saved room
		require.NoError(t, err)
		require.Equal(t, room, retrievedRoom)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		nonExistentRoomID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedRoom, err := roomRepo.GetByID(ctx, nonExistentRoomID)

		// Then: an ErrRoomNotFound error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Nil(t, retrievedRoom)
	})
}

func TestRoomRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: a stored room
	room := entity.NewRoom("123", "tic-tac-toe", "alice")

	err := roomRepo.CreateOrUpdate(ctx, room)
	require.NoError(t, err)

	// When: DeleteByID is called with existing ID
	err = roomRepo.DeleteByID(ctx, room.ID)

	// Then: the room is gone
	require.NoError(t, err)

	_, err = roomRepo.GetByID(ctx, room.ID)
	require.ErrorIs(t, err, apperror.ErrRoomNotFound)
}
