package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/gameroom-backend/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoreRepo(t *testing.T) (context.Context, ScoreRepository) {
	t.Helper()

	ctx := context.Background()

	st, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Connection.Close()
	})

	require.NoError(t, st.Init(ctx))

	return ctx, NewScoreRepository(st.Connection)
}

func TestScoreRepository_AddPoint(t *testing.T) {
	ctx, scoreRepo := newScoreRepo(t)

	// Given: no recorded scores
	// When: alice is credited twice and bob once
	require.NoError(t, scoreRepo.AddPoint(ctx, "alice"))
	require.NoError(t, scoreRepo.AddPoint(ctx, "alice"))
	require.NoError(t, scoreRepo.AddPoint(ctx, "bob"))

	// Then: the totals accumulate per user
	alicePoints, err := scoreRepo.GetByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, alicePoints)

	bobPoints, err := scoreRepo.GetByUserID(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, bobPoints)
}

func TestScoreRepository_GetByUserID_Unknown(t *testing.T) {
	ctx, scoreRepo := newScoreRepo(t)

	// When: asking for a user that never scored
	points, err := scoreRepo.GetByUserID(ctx, "nobody")

	// Then: the total is simply zero
	require.NoError(t, err)
	assert.Equal(t, 0, points)
}
