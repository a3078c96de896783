package catalog

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music-catalog/internal/cache"
	"music-catalog/internal/errs"
)

func setupLikesService(t *testing.T) (*Service, pgxmock.PgxPoolIface, *miniredis.Miniredis) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewService(mock, cache.New(rdb)), mock, mr
}

func TestLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Invalidates Cache", func(t *testing.T) {
		svc, mock, mr := setupLikesService(t)
		mr.Set("likes:album-1", "2")

		mock.ExpectQuery("SELECT id FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("album-1"))
		mock.ExpectQuery("SELECT id FROM user_album_likes").
			WithArgs("album-1", "user-1").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery("INSERT INTO user_album_likes").
			WithArgs(pgxmock.AnyArg(), "user-1", "album-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("likes-abc"))

		require.NoError(t, svc.Like(ctx, "album-1", "user-1"))
		assert.False(t, mr.Exists("likes:album-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Album Missing", func(t *testing.T) {
		svc, mock, _ := setupLikesService(t)

		mock.ExpectQuery("SELECT id FROM albums").
			WithArgs("album-missing").
			WillReturnError(pgx.ErrNoRows)

		err := svc.Like(ctx, "album-missing", "user-1")
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("Already Liked", func(t *testing.T) {
		svc, mock, _ := setupLikesService(t)

		mock.ExpectQuery("SELECT id FROM albums").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("album-1"))
		mock.ExpectQuery("SELECT id FROM user_album_likes").
			WithArgs("album-1", "user-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("likes-old"))

		err := svc.Like(ctx, "album-1", "user-1")
		assert.True(t, errs.IsKind(err, errs.KindConflict))
		assert.Equal(t, "album already liked", err.Error())
	})
}

func TestUnlike(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Invalidates Cache", func(t *testing.T) {
		svc, mock, mr := setupLikesService(t)
		mr.Set("likes:album-1", "3")

		mock.ExpectQuery("DELETE FROM user_album_likes").
			WithArgs("album-1", "user-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("likes-abc"))

		require.NoError(t, svc.Unlike(ctx, "album-1", "user-1"))
		assert.False(t, mr.Exists("likes:album-1"))
	})

	t.Run("Not Liked", func(t *testing.T) {
		svc, mock, _ := setupLikesService(t)

		mock.ExpectQuery("DELETE FROM user_album_likes").
			WithArgs("album-1", "user-1").
			WillReturnError(pgx.ErrNoRows)

		err := svc.Unlike(ctx, "album-1", "user-1")
		assert.True(t, errs.IsKind(err, errs.KindInvariant))
	})
}

func TestLikeCount(t *testing.T) {
	ctx := context.Background()

	t.Run("Store Then Cache", func(t *testing.T) {
		svc, mock, _ := setupLikesService(t)

		mock.ExpectQuery("SELECT COUNT").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

		count, fromCache, err := svc.LikeCount(ctx, "album-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.False(t, fromCache)

		// Second read is served from cache; no further query expected.
		count, fromCache, err = svc.LikeCount(ctx, "album-1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.True(t, fromCache)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero Rows Reads As Missing Album", func(t *testing.T) {
		svc, mock, _ := setupLikesService(t)

		mock.ExpectQuery("SELECT COUNT").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

		_, _, err := svc.LikeCount(ctx, "album-1")
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("Cache Hit Skips Store Entirely", func(t *testing.T) {
		svc, _, mr := setupLikesService(t)
		mr.Set("likes:album-1", "7")

		count, fromCache, err := svc.LikeCount(ctx, "album-1")
		require.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.True(t, fromCache)
	})

	t.Run("Corrupt Cache Value Falls Through", func(t *testing.T) {
		svc, mock, mr := setupLikesService(t)
		mr.Set("likes:album-1", "not-a-number")

		mock.ExpectQuery("SELECT COUNT").
			WithArgs("album-1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, fromCache, err := svc.LikeCount(ctx, "album-1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.False(t, fromCache)
	})
}
