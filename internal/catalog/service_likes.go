package catalog

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"music-catalog/internal/errs"
)

// Like records a like edge for (albumID, userID). The duplicate check is an
// application-level pre-check, not a storage constraint, so two concurrent
// likers can still both insert. Invalidate the cached count on success.
func (s *Service) Like(ctx context.Context, albumID, userID string) error {
	var id string
	err := s.db.QueryRow(ctx, `SELECT id FROM albums WHERE id = $1`, albumID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("album not found")
	}
	if err != nil {
		return err
	}

	err = s.db.QueryRow(ctx, `
		SELECT id FROM user_album_likes WHERE album_id = $1 AND user_id = $2
	`, albumID, userID).Scan(&id)
	if err == nil {
		return errs.Conflict("album already liked")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	likeID := "likes-" + uuid.NewString()
	err = s.db.QueryRow(ctx, `
		INSERT INTO user_album_likes (id, user_id, album_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, likeID, userID, albumID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Invariant("failed to like album")
	}
	if err != nil {
		return err
	}

	return s.cache.Delete(ctx, likesCacheKey(albumID))
}

func (s *Service) Unlike(ctx context.Context, albumID, userID string) error {
	var id string
	err := s.db.QueryRow(ctx, `
		DELETE FROM user_album_likes
		WHERE album_id = $1 AND user_id = $2
		RETURNING id
	`, albumID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Invariant("failed to unlike album")
	}
	if err != nil {
		return err
	}

	return s.cache.Delete(ctx, likesCacheKey(albumID))
}

// LikeCount returns the album's like count and whether it came from cache.
// The cache-hit path never checks that the album exists, and on the store
// path zero rows is indistinguishable from a missing album; both quirks are
// inherited behavior and deliberately kept.
func (s *Service) LikeCount(ctx context.Context, albumID string) (int, bool, error) {
	if v, ok := s.cache.Get(ctx, likesCacheKey(albumID)); ok {
		if count, err := strconv.Atoi(v); err == nil {
			return count, true, nil
		}
	}

	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(id) FROM user_album_likes WHERE album_id = $1
	`, albumID).Scan(&count)
	if err != nil {
		return 0, false, err
	}
	if count == 0 {
		return 0, false, errs.NotFound("album not found")
	}

	if err := s.cache.Set(ctx, likesCacheKey(albumID), strconv.Itoa(count)); err != nil {
		return 0, false, err
	}
	return count, false, nil
}
