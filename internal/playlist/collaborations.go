package playlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"music-catalog/internal/errs"
)

// AddCollaboration grants userID non-owner access to the playlist. The user
// must exist; owner checks are the handler's job.
func (s *Service) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	var existing string
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&existing)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", errs.NotFound("user not found")
	}
	if err != nil {
		return "", err
	}

	id := "collab-" + uuid.NewString()

	var collabID string
	err = s.db.QueryRow(ctx, `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, playlistID, userID).Scan(&collabID)
	if err != nil {
		return "", err
	}
	if collabID == "" {
		return "", errs.Invariant("failed to add collaboration")
	}
	return collabID, nil
}

func (s *Service) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	var collabID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2
		RETURNING id
	`, playlistID, userID).Scan(&collabID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Invariant("failed to delete collaboration")
	}
	return err
}
