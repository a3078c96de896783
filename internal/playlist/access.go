package playlist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"music-catalog/internal/errs"
)

// VerifyOwner fails NotFound when the playlist does not exist and Forbidden
// when it exists but is owned by someone else.
func (s *Service) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	var owner string
	err := s.db.QueryRow(ctx, `
		SELECT owner FROM playlists WHERE id = $1
	`, playlistID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("playlist not found")
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return errs.Forbidden("you are not allowed to access this resource")
	}
	return nil
}

// VerifyAccess grants Access = owner ∪ collaborators. Ownership is tried
// first; NotFound propagates immediately (there is nothing to collaborate
// on), and when the collaborator check fails too, the original Forbidden is
// returned rather than the collaborator error. This ordering decides whether
// a caller sees 404 or 403.
func (s *Service) VerifyAccess(ctx context.Context, playlistID, userID string) error {
	ownerErr := s.VerifyOwner(ctx, playlistID, userID)
	if ownerErr == nil {
		return nil
	}
	if !errs.IsKind(ownerErr, errs.KindForbidden) {
		return ownerErr
	}
	if err := s.verifyCollaborator(ctx, playlistID, userID); err != nil {
		return ownerErr
	}
	return nil
}

func (s *Service) verifyCollaborator(ctx context.Context, playlistID, userID string) error {
	var id string
	err := s.db.QueryRow(ctx, `
		SELECT id FROM collaborations WHERE playlist_id = $1 AND user_id = $2
	`, playlistID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Forbidden("you are not a collaborator of this playlist")
	}
	return err
}
