package playlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"music-catalog/internal/errs"
)

// Service owns playlists, playlist-song membership, collaborations and the
// activity log, all against an injected store handle.
type Service struct {
	db DB
}

func NewService(db DB) *Service {
	return &Service{db: db}
}

func (s *Service) AddPlaylist(ctx context.Context, name, owner string) (string, error) {
	id := "playlist-" + uuid.NewString()

	var playlistID string
	err := s.db.QueryRow(ctx, `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, owner).Scan(&playlistID)
	if err != nil {
		return "", err
	}
	if playlistID == "" {
		return "", errs.Invariant("failed to add playlist")
	}
	return playlistID, nil
}

// Playlists returns the playlists owner can see: owned ones united with those
// they collaborate on, deduplicated, each annotated with the owner's
// username.
func (s *Service) Playlists(ctx context.Context, owner string) ([]PlaylistSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON playlists.owner = users.id
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1
		GROUP BY playlists.id, users.username
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []PlaylistSummary{}
	for rows.Next() {
		var p PlaylistSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (s *Service) DeletePlaylist(ctx context.Context, id string) error {
	var playlistID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM playlists WHERE id = $1 RETURNING id
	`, id).Scan(&playlistID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to delete playlist: id not found")
	}
	return err
}

// AddSong inserts a membership row and records an "add" activity. Access and
// song-existence checks are the caller's job and must happen first.
func (s *Service) AddSong(ctx context.Context, playlistID, songID, userID string) (string, error) {
	id := "playlist-song-" + uuid.NewString()

	var membershipID string
	err := s.db.QueryRow(ctx, `
		INSERT INTO playlists_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, playlistID, songID).Scan(&membershipID)
	if err != nil {
		return "", err
	}
	if membershipID == "" {
		return "", errs.Invariant("failed to add song to playlist")
	}

	s.recordActivity(ctx, playlistID, songID, userID, actionAdd)
	return membershipID, nil
}

// RemoveSong deletes one arbitrarily chosen membership row matching the pair.
// Adds never enforce uniqueness, so duplicates are possible and each call
// removes a single edge. Records a "delete" activity on success.
func (s *Service) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	var membershipID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM playlists_songs
		WHERE id = (
			SELECT id FROM playlists_songs
			WHERE playlist_id = $1 AND song_id = $2
			LIMIT 1
		)
		RETURNING id
	`, playlistID, songID).Scan(&membershipID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to remove song from playlist: id not found")
	}
	if err != nil {
		return err
	}

	s.recordActivity(ctx, playlistID, songID, userID, actionDelete)
	return nil
}

func (s *Service) PlaylistWithSongs(ctx context.Context, id string) (PlaylistDetail, error) {
	var d PlaylistDetail
	err := s.db.QueryRow(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		JOIN users ON users.id = playlists.owner
		WHERE playlists.id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, errs.NotFound("playlist not found")
	}
	if err != nil {
		return d, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT songs.id, songs.title, songs.performer
		FROM playlists_songs
		JOIN songs ON songs.id = playlists_songs.song_id
		WHERE playlists_songs.playlist_id = $1
	`, id)
	if err != nil {
		return d, err
	}
	defer rows.Close()

	d.Songs = []Song{}
	for rows.Next() {
		var sg Song
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return d, err
		}
		d.Songs = append(d.Songs, sg)
	}
	return d, rows.Err()
}
