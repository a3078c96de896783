package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"music-catalog/internal/errs"
)

type SongInput struct {
	Title     string
	Year      int
	Genre     string
	Performer string
	Duration  *int
	AlbumID   *string
}

func (s *Service) AddSong(ctx context.Context, in SongInput) (string, error) {
	id := "song-" + uuid.NewString()

	var songID string
	err := s.db.QueryRow(ctx, `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, id, in.Title, in.Year, in.Genre, in.Performer, in.Duration, in.AlbumID).Scan(&songID)
	if err != nil {
		return "", err
	}
	if songID == "" {
		return "", errs.Invariant("failed to add song")
	}
	return songID, nil
}

// Songs lists song summaries, optionally filtered by title and performer
// substrings (case-insensitive). Empty filters match everything.
func (s *Service) Songs(ctx context.Context, title, performer string) ([]SongSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, performer
		FROM songs
		WHERE title ILIKE '%' || $1 || '%'
		  AND performer ILIKE '%' || $2 || '%'
	`, title, performer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []SongSummary{}
	for rows.Next() {
		var sg SongSummary
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, sg)
	}
	return songs, rows.Err()
}

func (s *Service) SongByID(ctx context.Context, id string) (Song, error) {
	var sg Song
	err := s.db.QueryRow(ctx, `
		SELECT id, title, year, genre, performer, duration, album_id, created_at, updated_at
		FROM songs
		WHERE id = $1
	`, id).Scan(&sg.ID, &sg.Title, &sg.Year, &sg.Genre, &sg.Performer, &sg.Duration, &sg.AlbumID, &sg.CreatedAt, &sg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return sg, errs.NotFound("song not found")
	}
	return sg, err
}

// SongExists is the existence probe used by the playlist service before it
// adds a membership row.
func (s *Service) SongExists(ctx context.Context, id string) error {
	var songID string
	err := s.db.QueryRow(ctx, `SELECT id FROM songs WHERE id = $1`, id).Scan(&songID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("song not found")
	}
	return err
}

func (s *Service) EditSong(ctx context.Context, id string, in SongInput) error {
	var songID string
	err := s.db.QueryRow(ctx, `
		UPDATE songs
		SET title = $1, year = $2, genre = $3, performer = $4, duration = $5, album_id = $6, updated_at = now()
		WHERE id = $7
		RETURNING id
	`, in.Title, in.Year, in.Genre, in.Performer, in.Duration, in.AlbumID, id).Scan(&songID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to update song: id not found")
	}
	return err
}

func (s *Service) DeleteSong(ctx context.Context, id string) error {
	var songID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM songs WHERE id = $1 RETURNING id
	`, id).Scan(&songID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to delete song: id not found")
	}
	return err
}
