package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"music-catalog/internal/cache"
	"music-catalog/internal/errs"
)

// Service is the catalog core: albums and songs CRUD plus the cached album
// like count. The store handle and cache are injected at construction.
type Service struct {
	db    DB
	cache *cache.Client
}

func NewService(db DB, c *cache.Client) *Service {
	return &Service{db: db, cache: c}
}

func (s *Service) AddAlbum(ctx context.Context, name string, year int) (string, error) {
	id := "album-" + uuid.NewString()

	var albumID string
	err := s.db.QueryRow(ctx, `
		INSERT INTO albums (id, name, year)
		VALUES ($1, $2, $3)
		RETURNING id
	`, id, name, year).Scan(&albumID)
	if err != nil {
		return "", err
	}
	if albumID == "" {
		return "", errs.Invariant("failed to add album")
	}
	return albumID, nil
}

func (s *Service) Albums(ctx context.Context) ([]Album, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, year, cover_url, created_at, updated_at FROM albums
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := []Album{}
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Year, &a.CoverURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

func (s *Service) AlbumByID(ctx context.Context, id string) (AlbumDetail, error) {
	var d AlbumDetail
	err := s.db.QueryRow(ctx, `
		SELECT id, name, year, cover_url, created_at, updated_at
		FROM albums
		WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Year, &d.CoverURL, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, errs.NotFound("album not found")
	}
	if err != nil {
		return d, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, title, performer FROM songs WHERE album_id = $1
	`, id)
	if err != nil {
		return d, err
	}
	defer rows.Close()

	d.Songs = []SongSummary{}
	for rows.Next() {
		var sg SongSummary
		if err := rows.Scan(&sg.ID, &sg.Title, &sg.Performer); err != nil {
			return d, err
		}
		d.Songs = append(d.Songs, sg)
	}
	return d, rows.Err()
}

func (s *Service) EditAlbum(ctx context.Context, id, name string, year int) error {
	var albumID string
	err := s.db.QueryRow(ctx, `
		UPDATE albums
		SET name = $1, year = $2, updated_at = now()
		WHERE id = $3
		RETURNING id
	`, name, year, id).Scan(&albumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to update album: id not found")
	}
	return err
}

func (s *Service) DeleteAlbum(ctx context.Context, id string) error {
	var albumID string
	err := s.db.QueryRow(ctx, `
		DELETE FROM albums WHERE id = $1 RETURNING id
	`, id).Scan(&albumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to delete album: id not found")
	}
	return err
}

// UpdateAlbumCover records the public URL of an uploaded cover image.
func (s *Service) UpdateAlbumCover(ctx context.Context, id, coverURL string) error {
	var albumID string
	err := s.db.QueryRow(ctx, `
		UPDATE albums SET cover_url = $1, updated_at = now()
		WHERE id = $2
		RETURNING id
	`, coverURL, id).Scan(&albumID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound("failed to update album cover: id not found")
	}
	return err
}
