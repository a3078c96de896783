package playlist

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id    TEXT PRIMARY KEY,
          name  TEXT NOT NULL,
          owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
      )
    `)
	if err != nil {
		log.Printf("playlist: migrate playlists: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS collaborations (
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
          id          TEXT PRIMARY KEY
      )
    `); err != nil {
		log.Printf("playlist: migrate collaborations: %v", err)
		return err
	}

	// Membership rows carry a synthetic id and no (playlist_id, song_id)
	// uniqueness: repeated adds of the same pair are allowed.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists_songs (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL REFERENCES songs(id) ON DELETE CASCADE
      )
    `); err != nil {
		log.Printf("playlist: migrate playlists_songs: %v", err)
		return err
	}

	// Append-only; no foreign keys to users/songs so the audit trail outlives
	// the rows it references.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlist_song_activities (
          id          TEXT PRIMARY KEY,
          playlist_id TEXT NOT NULL REFERENCES playlists(id) ON DELETE CASCADE,
          song_id     TEXT NOT NULL,
          user_id     TEXT NOT NULL,
          action      TEXT NOT NULL,
          time        TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlist: migrate playlist_song_activities: %v", err)
		return err
	}

	return nil
}
