package catalog

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func AutoMigrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS albums (
          id         TEXT PRIMARY KEY,
          name       TEXT NOT NULL,
          year       INT NOT NULL,
          cover_url  TEXT,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `)
	if err != nil {
		log.Printf("catalog: migrate albums: %v", err)
		return err
	}

	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS songs (
          id         TEXT PRIMARY KEY,
          title      TEXT NOT NULL,
          year       INT NOT NULL,
          genre      TEXT NOT NULL,
          performer  TEXT NOT NULL,
          duration   INT,
          album_id   TEXT REFERENCES albums(id) ON DELETE SET NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
          updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("catalog: migrate songs: %v", err)
		return err
	}

	// No unique (album_id, user_id) constraint: uniqueness is an
	// application-level pre-check.
	if _, err := pool.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS user_album_likes (
          id       TEXT PRIMARY KEY,
          user_id  TEXT NOT NULL,
          album_id TEXT NOT NULL
      )
    `); err != nil {
		log.Printf("catalog: migrate user_album_likes: %v", err)
		return err
	}

	return nil
}
