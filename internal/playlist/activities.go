package playlist

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// recordActivity appends one audit record. It runs synchronously inside the
// triggering mutation but never fails its business outcome: the activity log
// is best-effort audit, so insert errors are logged and dropped.
func (s *Service) recordActivity(ctx context.Context, playlistID, songID, userID, action string) {
	id := "activities-" + uuid.NewString()

	if _, err := s.db.Exec(ctx, `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action)
		VALUES ($1, $2, $3, $4, $5)
	`, id, playlistID, songID, userID, action); err != nil {
		log.Printf("playlist: record %s activity for %s: %v", action, playlistID, err)
	}
}

// Activities lists a playlist's audit records in time-ascending order. Users
// and songs are left-joined so a deleted row nulls the field instead of
// hiding the activity.
func (s *Service) Activities(ctx context.Context, playlistID string) ([]Activity, error) {
	rows, err := s.db.Query(ctx, `
		SELECT users.username, songs.title,
		       playlist_song_activities.action,
		       playlist_song_activities.time
		FROM playlist_song_activities
		LEFT JOIN users ON playlist_song_activities.user_id = users.id
		LEFT JOIN songs ON playlist_song_activities.song_id = songs.id
		WHERE playlist_song_activities.playlist_id = $1
		ORDER BY playlist_song_activities.time ASC
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.Username, &a.Title, &a.Action, &a.Time); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
