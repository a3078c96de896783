// Package playlist composes access control, the activity log and playlist
// membership on top of the entity store.
package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	svc   *Service
	songs SongChecker
}

func NewServer(svc *Service, songs SongChecker) *Server {
	return &Server{svc: svc, songs: songs}
}

// RegisterRoutes mounts the playlist and collaboration routes. Every
// operation needs an authenticated caller.
func (s *Server) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/playlists", s.handleAddPlaylist)
		r.Get("/playlists", s.handleListPlaylists)
		r.Delete("/playlists/{id}", s.handleDeletePlaylist)

		r.Post("/playlists/{id}/songs", s.handleAddSong)
		r.Get("/playlists/{id}/songs", s.handleGetSongs)
		r.Delete("/playlists/{id}/songs", s.handleRemoveSong)

		r.Get("/playlists/{id}/activities", s.handleActivities)

		r.Post("/collaborations", s.handleAddCollaboration)
		r.Delete("/collaborations", s.handleDeleteCollaboration)
	})
}
