// Package catalog exposes album and song CRUD plus album likes with a
// cache-backed count.
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	svc *Service
}

func NewServer(svc *Service) *Server {
	return &Server{svc: svc}
}

// RegisterRoutes mounts the catalog routes. Like mutations carry the
// caller's identity, so they run behind requireAuth; everything else is open.
func (s *Server) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Post("/albums", s.handleAddAlbum)
	r.Get("/albums", s.handleListAlbums)
	r.Get("/albums/{id}", s.handleGetAlbum)
	r.Put("/albums/{id}", s.handleEditAlbum)
	r.Delete("/albums/{id}", s.handleDeleteAlbum)

	r.Post("/songs", s.handleAddSong)
	r.Get("/songs", s.handleListSongs)
	r.Get("/songs/{id}", s.handleGetSong)
	r.Put("/songs/{id}", s.handleEditSong)
	r.Delete("/songs/{id}", s.handleDeleteSong)

	r.Get("/albums/{id}/likes", s.handleLikeCount)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/albums/{id}/likes", s.handleLike)
		r.Delete("/albums/{id}/likes", s.handleUnlike)
	})
}
