package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"music-catalog/internal/httpx"
)

func (s *Server) handleAddAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	albumID, err := s.svc.AddAlbum(r.Context(), body.Name, body.Year)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusCreated, map[string]any{"albumId": albumID})
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.svc.Albums(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Success(w, r, http.StatusOK, map[string]any{"albums": albums})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.svc.AlbumByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Success(w, r, http.StatusOK, map[string]any{"album": album})
}

func (s *Server) handleEditAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	if err := s.svc.EditAlbum(r.Context(), chi.URLParam(r, "id"), body.Name, body.Year); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "album updated")
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteAlbum(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.SuccessMessage(w, r, http.StatusOK, "album deleted")
}
