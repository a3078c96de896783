package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"music-catalog/internal/httpx"
)

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	songID, err := s.svc.AddSong(r.Context(), body.input())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusCreated, map[string]any{"songId": songID})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.svc.Songs(r.Context(), r.URL.Query().Get("title"), r.URL.Query().Get("performer"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Success(w, r, http.StatusOK, map[string]any{"songs": songs})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.svc.SongByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Success(w, r, http.StatusOK, map[string]any{"song": song})
}

func (s *Server) handleEditSong(w http.ResponseWriter, r *http.Request) {
	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	if err := s.svc.EditSong(r.Context(), chi.URLParam(r, "id"), body.input()); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "song updated")
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteSong(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.SuccessMessage(w, r, http.StatusOK, "song deleted")
}
