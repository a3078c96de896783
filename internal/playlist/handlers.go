package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"music-catalog/internal/auth"
	"music-catalog/internal/errs"
	"music-catalog/internal/httpx"
)

func (s *Server) handleAddPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		httpx.Error(w, r, errs.Validation("name: is required"))
		return
	}

	playlistID, err := s.svc.AddPlaylist(r.Context(), body.Name, userID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusCreated, map[string]any{"playlistId": playlistID})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlists, err := s.svc.Playlists(r.Context(), userID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusOK, map[string]any{"playlists": playlists})
}

// handleDeletePlaylist is owner-only: collaborators cannot delete.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	if err := s.svc.VerifyOwner(r.Context(), playlistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if err := s.svc.DeletePlaylist(r.Context(), playlistID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "playlist deleted")
}

// handleAddSong: the song must exist and the caller must have access before
// the membership row is inserted. Order matters for the error a caller sees.
func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.SongID) == "" {
		httpx.Error(w, r, errs.Validation("songId: is required"))
		return
	}

	if err := s.songs.SongExists(r.Context(), body.SongID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if err := s.svc.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	if _, err := s.svc.AddSong(r.Context(), playlistID, body.SongID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusCreated, "song added to playlist")
}

func (s *Server) handleGetSongs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	if err := s.svc.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	detail, err := s.svc.PlaylistWithSongs(r.Context(), playlistID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusOK, map[string]any{"playlist": detail})
}

func (s *Server) handleRemoveSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")

	var body struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.SongID) == "" {
		httpx.Error(w, r, errs.Validation("songId: is required"))
		return
	}

	if err := s.svc.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if err := s.svc.RemoveSong(r.Context(), playlistID, body.SongID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "song removed from playlist")
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	playlistID := chi.URLParam(r, "id")
	if err := s.svc.VerifyAccess(r.Context(), playlistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	activities, err := s.svc.Activities(r.Context(), playlistID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}

type collaborationRequest struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

func (b *collaborationRequest) validate() error {
	var problems []string
	if strings.TrimSpace(b.PlaylistID) == "" {
		problems = append(problems, "playlistId: is required")
	}
	if strings.TrimSpace(b.UserID) == "" {
		problems = append(problems, "userId: is required")
	}
	if len(problems) > 0 {
		return errs.ValidationFields(problems)
	}
	return nil
}

func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	var body collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	if err := s.svc.VerifyOwner(r.Context(), body.PlaylistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	collabID, err := s.svc.AddCollaboration(r.Context(), body.PlaylistID, body.UserID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusCreated, map[string]any{"collaborationId": collabID})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	var body collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	if err := s.svc.VerifyOwner(r.Context(), body.PlaylistID, userID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if err := s.svc.DeleteCollaboration(r.Context(), body.PlaylistID, body.UserID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "collaboration deleted")
}
