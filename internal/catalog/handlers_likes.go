package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"music-catalog/internal/auth"
	"music-catalog/internal/httpx"
)

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	if err := s.svc.Like(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusCreated, "album liked")
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		httpx.Fail(w, r, http.StatusUnauthorized, "missing user context")
		return
	}

	if err := s.svc.Unlike(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "album unliked")
}

func (s *Server) handleLikeCount(w http.ResponseWriter, r *http.Request) {
	count, fromCache, err := s.svc.LikeCount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	if fromCache {
		w.Header().Set("X-Data-Source", "cache")
	}
	httpx.Success(w, r, http.StatusOK, map[string]any{"likes": count})
}
