// Package uploads stores album cover images on local disk and serves them
// back statically. Content types are allow-listed and the payload cap is
// enforced at the transport layer with MaxBytesReader.
package uploads

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"music-catalog/internal/errs"
	"music-catalog/internal/httpx"
)

// maxCoverBytes caps the whole multipart payload.
const maxCoverBytes = 512000

var allowedCoverTypes = map[string]bool{
	"image/apng": true,
	"image/avif": true,
	"image/gif":  true,
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// AlbumCoverUpdater is the catalog collaborator that records the cover URL.
type AlbumCoverUpdater interface {
	UpdateAlbumCover(ctx context.Context, id, coverURL string) error
}

type Server struct {
	albums  AlbumCoverUpdater
	dir     string
	baseURL string
}

func NewServer(albums AlbumCoverUpdater, dir, baseURL string) *Server {
	return &Server{albums: albums, dir: dir, baseURL: baseURL}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/albums/{id}/covers", s.handleUploadCover)
	r.Get("/cover/*", s.handleServeCover)
}

func (s *Server) handleUploadCover(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxCoverBytes)
	if err := r.ParseMultipartForm(maxCoverBytes); err != nil {
		httpx.Error(w, r, errs.Validation("payload too large or invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		httpx.Error(w, r, errs.Validation("cover: is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedCoverTypes[contentType] {
		httpx.Error(w, r, errs.Validation("cover: unsupported content type "+contentType))
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("uploads: mkdir %s: %v", s.dir, err)
		httpx.Error(w, r, err)
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	dstPath := filepath.Join(s.dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		log.Printf("uploads: create %s: %v", dstPath, err)
		httpx.Error(w, r, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("uploads: write %s: %v", dstPath, err)
		httpx.Error(w, r, err)
		return
	}

	coverURL := s.baseURL + "/cover/" + filename
	if err := s.albums.UpdateAlbumCover(r.Context(), albumID, coverURL); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusCreated, "cover uploaded")
}

func (s *Server) handleServeCover(w http.ResponseWriter, r *http.Request) {
	fs := http.StripPrefix("/cover/", http.FileServer(http.Dir(s.dir)))
	fs.ServeHTTP(w, r)
}
