// Package auth owns user accounts and token issuance: registration with
// bcrypt-hashed passwords, HS256 access tokens and stored refresh tokens.
package auth

import (
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	db         DB
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewServer(db DB, jwtSecret []byte) *Server {
	return &Server{
		db:         db,
		jwtSecret:  jwtSecret,
		accessTTL:  30 * time.Minute,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Post("/users", s.handleRegister)
	r.Get("/users/{id}", s.handleGetUser)

	r.Post("/authentications", s.handleLogin)
	r.Put("/authentications", s.handleRefresh)
	r.Delete("/authentications", s.handleLogout)
}
