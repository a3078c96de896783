package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"music-catalog/internal/errs"
	"music-catalog/internal/httpx"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func (b *registerRequest) validate() error {
	b.Username = strings.TrimSpace(strings.ToLower(b.Username))
	b.Fullname = strings.TrimSpace(b.Fullname)

	var problems []string
	if b.Username == "" || len(b.Username) > 50 {
		problems = append(problems, "username: must be between 1 and 50 characters")
	}
	if b.Password == "" {
		problems = append(problems, "password: is required")
	}
	if b.Fullname == "" {
		problems = append(problems, "fullname: is required")
	}
	if len(problems) > 0 {
		return errs.ValidationFields(problems)
	}
	return nil
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := body.validate(); err != nil {
		httpx.Error(w, r, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: hash password: %v", err)
		httpx.Error(w, r, err)
		return
	}

	id := "user-" + uuid.NewString()

	var userID string
	err = s.db.QueryRow(r.Context(), `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, id, body.Username, string(hash), body.Fullname).Scan(&userID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			httpx.Error(w, r, errs.Invariant("username already taken"))
			return
		}
		httpx.Error(w, r, err)
		return
	}
	if userID == "" {
		httpx.Error(w, r, errs.Invariant("failed to add user"))
		return
	}

	httpx.Success(w, r, http.StatusCreated, map[string]any{"userId": userID})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var u User
	err := s.db.QueryRow(r.Context(), `
		SELECT id, username, fullname FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Fullname)
	if errors.Is(err, pgx.ErrNoRows) {
		httpx.Error(w, r, errs.NotFound("user not found"))
		return
	}
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Username = strings.TrimSpace(strings.ToLower(body.Username))
	if body.Username == "" || body.Password == "" {
		httpx.Error(w, r, errs.Validation("username and password are required"))
		return
	}

	var (
		userID string
		hash   string
	)
	err := s.db.QueryRow(r.Context(), `
		SELECT id, password FROM users WHERE username = $1
	`, body.Username).Scan(&userID, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		httpx.Fail(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(body.Password)); err != nil {
		httpx.Fail(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tokens, err := s.issueTokens(userID)
	if err != nil {
		log.Printf("auth: issue tokens: %v", err)
		httpx.Error(w, r, err)
		return
	}

	if _, err := s.db.Exec(r.Context(), `
		INSERT INTO authentications (token) VALUES ($1)
	`, tokens.RefreshToken); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusCreated, tokens)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	refresh, ok := s.verifyStoredRefreshToken(w, r)
	if !ok {
		return
	}

	claims, err := s.parseToken(refresh, "refresh")
	if err != nil {
		httpx.Error(w, r, errs.Invariant("invalid refresh token"))
		return
	}

	access, err := s.signToken(claims.UserID, "access", s.accessTTL)
	if err != nil {
		log.Printf("auth: refresh access token: %v", err)
		httpx.Error(w, r, err)
		return
	}

	httpx.Success(w, r, http.StatusOK, map[string]any{"accessToken": access})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	refresh, ok := s.verifyStoredRefreshToken(w, r)
	if !ok {
		return
	}

	if _, err := s.db.Exec(r.Context(), `
		DELETE FROM authentications WHERE token = $1
	`, refresh); err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.SuccessMessage(w, r, http.StatusOK, "refresh token deleted")
}

// verifyStoredRefreshToken decodes the body and checks the token is one we
// issued and still hold. A refresh token that was logged out is invalid even
// if its signature would still verify.
func (s *Server) verifyStoredRefreshToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.Fail(w, r, http.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	if body.RefreshToken == "" {
		httpx.Error(w, r, errs.Validation("refreshToken: is required"))
		return "", false
	}

	var stored string
	err := s.db.QueryRow(r.Context(), `
		SELECT token FROM authentications WHERE token = $1
	`, body.RefreshToken).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		httpx.Error(w, r, errs.Invariant("invalid refresh token"))
		return "", false
	}
	if err != nil {
		httpx.Error(w, r, err)
		return "", false
	}

	return body.RefreshToken, true
}
