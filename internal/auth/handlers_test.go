package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupMockServer(t *testing.T) (*Server, pgxmock.PgxPoolIface, chi.Router) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	s := NewServer(mock, []byte("test-secret"))
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return s, mock, r
}

func postJSON(path string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleRegister(t *testing.T) {
	_, mock, r := setupMockServer(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(pgxmock.AnyArg(), "alice", pgxmock.AnyArg(), "Alice Doe").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("user-abc"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/users", map[string]any{
			"username": "Alice", "password": "secret", "fullname": "Alice Doe",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Status string `json:"status"`
			Data   struct {
				UserID string `json:"userId"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "user-abc", resp.Data.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(pgxmock.AnyArg(), "alice", pgxmock.AnyArg(), "Alice Doe").
			WillReturnError(errors.New(`duplicate key value violates unique constraint "users_username_key"`))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/users", map[string]any{
			"username": "alice", "password": "secret", "fullname": "Alice Doe",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "username already taken")
	})

	t.Run("Validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/users", map[string]any{"username": "", "password": "", "fullname": ""}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/users", bytes.NewReader([]byte("not-json")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetUser(t *testing.T) {
	_, mock, r := setupMockServer(t)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, fullname FROM users").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "fullname"}).
				AddRow("user-1", "alice", "Alice Doe"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/users/user-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, fullname FROM users").
			WithArgs("user-missing").
			WillReturnError(pgx.ErrNoRows)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/users/user-missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	_, mock, r := setupMockServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password FROM users").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"id", "password"}).AddRow("user-1", string(hash)))
		mock.ExpectExec("INSERT INTO authentications").
			WithArgs(pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/authentications", map[string]any{"username": "alice", "password": "secret"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Data Tokens `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.NotEmpty(t, resp.Data.RefreshToken)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password FROM users").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"id", "password"}).AddRow("user-1", string(hash)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/authentications", map[string]any{"username": "alice", "password": "wrong"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})

	t.Run("Unknown User", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, password FROM users").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postJSON("/authentications", map[string]any{"username": "nobody", "password": "secret"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleRefresh(t *testing.T) {
	s, mock, r := setupMockServer(t)

	tokens, err := s.issueTokens("user-1")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT token FROM authentications").
			WithArgs(tokens.RefreshToken).
			WillReturnRows(pgxmock.NewRows([]string{"token"}).AddRow(tokens.RefreshToken))

		req := postJSON("/authentications", map[string]any{"refreshToken": tokens.RefreshToken})
		req.Method = "PUT"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				AccessToken string `json:"accessToken"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		claims, err := s.parseToken(resp.Data.AccessToken, "access")
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("Token Not Stored", func(t *testing.T) {
		mock.ExpectQuery("SELECT token FROM authentications").
			WithArgs(tokens.RefreshToken).
			WillReturnError(pgx.ErrNoRows)

		req := postJSON("/authentications", map[string]any{"refreshToken": tokens.RefreshToken})
		req.Method = "PUT"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid refresh token")
	})

	t.Run("Stored But Not A Refresh Token", func(t *testing.T) {
		// An access token smuggled into the refresh flow must be rejected
		// even if it somehow ended up stored.
		mock.ExpectQuery("SELECT token FROM authentications").
			WithArgs(tokens.AccessToken).
			WillReturnRows(pgxmock.NewRows([]string{"token"}).AddRow(tokens.AccessToken))

		req := postJSON("/authentications", map[string]any{"refreshToken": tokens.AccessToken})
		req.Method = "PUT"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	s, mock, r := setupMockServer(t)

	tokens, err := s.issueTokens("user-1")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT token FROM authentications").
			WithArgs(tokens.RefreshToken).
			WillReturnRows(pgxmock.NewRows([]string{"token"}).AddRow(tokens.RefreshToken))
		mock.ExpectExec("DELETE FROM authentications").
			WithArgs(tokens.RefreshToken).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		req := postJSON("/authentications", map[string]any{"refreshToken": tokens.RefreshToken})
		req.Method = "DELETE"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "refresh token deleted")
	})

	t.Run("Missing Token Field", func(t *testing.T) {
		req := postJSON("/authentications", map[string]any{})
		req.Method = "DELETE"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
