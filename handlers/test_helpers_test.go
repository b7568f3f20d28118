package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"usersapi/models"
	"usersapi/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer mounts a UserHandler on the same patterns the router uses.
func newTestServer(t *testing.T, repo repository.UserRepository) http.Handler {
	t.Helper()
	h := NewUserHandler(repo, discardLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", h.Create)
	mux.HandleFunc("GET /users", h.ListAll)
	mux.HandleFunc("GET /users/{id}", h.ListById)
	mux.HandleFunc("PUT /users/{id}", h.Update)
	mux.HandleFunc("PATCH /users/{id}", h.PartialUpdate)
	mux.HandleFunc("DELETE /users/{id}", h.Delete)
	return RequestLogger(discardLogger(), mux)
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)
	return resp
}

func mustStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Fatalf("expected status %d, got %d (body %s)", expected, resp.Code, resp.Body.String())
	}
}

func decodeProblem(t *testing.T, resp *httptest.ResponseRecorder) ValidationProblem {
	t.Helper()
	mustStatus(t, resp, http.StatusBadRequest)
	var p ValidationProblem
	if err := json.Unmarshal(resp.Body.Bytes(), &p); err != nil {
		t.Fatalf("json.Unmarshal problem: %v", err)
	}
	return p
}

func seedUser(t *testing.T, repo repository.UserRepository, name, email, password string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: password}
	if err := repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func storedUser(t *testing.T, repo repository.UserRepository, id int64) *models.User {
	t.Helper()
	u, err := repo.GetUserByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	return u
}

var errStoreDown = errors.New("dial tcp 10.0.0.1:5432: connection refused")

// failingRepo fails every call the way an unreachable database would.
type failingRepo struct{}

func (failingRepo) CreateUser(context.Context, *models.User) error { return errStoreDown }
func (failingRepo) GetUserByID(context.Context, int64) (*models.User, error) {
	return nil, errStoreDown
}
func (failingRepo) ListUsers(context.Context, int, int) ([]*models.User, error) {
	return nil, errStoreDown
}
func (failingRepo) UpdateUser(context.Context, *models.User) error { return errStoreDown }
func (failingRepo) DeleteUser(context.Context, int64) error        { return errStoreDown }
