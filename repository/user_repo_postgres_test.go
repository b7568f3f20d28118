package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"usersapi/models"
	"usersapi/repository"

	_ "github.com/mattn/go-sqlite3"
)

// newSQLiteRepo runs the Postgres statements against an in-memory SQLite
// database, which accepts the same placeholders and RETURNING clause.
func newSQLiteRepo(t *testing.T) *repository.PostgresUserRepo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE "User" (
			"Id"       INTEGER PRIMARY KEY AUTOINCREMENT,
			"Email"    TEXT NOT NULL,
			"Name"     TEXT NOT NULL,
			"Password" TEXT NOT NULL
		)`)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	return repository.NewPostgresUserRepo(db)
}

func mustCreate(t *testing.T, r repository.UserRepository, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "abcdefgh"}
	if err := r.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return u
}

func TestPostgresUserRepo_CreateAndGet(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()

	u := mustCreate(t, r, "Ann", "ann@x.com")
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}

	got, err := r.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != *u {
		t.Fatalf("got %+v, want %+v", got, u)
	}
}

func TestPostgresUserRepo_GetUserByID_NotFound(t *testing.T) {
	r := newSQLiteRepo(t)

	got, err := r.GetUserByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil user, got %+v", got)
	}
}

func TestPostgresUserRepo_ListUsers(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()

	mustCreate(t, r, "Ann", "ann@x.com")
	mustCreate(t, r, "Bob", "bob@x.com")
	mustCreate(t, r, "Cid", "cid@x.com")

	page, err := r.ListUsers(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].Name != "Bob" || page[1].Name != "Cid" {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, err = r.ListUsers(ctx, 0, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 1 || page[0].Name != "Ann" {
		t.Fatalf("unexpected page: %+v", page)
	}

	page, err = r.ListUsers(ctx, 100, 10)
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if page == nil || len(page) != 0 {
		t.Fatalf("expected empty non-nil page, got %#v", page)
	}
}

func TestPostgresUserRepo_UpdateUser(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()

	u := mustCreate(t, r, "Ann", "ann@x.com")
	u.Name = "Anne"
	u.Password = "12345678"
	if err := r.UpdateUser(ctx, u); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := r.GetUserByID(ctx, u.ID)
	if got.Name != "Anne" || got.Password != "12345678" || got.Email != "ann@x.com" {
		t.Fatalf("unexpected row after update: %+v", got)
	}

	// same values again must still find the row
	if err := r.UpdateUser(ctx, u); err != nil {
		t.Fatalf("idempotent update: %v", err)
	}
}

func TestPostgresUserRepo_UpdateUser_NotFound(t *testing.T) {
	r := newSQLiteRepo(t)

	err := r.UpdateUser(context.Background(), &models.User{ID: 9, Name: "x", Email: "x@x.com", Password: "abcdefgh"})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPostgresUserRepo_DeleteUser(t *testing.T) {
	r := newSQLiteRepo(t)
	ctx := context.Background()

	u := mustCreate(t, r, "Ann", "ann@x.com")
	if err := r.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := r.GetUserByID(ctx, u.ID); got != nil {
		t.Fatalf("expected user to be gone, got %+v", got)
	}
	if err := r.DeleteUser(ctx, u.ID); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
