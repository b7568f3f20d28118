package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"usersapi/models"
	"usersapi/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMySQLRepo(t *testing.T) (*repository.MySQLUserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("sql expectations: %v", err)
		}
		_ = db.Close()
	})
	return repository.NewMySQLUserRepo(db), mock
}

func TestMySQLUserRepo_CreateUser(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `User` (`Name`, `Email`, `Password`) VALUES (?, ?, ?)")).
		WithArgs("Ann", "ann@x.com", "abcdefgh").
		WillReturnResult(sqlmock.NewResult(5, 1))

	u := &models.User{Name: "Ann", Email: "ann@x.com", Password: "abcdefgh"}
	if err := r.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != 5 {
		t.Fatalf("expected id 5, got %d", u.ID)
	}
}

func TestMySQLUserRepo_GetUserByID(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id`, `Name`, `Email`, `Password` FROM `User` WHERE `Id` = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Name", "Email", "Password"}).
			AddRow(3, "Ann", "ann@x.com", "abcdefgh"))

	u, err := r.GetUserByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u == nil || u.ID != 3 || u.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestMySQLUserRepo_GetUserByID_NotFound(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id`, `Name`, `Email`, `Password` FROM `User` WHERE `Id` = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Name", "Email", "Password"}))

	u, err := r.GetUserByID(context.Background(), 3)
	if err != nil || u != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", u, err)
	}
}

func TestMySQLUserRepo_ListUsers(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id`, `Name`, `Email`, `Password` FROM `User` ORDER BY `Id` LIMIT ? OFFSET ?")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Name", "Email", "Password"}).
			AddRow(1, "Ann", "ann@x.com", "abcdefgh").
			AddRow(2, "Bob", "bob@x.com", "abcdefgh"))

	users, err := r.ListUsers(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 || users[1].Name != "Bob" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestMySQLUserRepo_UpdateUser_NotFound(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `User` SET `Name` = ?, `Email` = ?, `Password` = ? WHERE `Id` = ?")).
		WithArgs("Ann", "ann@x.com", "abcdefgh", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateUser(context.Background(), &models.User{ID: 8, Name: "Ann", Email: "ann@x.com", Password: "abcdefgh"})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMySQLUserRepo_DeleteUser(t *testing.T) {
	r, mock := newMySQLRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `User` WHERE `Id` = ?")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.DeleteUser(context.Background(), 8); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestMySQLUserRepo_PropagatesDriverErrors(t *testing.T) {
	r, mock := newMySQLRepo(t)
	boom := errors.New("connection refused")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `User` WHERE `Id` = ?")).
		WithArgs(int64(8)).
		WillReturnError(boom)

	err := r.DeleteUser(context.Background(), 8)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		t.Fatal("driver error must not look like a miss")
	}
}
