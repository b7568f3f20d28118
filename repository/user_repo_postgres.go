package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"usersapi/models"
)

// PostgresUserRepo stores users in the "User" table. The statements only use
// $n placeholders and RETURNING, so the same repo also runs on SQLite.
type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

const (
	pgInsertUser = `
		INSERT INTO "User" ("Name", "Email", "Password")
		VALUES ($1, $2, $3)
		RETURNING "Id"`

	pgGetUserByID = `
		SELECT "Id", "Name", "Email", "Password"
		FROM "User"
		WHERE "Id" = $1`

	pgListUsers = `
		SELECT "Id", "Name", "Email", "Password"
		FROM "User"
		ORDER BY "Id"
		LIMIT $1 OFFSET $2`

	pgUpdateUser = `
		UPDATE "User"
		SET "Name" = $1, "Email" = $2, "Password" = $3
		WHERE "Id" = $4`

	pgDeleteUser = `DELETE FROM "User" WHERE "Id" = $1`
)

// CreateUser inserts the user and reads back the generated id
func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	err := r.DB.QueryRowContext(ctx, pgInsertUser, user.Name, user.Email, user.Password).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByID fetches user by id
func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRowContext(ctx, pgGetUserByID, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context, skip, take int) ([]*models.User, error) {
	return listUsers(ctx, r.DB, pgListUsers, take, skip)
}

func (r *PostgresUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.DB.ExecContext(ctx, pgUpdateUser, user.Name, user.Email, user.Password, user.ID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return expectOneRow(res)
}

func (r *PostgresUserRepo) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, pgDeleteUser, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return expectOneRow(res)
}

// listUsers runs a page query whose first two arguments are limit and offset.
func listUsers(ctx context.Context, db *sql.DB, query string, args ...any) ([]*models.User, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("list users: scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ UserRepository = (*PostgresUserRepo)(nil)
