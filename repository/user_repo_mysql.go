package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"usersapi/models"
)

// MySQLUserRepo stores users in the `User` table of a MySQL database.
// The connection must be opened with clientFoundRows=true, otherwise an
// update that changes nothing reports zero rows and looks like a miss.
type MySQLUserRepo struct {
	DB *sql.DB
}

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo {
	return &MySQLUserRepo{DB: db}
}

const (
	myInsertUser = "INSERT INTO `User` (`Name`, `Email`, `Password`) VALUES (?, ?, ?)"

	myGetUserByID = "SELECT `Id`, `Name`, `Email`, `Password` FROM `User` WHERE `Id` = ?"

	myListUsers = "SELECT `Id`, `Name`, `Email`, `Password` FROM `User` ORDER BY `Id` LIMIT ? OFFSET ?"

	myUpdateUser = "UPDATE `User` SET `Name` = ?, `Email` = ?, `Password` = ? WHERE `Id` = ?"

	myDeleteUser = "DELETE FROM `User` WHERE `Id` = ?"
)

func (r *MySQLUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.DB.ExecContext(ctx, myInsertUser, user.Name, user.Email, user.Password)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: last insert id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *MySQLUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRowContext(ctx, myGetUserByID, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

func (r *MySQLUserRepo) ListUsers(ctx context.Context, skip, take int) ([]*models.User, error) {
	return listUsers(ctx, r.DB, myListUsers, take, skip)
}

func (r *MySQLUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.DB.ExecContext(ctx, myUpdateUser, user.Name, user.Email, user.Password, user.ID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return expectOneRow(res)
}

func (r *MySQLUserRepo) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, myDeleteUser, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return expectOneRow(res)
}

var _ UserRepository = (*MySQLUserRepo)(nil)
