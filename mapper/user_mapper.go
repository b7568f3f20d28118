// Package mapper copies fields between the user entity and its API shapes.
package mapper

import "usersapi/models"

// FromCreateUser builds a new entity. ID is left for the store to assign.
func FromCreateUser(in models.CreateUser) *models.User {
	return &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}
}

// ApplyUpdateUser overwrites the mutable fields of u. ID is untouched.
func ApplyUpdateUser(in models.UpdateUser, u *models.User) {
	u.Name = in.Name
	u.Email = in.Email
	u.Password = in.Password
}

func ToUpdateUser(u *models.User) models.UpdateUser {
	return models.UpdateUser{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}

func ToReadUser(u *models.User) models.ReadUser {
	return models.ReadUser{
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToReadUsers never returns nil so an empty page encodes as [].
func ToReadUsers(users []*models.User) []models.ReadUser {
	out := make([]models.ReadUser, 0, len(users))
	for _, u := range users {
		out = append(out, ToReadUser(u))
	}
	return out
}
