package models

// User is the persisted user row.
type User struct {
	ID       int64  `json:"id" db:"Id" bson:"_id"`
	Name     string `json:"name" db:"Name" bson:"name" validate:"required,notblank"`
	Email    string `json:"email" db:"Email" bson:"email" validate:"required,notblank,email"`
	Password string `json:"password" db:"Password" bson:"password" validate:"required,notblank,utf16min=8"`
}
