package models

// CreateUser is the request body for POST /users.
type CreateUser struct {
	Name     string `json:"name" validate:"required,notblank" example:"Ann"`
	Email    string `json:"email" validate:"required,notblank,email" example:"ann@x.com"`
	Password string `json:"password" validate:"required,notblank,utf16min=8" example:"abcdefgh"`
}

// ReadUser is what the API returns for a user. Password and id are never exposed.
type ReadUser struct {
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@x.com"`
}

// UpdateUser is the request body for PUT /users/{id} and the document a
// JSON Patch is applied to.
//
// Password must be exactly 8 characters here while the entity only requires
// a minimum of 8. The mismatch is kept on purpose until the owner decides
// which rule wins.
type UpdateUser struct {
	Name     string `json:"name" validate:"required,notblank" example:"Ann"`
	Email    string `json:"email" validate:"required,notblank,email" example:"ann@x.com"`
	Password string `json:"password" validate:"required,notblank,utf16len=8" example:"abcdefgh"`
}
