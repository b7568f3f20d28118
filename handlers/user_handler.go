package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"usersapi/mapper"
	"usersapi/models"
	"usersapi/repository"
	"usersapi/validation"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

const (
	defaultSkip = 0
	defaultTake = 10
)

type UserHandler struct {
	Repo      repository.UserRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

func NewUserHandler(repo repository.UserRepository, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Repo:      repo,
		Validator: validation.New(),
		Logger:    logger,
	}
}

// Create handler
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		models.CreateUser	true	"User to create"
//	@Success	201		{object}	models.User
//	@Failure	400		{object}	ValidationProblem
//	@Router		/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateUser
	if !decodeJSON(w, r, &in) {
		return
	}
	if !h.validate(w, r, in) {
		return
	}

	user := mapper.FromCreateUser(in)
	if err := h.Repo.CreateUser(r.Context(), user); err != nil {
		h.internalError(w, r, "create user", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// ListAll handler
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Param		skip	query		int	false	"Number of users to skip"	default(0)
//	@Param		take	query		int	false	"Maximum number of users"	default(10)
//	@Success	200		{array}		models.ReadUser
//	@Failure	400		{object}	ValidationProblem
//	@Router		/users [get]
func (h *UserHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	errs := validation.Errors{}
	skip := queryInt(r, "skip", defaultSkip, errs)
	take := queryInt(r, "take", defaultTake, errs)
	if len(errs) > 0 {
		writeProblem(w, r, errs)
		return
	}

	users, err := h.Repo.ListUsers(r.Context(), max(skip, 0), max(take, 0))
	if err != nil {
		h.internalError(w, r, "list users", err)
		return
	}

	writeJSON(w, http.StatusOK, mapper.ToReadUsers(users))
}

// ListById handler
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User id"
//	@Success	200	{object}	models.ReadUser
//	@Failure	404
//	@Router		/users/{id} [get]
func (h *UserHandler) ListById(w http.ResponseWriter, r *http.Request) {
	user, ok := h.findUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, mapper.ToReadUser(user))
}

// Update handler
//
//	@Summary	Replace a user
//	@Tags		users
//	@Accept		json
//	@Param		id		path	int					true	"User id"
//	@Param		user	body	models.UpdateUser	true	"New values"
//	@Success	204
//	@Failure	400	{object}	ValidationProblem
//	@Failure	404
//	@Router		/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.UpdateUser
	if !decodeJSON(w, r, &in) {
		return
	}

	user, ok := h.lookup(w, r, id)
	if !ok {
		return
	}
	if !h.validate(w, r, in) {
		return
	}

	mapper.ApplyUpdateUser(in, user)
	h.save(w, r, user)
}

// PartialUpdate handler. The body is a JSON Patch (RFC 6902) document applied
// to the UpdateUser view of the stored user. The result is validated once,
// after every operation has been applied.
//
//	@Summary	Patch a user
//	@Tags		users
//	@Accept		json-patch+json
//	@Param		id		path	int				true	"User id"
//	@Param		patch	body	[]PatchOperation	true	"JSON Patch operations"
//	@Success	204
//	@Failure	400	{object}	ValidationProblem
//	@Failure	404
//	@Router		/users/{id} [patch]
func (h *UserHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeProblem(w, r, validation.Errors{"body": {err.Error()}})
		return
	}
	patch, err := jsonpatch.DecodePatch(body)
	if err == nil && patch == nil {
		err = errNullPatch
	}
	if err != nil {
		writeProblem(w, r, validation.Errors{"patch": {err.Error()}})
		return
	}

	user, ok := h.lookup(w, r, id)
	if !ok {
		return
	}

	view, err := applyPatch(patch, mapper.ToUpdateUser(user))
	if err != nil {
		writeProblem(w, r, validation.Errors{"patch": {err.Error()}})
		return
	}
	if !h.validate(w, r, view) {
		return
	}

	mapper.ApplyUpdateUser(view, user)
	h.save(w, r, user)
}

// Delete handler
//
//	@Summary	Delete a user
//	@Tags		users
//	@Param		id	path	int	true	"User id"
//	@Success	204
//	@Failure	404
//	@Router		/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.findUser(w, r)
	if !ok {
		return
	}

	if err := h.Repo.DeleteUser(r.Context(), user.ID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.internalError(w, r, "delete user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PatchOperation documents one entry of a JSON Patch body.
type PatchOperation struct {
	Op    string `json:"op" example:"replace"`
	Path  string `json:"path" example:"/name"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value,omitempty"`
}

var errNullPatch = errors.New("a JSON Patch document must be an array of operations")

// applyPatch runs patch against view in memory. Fields removed by the patch
// come back empty; fields the view does not have are rejected.
func applyPatch(patch jsonpatch.Patch, view models.UpdateUser) (models.UpdateUser, error) {
	doc, err := json.Marshal(view)
	if err != nil {
		return models.UpdateUser{}, err
	}
	patched, err := patch.Apply(doc)
	if err != nil {
		return models.UpdateUser{}, err
	}

	var out models.UpdateUser
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return models.UpdateUser{}, err
	}
	return out, nil
}

func (h *UserHandler) findUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}
	return h.lookup(w, r, id)
}

// lookup writes 404 or 500 itself and reports false when the caller should stop.
func (h *UserHandler) lookup(w http.ResponseWriter, r *http.Request, id int64) (*models.User, bool) {
	user, err := h.Repo.GetUserByID(r.Context(), id)
	if err != nil {
		h.internalError(w, r, "get user", err)
		return nil, false
	}
	if user == nil {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	return user, true
}

func (h *UserHandler) save(w http.ResponseWriter, r *http.Request, user *models.User) {
	if err := h.Repo.UpdateUser(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.internalError(w, r, "update user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) validate(w http.ResponseWriter, r *http.Request, v any) bool {
	err := h.Validator.Struct(v)
	if err == nil {
		return true
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		writeProblem(w, r, errs)
		return false
	}
	h.internalError(w, r, "validate", err)
	return false
}

// internalError logs the cause and answers with an opaque 500.
func (h *UserHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.Logger.Error(op+" failed",
		"request_id", RequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, ApiError{Error: "internal server error"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeProblem(w, r, validation.Errors{"id": {fmt.Sprintf("The value '%s' is not valid.", raw)}})
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, recording a message
// in errs when it is present but not a number. Values beyond the int range
// saturate.
func queryInt(r *http.Request, key string, def int, errs validation.Errors) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return v
	}
	if err != nil {
		errs.Add(key, fmt.Sprintf("The value '%s' is not valid.", raw))
		return def
	}
	return v
}
