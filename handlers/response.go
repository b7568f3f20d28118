package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"usersapi/validation"
)

const maxBodyBytes = 1 << 20

// ApiError is the body of every non-validation failure that carries one.
type ApiError struct {
	Error string `json:"error"`
}

// ValidationProblem is the 400 body listing every failing field.
type ValidationProblem struct {
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Status  int               `json:"status"`
	Errors  validation.Errors `json:"errors"`
	TraceID string            `json:"traceId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, r *http.Request, errs validation.Errors) {
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ValidationProblem{
		Type:    "https://tools.ietf.org/html/rfc9110#section-15.5.1",
		Title:   "One or more validation errors occurred.",
		Status:  http.StatusBadRequest,
		Errors:  errs,
		TraceID: RequestIDFromContext(r.Context()),
	})
}

// readBody reads at most maxBodyBytes and rejects an empty body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

var errEmptyBody = errors.New("a non-empty request body is required")

// decodeJSON decodes the request body into dst. Failures are reported as a
// validation problem keyed by "body".
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := readBody(w, r)
	if err == nil {
		err = json.Unmarshal(body, dst)
	}
	if err != nil {
		writeProblem(w, r, validation.Errors{"body": {err.Error()}})
		return false
	}
	return true
}
