package utils

import (
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/juliocloud/s206-projeto-final/internal/shared/apperror"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

const (
	MsgInvalidBody = "invalid body"
	MsgInvalidID   = "invalid id"
)

// ErrInvalidID is returned by ParseID for non-numeric or non-positive ids.
var ErrInvalidID = apperror.Validation(MsgInvalidID)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// WriteAppError maps err to a status and caller-facing message. Internal
// failures are logged with the request's logger and reported generically.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	WriteError(w, apperror.Status(kind), apperror.MessageOf(err))
}

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched so field validation reports what is missing; malformed JSON is a
// validation error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.Validation(MsgInvalidBody).Wrap(err)
	}
	return nil
}

// ParseID parses a positive int64 path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// IsValidEmail performs a light syntactic check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
