package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// errorEnvelope is the body of every error response.
type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorEnvelope{Error: errorJSON(err)})
}

// errorJSON renders err the way the CLI's --json output does. Errors
// without a code are reported as internal.
func errorJSON(err error) json.RawMessage {
	var he *errors.HyperFlexError
	if !stderrors.As(err, &he) {
		he = errors.Newf(errors.CategoryRuntime, "internal error").WithDetail(err.Error())
	}
	return json.RawMessage(he.FormatJSON())
}

// statusFor maps build and decode failures to client errors.
func statusFor(err error) int {
	var he *errors.HyperFlexError
	if stderrors.As(err, &he) && he.Category == errors.CategoryValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
