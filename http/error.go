package http

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/subextract"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	subextract.EFORBIDDEN:   http.StatusForbidden,
	subextract.EINVALID:     http.StatusBadRequest,
	subextract.ENOTFOUND:    http.StatusNotFound,
	subextract.EUNAVAILABLE: http.StatusServiceUnavailable,
	subextract.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err as a plain-text response with the matching status code.
// Internal errors are logged.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := subextract.ErrorCode(err), subextract.ErrorMessage(err)
	if code == subextract.EINTERNAL {
		logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	http.Error(w, message, ErrorStatusCode(code))
}
