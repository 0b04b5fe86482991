package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseValidateGt parses the named query parameter as an int32 and requires
// it to be strictly greater than min. On failure it writes a 400 response
// and returns false.
func ParseValidateGt(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, min int64) (int32, bool) {
	return parseBounded(r, w, logger, key, min, false)
}

// ParseValidateGte is like ParseValidateGt but allows the value to equal min.
func ParseValidateGte(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, min int64) (int32, bool) {
	return parseBounded(r, w, logger, key, min, true)
}

func parseBounded(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, min int64, inclusive bool) (int32, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("%s url parameter is required", key))
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < min || (!inclusive && value == min) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, raw))
		return 0, false
	}
	return int32(value), true
}
