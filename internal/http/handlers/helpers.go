package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Emannuh254/server-jobs/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid JSON body", err)
	}
	return nil
}

// idFromPath extracts the numeric id segment, counting from the end:
// depth 1 means the last segment.
func idFromPath(r *http.Request, depth int) (int64, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < depth {
		return 0, common.NewError(common.CodeValidation, "invalid job ID", nil)
	}
	id, err := strconv.ParseInt(parts[len(parts)-depth], 10, 64)
	if err != nil || id < 1 {
		return 0, common.NewError(common.CodeValidation, "invalid job ID", err)
	}
	return id, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
