package helpers

import (
	"net/http"
	"strconv"
)

// DefaultPage is used when the page query parameter is missing or invalid.
const DefaultPage = 1

// ParsePage reads the 1-based page number from the request query string.
// Invalid or missing values fall back to DefaultPage.
func ParsePage(r *http.Request) int {
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			return v
		}
	}
	return DefaultPage
}

// ParseBool reads a boolean query parameter, returning def when it is missing or malformed.
func ParseBool(r *http.Request, name string, def bool) bool {
	if s := r.URL.Query().Get(name); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			return v
		}
	}
	return def
}
