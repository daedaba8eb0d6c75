package helpers

import (
	"net/http"
	"strings"
)

// EvaluatePreconditions checks If-Match and If-None-Match against the current
// entity tag. It returns 0 when the request should be served normally,
// http.StatusNotModified for a GET or HEAD whose cached copy is still valid,
// or http.StatusPreconditionFailed otherwise.
func EvaluatePreconditions(r *http.Request, etag string) int {
	if values := r.Header.Values("If-Match"); len(values) > 0 {
		if !matchesAny(values, etag, false) {
			return http.StatusPreconditionFailed
		}
	}
	if values := r.Header.Values("If-None-Match"); len(values) > 0 {
		if matchesAny(values, etag, true) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				return http.StatusNotModified
			}
			return http.StatusPreconditionFailed
		}
	}
	return 0
}

// matchesAny reports whether any tag listed in the header values matches etag.
// Weak comparison ignores the W/ prefix; strong comparison never matches weak tags.
func matchesAny(values []string, etag string, weak bool) bool {
	current, currentWeak := splitWeak(etag)
	if !weak && currentWeak {
		return false
	}
	for _, v := range values {
		for _, candidate := range strings.Split(v, ",") {
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if candidate == "*" {
				return true
			}
			tag, isWeak := splitWeak(candidate)
			if !weak && isWeak {
				continue
			}
			if tag == current {
				return true
			}
		}
	}
	return false
}

func splitWeak(tag string) (string, bool) {
	if strings.HasPrefix(tag, "W/") {
		return tag[2:], true
	}
	return tag, false
}
