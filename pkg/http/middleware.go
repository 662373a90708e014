package http

import (
	"net/http"
	"strings"
)

// PathPrefixMatcher matches whole path segments: "/admin" matches "/admin" and "/admin/x", not "/administrator".
// A prefix ending with "/" matches only paths strictly under it.
func PathPrefixMatcher(prefixes ...string) func(path string) bool {
	return func(path string) bool {
		for _, prefix := range prefixes {
			if strings.HasSuffix(prefix, "/") {
				if strings.HasPrefix(path, prefix) {
					return true
				}
				continue
			}
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
		return false
	}
}

func isExcludedPath(r *http.Request, excludedPaths []string) bool {
	for _, excludedPath := range excludedPaths {
		if excludedPath == r.URL.Path {
			return true
		}
	}
	return false
}
