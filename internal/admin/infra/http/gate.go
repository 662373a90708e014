package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/observability"
)

const (
	LoginPagePath = "/admin/login"

	authAPIPrefix  = "/api/admin/auth/"
	nextQueryParam = "next"
)

var (
	isAdminPath   = pkghttp.PathPrefixMatcher("/admin", "/api/admin")
	isAuthAPIPath = pkghttp.PathPrefixMatcher(authAPIPrefix)
)

// NewGate redirects requests to admin paths without a valid session to the login page.
// It must wrap the whole router to see requests before route matching.
func NewGate(
	authService service.Authentication,
	observer observability.Observer,
) pkghttp.Middleware {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !isAdminPath(path) || isLoginPage(path) || isAuthAPIPath(path) {
				handler.ServeHTTP(w, r)
				return
			}

			token, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](SessionCookieName), nil)
			if err != nil || token == "" {
				redirectToLogin(w, r)
				return
			}

			subject, ok := authService.Authenticate(r.Context(), token)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			ctx := observer.WithField(r.Context(), observability.FieldAdminSubject, subject)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isLoginPage(path string) bool {
	return strings.TrimSuffix(path, "/") == LoginPagePath
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	query := target.Query()
	query.Set(nextQueryParam, r.URL.Path)

	target.Path = LoginPagePath
	target.RawPath = ""
	target.RawQuery = query.Encode()

	http.Redirect(w, r, target.RequestURI(), http.StatusTemporaryRedirect)
}
