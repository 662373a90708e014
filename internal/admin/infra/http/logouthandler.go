package http

import (
	"net/http"

	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

type LogoutHandler struct {
	cookies CookieFactory
}

func NewLogoutHandler(cookies CookieFactory) LogoutHandler {
	return LogoutHandler{cookies: cookies}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/api/admin/auth/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetCookie(h.cookies.ExpiredSession())
	w.SetJSONBody(commonhttp.Data(logoutOut{LoggedOut: true}))
	return nil
}

type logoutOut struct {
	LoggedOut bool `json:"loggedOut"`
}
