package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

type LoginHandler struct {
	authService service.Authentication
	cookies     CookieFactory
	clientIPs   ClientIPResolver
}

func NewLoginHandler(authService service.Authentication, cookies CookieFactory, clientIPs ClientIPResolver) LoginHandler {
	return LoginHandler{
		authService: authService,
		cookies:     cookies,
		clientIPs:   clientIPs,
	}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return "/api/admin/auth/login"
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[loginIn](), nil)
	if err != nil {
		return err
	}

	token, err := h.authService.Login(r.Context(), in.Username, in.Password, h.clientIPs.Resolve(r))
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		return commonhttp.InternalError("Admin auth is not configured")
	case errors.Is(err, service.ErrInvalidInput):
		return commonhttp.BadRequest("Invalid body", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return commonhttp.BadRequest("Invalid credentials", nil)
	case errors.Is(err, service.ErrTooManyAttempts):
		return commonhttp.TooManyRequests("Too many login attempts, try again later")
	case err != nil:
		return err
	}

	w.SetCookie(h.cookies.Session(token))
	w.SetJSONBody(commonhttp.Data(loginOut{LoggedIn: true}))
	return nil
}

type (
	loginIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	loginOut struct {
		LoggedIn bool `json:"loggedIn"`
	}
)
