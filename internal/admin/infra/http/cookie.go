package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
)

const SessionCookieName = "admin_session"

type CookieFactory struct {
	secure bool
}

func NewCookieFactory(secure bool) CookieFactory {
	return CookieFactory{secure: secure}
}

func (f CookieFactory) Session(token service.SessionTokenData) *http.Cookie {
	return f.cookie(token.Token, token.ValidTill)
}

func (f CookieFactory) ExpiredSession() *http.Cookie {
	return f.cookie("", time.Unix(0, 0))
}

func (f CookieFactory) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
