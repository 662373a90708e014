package http

import (
	"net/http"

	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

const (
	apiName    = "Online Music Limited API"
	apiVersion = "1.0.0"

	copyrightNotice = "No copyrighted music is distributed. No artist imitation. " +
		"All tracks are original AI-generated, royalty-free, instrumental audio for educational use."
)

type (
	IndexHandler  struct{ out indexOut }
	ConfigHandler struct{}
)

type (
	indexOut struct {
		Name      string                `json:"name"`
		Version   string                `json:"version"`
		Notes     map[string]string     `json:"notes"`
		PublicAPI map[string][]routeOut `json:"publicApi"`
		AdminAPI  map[string][]routeOut `json:"adminApi"`
	}

	routeOut struct {
		Method  string            `json:"method"`
		Path    string            `json:"path"`
		Query   map[string]string `json:"query,omitempty"`
		Params  map[string]string `json:"params,omitempty"`
		Body    map[string]string `json:"body,omitempty"`
		Returns string            `json:"returns,omitempty"`
	}

	configOut struct {
		AIDisclaimer    string `json:"aiDisclaimer"`
		CopyrightNotice string `json:"copyrightNotice"`
	}
)

func NewIndexHandler() IndexHandler {
	return IndexHandler{out: indexOut{
		Name:    apiName,
		Version: apiVersion,
		Notes: map[string]string{
			"compliance": "No copyrighted music. No artist imitation. Tracks are AI-generated, royalty-free, instrumental. " +
				"Learning content is text-based educational material.",
			"auth": "Public API has no auth. Admin endpoints require admin login session (ADMIN_USER/ADMIN_PASS) " +
				"and are intended for internal content management only.",
			"cloudinary": "Admin UI uploads category images and track audio directly to Cloudinary " +
				"using a server-side signed upload helper. Configure CLOUDINARY_* env vars.",
		},
		PublicAPI: publicRoutes(),
		AdminAPI:  adminRoutes(),
	}}
}

func (h IndexHandler) Method() string { return http.MethodGet }

func (h IndexHandler) Path() string { return "/api" }

func (h IndexHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetJSONBody(commonhttp.Data(h.out))
	return nil
}

func NewConfigHandler() ConfigHandler {
	return ConfigHandler{}
}

func (h ConfigHandler) Method() string { return http.MethodGet }

func (h ConfigHandler) Path() string { return "/api/config" }

func (h ConfigHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetJSONBody(commonhttp.Data(configOut{
		AIDisclaimer:    AIDisclaimer,
		CopyrightNotice: copyrightNotice,
	}))
	return nil
}

func publicRoutes() map[string][]routeOut {
	return map[string][]routeOut{
		"health": {{Method: http.MethodGet, Path: "/healthz"}},
		"config": {{Method: http.MethodGet, Path: "/api/config"}},
		"learning": {
			{
				Method:  http.MethodGet,
				Path:    "/api/learning/categories",
				Returns: "Active categories ordered by order (includes imageUrl).",
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/learning/articles",
				Query:   map[string]string{"category": "slug (required)"},
				Returns: "Published article summaries by category.",
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/learning/article/{id}",
				Params:  map[string]string{"id": "UUID"},
				Returns: "Full published article content.",
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/learning/search",
				Query:   map[string]string{"q": "keyword (required)"},
				Returns: "Search published articles by title or tags.",
			},
		},
		"music": {
			{
				Method: http.MethodGet,
				Path:   "/api/music/ai",
				Query: map[string]string{
					"mood":  "relax|focus|sleep (optional)",
					"genre": "ambient|lofi|piano|cinematic (optional)",
				},
				Returns: "AI tracks. Response includes disclaimer: '" + AIDisclaimer + "'",
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/music/play",
				Body:    map[string]string{"trackId": "UUID", "deviceId": "string"},
				Returns: "Anonymous analytics event recorded (no personal data).",
			},
		},
	}
}

func adminRoutes() map[string][]routeOut {
	return map[string][]routeOut{
		"auth": {
			{Method: http.MethodPost, Path: "/api/admin/auth/login", Body: map[string]string{"username": "string", "password": "string"}},
			{Method: http.MethodPost, Path: "/api/admin/auth/logout"},
		},
		"cloudinary": {
			{
				Method:  http.MethodPost,
				Path:    "/api/admin/cloudinary/sign",
				Body:    map[string]string{"resourceType": "image|video", "folder": "string (optional)"},
				Returns: "Signed upload params for direct-to-Cloudinary upload from Admin UI.",
			},
		},
		"categories": crudRoutes(adminCategoriesPath, nil, map[string]string{
			"title":       "string",
			"slug":        "string",
			"description": "string",
			"imageUrl":    "string (optional)",
			"order":       "number",
			"isActive":    "boolean",
		}),
		"articles": crudRoutes(adminArticlesPath, map[string]string{
			"category":  "slug (optional)",
			"published": "true|false (optional)",
			"q":         "keyword (optional)",
		}, map[string]string{
			"categorySlug": "string",
			"title":        "string",
			"slug":         "string",
			"content":      "string",
			"summary":      "string",
			"readingTime":  "number",
			"level":        "beginner|intermediate|advanced",
			"tags":         "string[]",
			"published":    "boolean",
		}),
		"tracks": crudRoutes(adminTracksPath, map[string]string{
			"mood":   "relax|focus|sleep (optional)",
			"genre":  "ambient|lofi|piano|cinematic (optional)",
			"isFree": "true|false (optional)",
		}, map[string]string{
			"title":    "string",
			"mood":     "relax|focus|sleep",
			"genre":    "ambient|lofi|piano|cinematic",
			"duration": "number",
			"audioUrl": "string",
			"isFree":   "boolean",
		}),
	}
}

func crudRoutes(path string, query, body map[string]string) []routeOut {
	itemPath := path + "/{id}"
	return []routeOut{
		{Method: http.MethodGet, Path: path, Query: query},
		{Method: http.MethodPost, Path: path, Body: body},
		{Method: http.MethodGet, Path: itemPath},
		{Method: http.MethodPatch, Path: itemPath},
		{Method: http.MethodDelete, Path: itemPath},
	}
}
