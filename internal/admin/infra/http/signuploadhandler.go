package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/upload"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

type SignUploadHandler struct {
	signer upload.Signer
}

func NewSignUploadHandler(signer upload.Signer) SignUploadHandler {
	return SignUploadHandler{signer: signer}
}

func (h SignUploadHandler) Method() string {
	return http.MethodPost
}

func (h SignUploadHandler) Path() string {
	return "/api/admin/cloudinary/sign"
}

func (h SignUploadHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	var in signUploadIn
	if body := pkghttp.ParseRequestOptional(r, pkghttp.JSONBody[signUploadIn](), nil); body != nil {
		in = *body
	}

	sig, err := h.signer.Sign(r.Context(), in.ResourceType, in.Folder)
	if errors.Is(err, upload.ErrUploadNotConfigured) {
		return commonhttp.BadRequest("Cloudinary is not configured", nil)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(signUploadOut{
		CloudName:    sig.CloudName,
		APIKey:       sig.APIKey,
		Folder:       sig.Folder,
		Timestamp:    sig.Timestamp,
		Signature:    sig.Signature,
		ResourceType: sig.ResourceType,
	}))
	return nil
}

type (
	signUploadIn struct {
		ResourceType string `json:"resourceType"`
		Folder       string `json:"folder"`
	}

	signUploadOut struct {
		CloudName    string `json:"cloudName"`
		APIKey       string `json:"apiKey"`
		Folder       string `json:"folder"`
		Timestamp    int64  `json:"timestamp"`
		Signature    string `json:"signature"`
		ResourceType string `json:"resourceType"`
	}
)
