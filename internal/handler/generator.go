package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
	dicts   *i18n.Catalog
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, dicts *i18n.Catalog) *GeneratorHandler {
	return &GeneratorHandler{service: svc, dicts: dicts}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates with the default options. Without an explicit locale, signed-in
// users get strength text and errors in their saved locale.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}
	req.Locale = requestLocale(r, req.Locale)

	resp, err := h.service.Generate(req)
	if err != nil {
		if isGeneratorInputError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(h.localizedError(err, req.Locale)))
			return
		}
		internalError(w, r, "generate", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Locale = requestLocale(r, req.Locale)
	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// requestLocale prefers the locale named in the body over the session's.
func requestLocale(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return middleware.LocaleFromContext(r.Context())
}

func isGeneratorInputError(err error) bool {
	return errors.Is(err, crypto.ErrEmptyPool) ||
		errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong)
}

// localizedError translates generator input errors when the client asked for
// a locale; otherwise the English error text is returned.
func (h *GeneratorHandler) localizedError(err error, locale string) string {
	if locale == "" || h.dicts == nil {
		return err.Error()
	}
	d := h.dicts.Get(locale)
	if errors.Is(err, crypto.ErrEmptyPool) {
		return d.Messages.EmptyPool
	}
	return d.Messages.LengthRange
}

