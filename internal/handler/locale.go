package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/locale"
)

// LocaleHandler serves the locale table and the per-locale dictionaries.
type LocaleHandler struct {
	dicts *i18n.Catalog
}

// NewLocaleHandler creates a new LocaleHandler.
func NewLocaleHandler(dicts *i18n.Catalog) *LocaleHandler {
	return &LocaleHandler{dicts: dicts}
}

// HandleList handles GET /api/v1/locales requests.
func (h *LocaleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": locale.Default,
		"locales": locale.All(),
	})
}

// HandleDictionary handles GET /api/v1/dictionaries/{lang} requests.
func (h *LocaleHandler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !h.dicts.Has(lang) {
		writeJSON(w, http.StatusNotFound, errorResponse("unsupported locale"))
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	writeJSON(w, http.StatusOK, h.dicts.Get(lang))
}
