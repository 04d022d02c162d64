package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/locale"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/page.html"))

var structuredData = map[string]any{
	"@context":            "https://schema.org",
	"@type":               "SoftwareApplication",
	"name":                "Password Generator",
	"description":         "Online tool for creating secure passwords with customizable parameters",
	"applicationCategory": "SecurityApplication",
	"operatingSystem":     "Web Browser",
	"offers": map[string]any{
		"@type":         "Offer",
		"price":         "0",
		"priceCurrency": "USD",
	},
	"featureList": []string{
		"Password length customization",
		"Character type selection",
		"Password strength checking",
		"Quick copying",
		"Readable passwords",
	},
}

type localeLink struct {
	locale.Info
	URL     string
	Current bool
}

type pageData struct {
	Lang            string
	Dir             locale.Direction
	Dict            *i18n.Dictionary
	Locales         []localeLink
	Options         crypto.GeneratorOptions
	MinLength       int
	MaxLength       int
	Password        string
	StrengthLabel   string
	StrengthText    string
	StrengthPercent int
	Error           string
	JSONLD          map[string]any
}

// PageHandler renders the localized generator page.
type PageHandler struct {
	generator *crypto.Generator
	dicts     *i18n.Catalog
}

// NewPageHandler creates a new PageHandler. A nil generator uses crypto/rand.
func NewPageHandler(gen *crypto.Generator, dicts *i18n.Catalog) *PageHandler {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &PageHandler{generator: gen, dicts: dicts}
}

// Mount registers the page under /{lang}, with and without a trailing slash.
func (h *PageHandler) Mount(r chi.Router) {
	r.Get("/{lang}", h.HandlePage)
	r.Get("/{lang}/", h.HandlePage)
}

// HandlePage handles GET /{lang}. Every change to the form resubmits it, and
// each request regenerates the password from the submitted options.
func (h *PageHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")
	if !locale.Supported(lang) {
		http.NotFound(w, r)
		return
	}
	dict := h.dicts.Get(lang)
	opts := optionsFromQuery(r.URL.Query())

	data := pageData{
		Lang:      lang,
		Dir:       locale.Dir(lang),
		Dict:      dict,
		Locales:   localeLinks(lang, r.URL.Path, r.URL.RawQuery),
		Options:   opts,
		MinLength: crypto.MinLength,
		MaxLength: crypto.MaxLength,
		JSONLD:    structuredData,
	}

	result, err := h.generator.Generate(opts)
	switch {
	case err == nil:
		data.Password = result.Password
		data.StrengthLabel = string(result.Strength.Label)
		data.StrengthText = dict.StrengthText(data.StrengthLabel)
		data.StrengthPercent = result.Strength.Score * 100 / crypto.MaxStrengthScore
	case errors.Is(err, crypto.ErrEmptyPool):
		data.Error = dict.Messages.EmptyPool
	case errors.Is(err, crypto.ErrLengthTooShort), errors.Is(err, crypto.ErrLengthTooLong):
		data.Error = dict.Messages.LengthRange
	default:
		internalError(w, r, "render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, data); err != nil {
		internalError(w, r, "render page", err)
	}
}

// optionsFromQuery reads generator options from the page form. Before the
// form has been submitted the defaults apply; afterwards an absent checkbox
// means the class is off.
func optionsFromQuery(q url.Values) crypto.GeneratorOptions {
	opts := crypto.DefaultOptions()
	if q.Get("submitted") != "" {
		opts.Uppercase = q.Has("uppercase")
		opts.Lowercase = q.Has("lowercase")
		opts.Numbers = q.Has("numbers")
		opts.Symbols = q.Has("symbols")
		opts.Readable = q.Has("readable")
	}
	if n, err := strconv.Atoi(q.Get("length")); err == nil {
		opts.Length = n
	}
	return opts
}

func localeLinks(current, path, rawQuery string) []localeLink {
	infos := locale.All()
	links := make([]localeLink, len(infos))
	for i, info := range infos {
		u := locale.SwitchPath(path, current, info.Code)
		if rawQuery != "" {
			u += "?" + rawQuery
		}
		links[i] = localeLink{Info: info, URL: u, Current: info.Code == current}
	}
	return links
}
