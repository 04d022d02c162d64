package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
)

func newPageRouter(gen *crypto.Generator) http.Handler {
	r := chi.NewRouter()
	NewPageHandler(gen, i18n.MustLoad()).Mount(r)
	return r
}

func getPage(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandlePage(t *testing.T) {
	zero := crypto.NewGenerator(bytes.NewReader(make([]byte, 1024)))
	rec := getPage(t, newPageRouter(zero), "/en")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<html lang="en" dir="ltr">`,
		"<title>Password Generator - Create Strong Secure Passwords</title>",
		strings.Repeat("A", 12),
		`hreflang="ar"`,
		"SoftwareApplication",
		"Uppercase letters (A-Z)",
		"Copied!</strong> <span>Password copied to clipboard</span>",
		`data-failed="Failed to copy password"`,
		`data-empty="Generate a password first"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHandlePage_TrailingSlash(t *testing.T) {
	h := newPageRouter(nil)
	for _, target := range []string{"/de", "/de/", "/de/?length=8"} {
		rec := getPage(t, h, target)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", target, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `<html lang="de"`) {
			t.Errorf("GET %s: expected german page", target)
		}
	}
	if rec := getPage(t, h, "/xx/"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /xx/: expected 404, got %d", rec.Code)
	}
}

func TestHandlePage_RTL(t *testing.T) {
	rec := getPage(t, newPageRouter(nil), "/ar")
	if !strings.Contains(rec.Body.String(), `dir="rtl"`) {
		t.Error("arabic page should be rtl")
	}
}

func TestHandlePage_Unsupported(t *testing.T) {
	if rec := getPage(t, newPageRouter(nil), "/xx"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandlePage_EmptyPool(t *testing.T) {
	rec := getPage(t, newPageRouter(nil), "/fr?submitted=1&length=12")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sélectionnez au moins un type de caractère") {
		t.Error("expected localized empty pool message")
	}
	if strings.Contains(rec.Body.String(), `id="password"`) {
		t.Error("no password should be rendered for an empty pool")
	}
}

func TestHandlePage_LengthOutOfRange(t *testing.T) {
	rec := getPage(t, newPageRouter(nil), "/en?length=99")
	if !strings.Contains(rec.Body.String(), "Length must be between 4 and 50 characters") {
		t.Error("expected length range message")
	}
}

func TestOptionsFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  crypto.GeneratorOptions
	}{
		{"first load", "", crypto.DefaultOptions()},
		{"length only", "length=20", crypto.GeneratorOptions{Length: 20, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}},
		{"submitted form", "submitted=1&length=8&numbers=on&readable=on", crypto.GeneratorOptions{Length: 8, Numbers: true, Readable: true}},
		{"bad length ignored", "length=abc", crypto.DefaultOptions()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery() error: %v", err)
			}
			if got := optionsFromQuery(q); got != tt.want {
				t.Errorf("optionsFromQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLocaleLinks(t *testing.T) {
	links := localeLinks("en", "/en", "length=20")
	if len(links) != 15 {
		t.Fatalf("expected 15 links, got %d", len(links))
	}
	for _, l := range links {
		if l.Code == "de" && l.URL != "/de?length=20" {
			t.Errorf("unexpected de link %q", l.URL)
		}
		if l.Current != (l.Code == "en") {
			t.Errorf("unexpected Current=%v for %q", l.Current, l.Code)
		}
	}
}
