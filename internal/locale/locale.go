// Package locale holds the table of supported interface languages and the
// rules for picking one from a request.
package locale

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Default is used when nothing in the request matches a supported locale.
const Default = "en"

// Info describes how a locale is presented in the language switcher.
type Info struct {
	Code string    `json:"code"`
	Name string    `json:"name"`
	Flag string    `json:"flag"`
	Dir  Direction `json:"dir"`
}

var table = []Info{
	{Code: "zh", Name: "中文", Flag: "🇨🇳", Dir: LTR},
	{Code: "ar", Name: "العربية", Flag: "🇸🇦", Dir: RTL},
	{Code: "hi", Name: "हिन्दी", Flag: "🇮🇳", Dir: LTR},
	{Code: "en", Name: "English", Flag: "🇺🇸", Dir: LTR},
	{Code: "es", Name: "Español", Flag: "🇪🇸", Dir: LTR},
	{Code: "bn", Name: "বাংলা", Flag: "🇧🇩", Dir: LTR},
	{Code: "pt", Name: "Português", Flag: "🇧🇷", Dir: LTR},
	{Code: "ru", Name: "Русский", Flag: "🇷🇺", Dir: LTR},
	{Code: "ja", Name: "日本語", Flag: "🇯🇵", Dir: LTR},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪", Dir: LTR},
	{Code: "ko", Name: "한국어", Flag: "🇰🇷", Dir: LTR},
	{Code: "fr", Name: "Français", Flag: "🇫🇷", Dir: LTR},
	{Code: "jv", Name: "Javanese", Flag: "🇮🇩", Dir: LTR},
	{Code: "it", Name: "Italiano", Flag: "🇮🇹", Dir: LTR},
	{Code: "tr", Name: "Türkçe", Flag: "🇹🇷", Dir: LTR},
}

var byCode = func() map[string]Info {
	m := make(map[string]Info, len(table))
	for _, info := range table {
		m[info.Code] = info
	}
	return m
}()

// All returns the supported locales in display order.
func All() []Info {
	return slices.Clone(table)
}

// Codes returns the supported locale codes in display order.
func Codes() []string {
	codes := make([]string, len(table))
	for i, info := range table {
		codes[i] = info.Code
	}
	return codes
}

// Supported reports whether code is a supported locale.
func Supported(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Lookup returns the table entry for code.
func Lookup(code string) (Info, bool) {
	info, ok := byCode[code]
	return info, ok
}

// Dir returns the text direction for code, LTR for unknown codes.
func Dir(code string) Direction {
	if info, ok := byCode[code]; ok {
		return info.Dir
	}
	return LTR
}

// Negotiate picks a supported locale from an Accept-Language header. Tags
// are tried in preference order; each matches either exactly or by its
// primary language subtag, so en-US resolves to en.
func Negotiate(acceptLanguage string) string {
	return NegotiateOr(acceptLanguage, Default)
}

// NegotiateOr is Negotiate with a caller-chosen fallback locale.
func NegotiateOr(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return fallback
	}

	for _, candidate := range preferred(acceptLanguage) {
		if Supported(candidate) {
			return candidate
		}
		short, _, _ := strings.Cut(candidate, "-")
		if Supported(short) {
			return short
		}
	}
	return fallback
}

// preferred returns the lowercased tags of an Accept-Language header, highest
// quality first. Headers x/text cannot parse fall back to their listed order.
func preferred(acceptLanguage string) []string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil {
		out := make([]string, 0, len(tags))
		for _, tag := range tags {
			out = append(out, strings.ToLower(tag.String()))
		}
		return out
	}

	var out []string
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// FromPath returns the locale that prefixes path, if any. A path carries a
// locale when it is exactly /<code> or starts with /<code>/.
func FromPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, "/")
	if !ok {
		return "", false
	}
	code, _, _ := strings.Cut(rest, "/")
	if Supported(code) {
		return code, true
	}
	return "", false
}

// SwitchPath rewrites a locale-prefixed path to use another locale, keeping
// the remainder of the path.
func SwitchPath(path, from, to string) string {
	rest := strings.TrimPrefix(path, "/"+from)
	if rest == "" {
		rest = "/"
	}
	if rest == "/" {
		return "/" + to
	}
	return "/" + to + rest
}
