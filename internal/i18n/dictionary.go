// Package i18n loads the per-locale interface strings.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/vaultpass/passgen/internal/locale"
	"gopkg.in/yaml.v3"
)

//go:embed dictionaries/*.yaml
var files embed.FS

var ErrUnknownKey = errors.New("unknown dictionary key")

// Dictionary holds the display strings of one locale.
type Dictionary struct {
	Title    string   `yaml:"title" json:"title"`
	Meta     Meta     `yaml:"meta" json:"meta"`
	Buttons  Buttons  `yaml:"buttons" json:"buttons"`
	Settings Settings `yaml:"settings" json:"settings"`
	Strength Strength `yaml:"strength" json:"strength"`
	Messages Messages `yaml:"messages" json:"messages"`
}

type Meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Keywords    string `yaml:"keywords" json:"keywords"`
}

type Buttons struct {
	Generate string `yaml:"generate" json:"generate"`
	Copy     string `yaml:"copy" json:"copy"`
	Copied   string `yaml:"copied" json:"copied"`
}

type Settings struct {
	Length       string `yaml:"length" json:"length"`
	Symbols      string `yaml:"symbols" json:"symbols"`
	Uppercase    string `yaml:"uppercase" json:"uppercase"`
	Lowercase    string `yaml:"lowercase" json:"lowercase"`
	Numbers      string `yaml:"numbers" json:"numbers"`
	SpecialChars string `yaml:"specialChars" json:"specialChars"`
	Readable     string `yaml:"readable" json:"readable"`
}

type Strength struct {
	Weak   string `yaml:"weak" json:"weak"`
	Medium string `yaml:"medium" json:"medium"`
	Strong string `yaml:"strong" json:"strong"`
	Label  string `yaml:"label" json:"label"`
}

type Messages struct {
	CopySuccess     string `yaml:"copySuccess" json:"copySuccess"`
	CopyDescription string `yaml:"copyDescription" json:"copyDescription"`
	Error           string `yaml:"error" json:"error"`
	GenerateFirst   string `yaml:"generateFirst" json:"generateFirst"`
	CopyFailed      string `yaml:"copyFailed" json:"copyFailed"`
	EmptyPool       string `yaml:"emptyPool" json:"emptyPool"`
	LengthRange     string `yaml:"lengthRange" json:"lengthRange"`
}

// StrengthText returns the translated label for a weak/medium/strong label.
func (d *Dictionary) StrengthText(label string) string {
	switch label {
	case "weak":
		return d.Strength.Weak
	case "medium":
		return d.Strength.Medium
	case "strong":
		return d.Strength.Strong
	}
	return ""
}

// Catalog is an immutable set of dictionaries keyed by locale code.
type Catalog struct {
	dicts    map[string]*Dictionary
	fallback string
}

// Load parses the embedded dictionary of every supported locale.
func Load() (*Catalog, error) {
	c := &Catalog{
		dicts:    make(map[string]*Dictionary, len(locale.Codes())),
		fallback: locale.Default,
	}

	for _, code := range locale.Codes() {
		data, err := files.ReadFile(path.Join("dictionaries", code+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("reading dictionary %s: %w", code, err)
		}

		var d Dictionary
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing dictionary %s: %w", code, err)
		}
		if missing := MissingKeys(&d); len(missing) > 0 {
			return nil, fmt.Errorf("dictionary %s is missing %s", code, strings.Join(missing, ", "))
		}
		c.dicts[code] = &d
	}

	return c, nil
}

// MustLoad is like Load but panics on error. The dictionaries are compiled
// into the binary, so a failure is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the dictionary for code, or the default locale's dictionary
// when code is not supported.
func (c *Catalog) Get(code string) *Dictionary {
	if d, ok := c.dicts[code]; ok {
		return d
	}
	return c.dicts[c.fallback]
}

// Has reports whether the catalog holds a dictionary for code.
func (c *Catalog) Has(code string) bool {
	_, ok := c.dicts[code]
	return ok
}

// Lookup resolves a dotted key such as "strength.weak" in the dictionary for
// code, using the same fallback as Get.
func (c *Catalog) Lookup(code, key string) (string, error) {
	v := reflect.ValueOf(c.Get(code)).Elem()
	for _, part := range strings.Split(key, ".") {
		if v.Kind() != reflect.Struct {
			return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		field, ok := fieldByTag(v, part)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		v = field
	}
	if v.Kind() != reflect.String {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return v.String(), nil
}

// MissingKeys lists the dotted keys of d that are empty.
func MissingKeys(d *Dictionary) []string {
	var missing []string
	walk(reflect.ValueOf(d).Elem(), "", func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	})
	return missing
}

// Keys lists every dotted key a dictionary defines.
func Keys() []string {
	var keys []string
	walk(reflect.ValueOf(&Dictionary{}).Elem(), "", func(key, _ string) {
		keys = append(keys, key)
	})
	return keys
}

func walk(v reflect.Value, prefix string, fn func(key, value string)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := yamlName(t.Field(i))
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Struct:
			walk(f, key, fn)
		case reflect.String:
			fn(key, f.String())
		}
	}
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if yamlName(t.Field(i)) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
