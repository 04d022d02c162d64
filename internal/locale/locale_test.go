package locale

import "testing"

func TestTable(t *testing.T) {
	codes := Codes()
	if len(codes) != 15 {
		t.Fatalf("expected 15 locales, got %d", len(codes))
	}
	if codes[0] != "zh" || codes[len(codes)-1] != "tr" {
		t.Errorf("unexpected locale order: %v", codes)
	}
	if !Supported(Default) {
		t.Errorf("default locale %q is not supported", Default)
	}

	seen := make(map[string]bool)
	for _, info := range All() {
		if seen[info.Code] {
			t.Errorf("duplicate locale %q", info.Code)
		}
		seen[info.Code] = true
		if info.Name == "" || info.Flag == "" {
			t.Errorf("locale %q missing name or flag", info.Code)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Code = "xx"
	if Codes()[0] != "zh" {
		t.Error("mutating All() result changed the locale table")
	}
}

func TestDir(t *testing.T) {
	for _, code := range Codes() {
		want := LTR
		if code == "ar" {
			want = RTL
		}
		if got := Dir(code); got != want {
			t.Errorf("Dir(%q) = %q, want %q", code, got, want)
		}
	}
	if got := Dir("xx"); got != LTR {
		t.Errorf("Dir(unknown) = %q, want %q", got, LTR)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "de", "de"},
		{"region falls back to language", "pt-BR", "pt"},
		{"case insensitive", "RU-ru", "ru"},
		{"first supported wins", "xx, fr, de", "fr"},
		{"quality order", "de;q=0.5, ja", "ja"},
		{"typical browser header", "fr-CH, fr;q=0.9, en;q=0.8, *;q=0.5", "fr"},
		{"script subtag", "zh-Hant-TW", "zh"},
		{"nothing supported", "sv, nl;q=0.8", "en"},
		{"malformed quality", "es;q=abc", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Negotiate(tt.header); got != tt.want {
				t.Errorf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/en", "en", true},
		{"/en/", "en", true},
		{"/ar/about", "ar", true},
		{"/", "", false},
		{"", "", false},
		{"/english", "", false},
		{"/xx/en", "", false},
		{"/api/v1/generate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FromPath(tt.path)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FromPath(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSwitchPath(t *testing.T) {
	tests := []struct {
		path, from, to, want string
	}{
		{"/en", "en", "de", "/de"},
		{"/en/", "en", "de", "/de"},
		{"/en/about", "en", "ja", "/ja/about"},
	}

	for _, tt := range tests {
		if got := SwitchPath(tt.path, tt.from, tt.to); got != tt.want {
			t.Errorf("SwitchPath(%q, %q, %q) = %q, want %q", tt.path, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNegotiateOr(t *testing.T) {
	if got := NegotiateOr("", "ru"); got != "ru" {
		t.Errorf("NegotiateOr(empty) = %q, want ru", got)
	}
	if got := NegotiateOr("sw, nl;q=0.5", "ru"); got != "ru" {
		t.Errorf("NegotiateOr(unsupported) = %q, want ru", got)
	}
	if got := NegotiateOr("de-AT", "ru"); got != "de" {
		t.Errorf("NegotiateOr(de-AT) = %q, want de", got)
	}
}
