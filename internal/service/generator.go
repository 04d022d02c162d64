package service

import (
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	dicts     *i18n.Catalog
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses
// crypto/rand.
func NewGeneratorService(gen *crypto.Generator, dicts *i18n.Catalog) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{generator: gen, dicts: dicts}
}

// Options resolves a request into generator options. Missing classes default
// to enabled, readable mode to disabled, and a zero length to the default.
func Options(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Readable:  boolOrDefault(req.Readable, false),
	}
	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}
	return opts
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	result, err := s.generator.Generate(Options(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: result.Password,
		Length:   len(result.Password),
		Strength: s.strengthResponse(result.Strength, req.Locale),
	}, nil
}

// Strength scores an existing password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	return s.strengthResponse(crypto.ScoreStrength(req.Password), req.Locale)
}

func (s *GeneratorService) strengthResponse(st crypto.Strength, locale string) model.StrengthResponse {
	resp := model.StrengthResponse{
		Score:    st.Score,
		MaxScore: crypto.MaxStrengthScore,
		Label:    string(st.Label),
	}
	if locale != "" && s.dicts != nil {
		resp.Text = s.dicts.Get(locale).StrengthText(resp.Label)
	}
	return resp
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
