package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Readable variants drop glyphs that are easy to confuse when copied by hand.
	readableUppercaseChars = "ABCDEFGHJKMNPQRSTUVWXYZ"
	readableLowercaseChars = "abcdefghjkmnpqrstuvwxyz"
	readableNumberChars    = "23456789"
	readableSymbolChars    = "!@#$%^&*+-="

	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 12
)

var (
	ErrEmptyPool      = errors.New("at least one character type must be selected")
	ErrLengthTooShort = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong  = fmt.Errorf("password length must be at most %d", MaxLength)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Readable  bool
}

// DefaultOptions returns the defaults shown on first load: 12 characters,
// every class enabled, readable mode off.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Pool returns the characters eligible for the given options, in class order
// uppercase, lowercase, numbers, symbols. It is empty when no class is selected.
func Pool(opts GeneratorOptions) string {
	var b strings.Builder
	if opts.Uppercase {
		b.WriteString(pick(opts.Readable, readableUppercaseChars, uppercaseChars))
	}
	if opts.Lowercase {
		b.WriteString(pick(opts.Readable, readableLowercaseChars, lowercaseChars))
	}
	if opts.Numbers {
		b.WriteString(pick(opts.Readable, readableNumberChars, numberChars))
	}
	if opts.Symbols {
		b.WriteString(pick(opts.Readable, readableSymbolChars, symbolChars))
	}
	return b.String()
}

func pick(readable bool, readableSet, fullSet string) string {
	if readable {
		return readableSet
	}
	return fullSet
}

// Result is a generated password together with its strength classification.
type Result struct {
	Password string
	Strength Strength
}

// Generator draws passwords from a random source.
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading from src. A nil src uses crypto/rand.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{random: src}
}

// Generate creates a password using crypto/rand.
func Generate(opts GeneratorOptions) (Result, error) {
	return NewGenerator(nil).Generate(opts)
}

// Generate creates a password of exactly opts.Length characters. Every
// position is sampled independently and uniformly, with replacement, from
// the active pool.
func (g *Generator) Generate(opts GeneratorOptions) (Result, error) {
	pool := Pool(opts)
	if pool == "" {
		return Result{}, ErrEmptyPool
	}
	if opts.Length < MinLength {
		return Result{}, ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return Result{}, ErrLengthTooLong
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := g.randChar(pool)
		if err != nil {
			return Result{}, fmt.Errorf("reading random source: %w", err)
		}
		result[i] = ch
	}

	password := string(result)
	return Result{
		Password: password,
		Strength: ScoreStrength(password),
	}, nil
}

// randChar picks a random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.random, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
