package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/locale"
)

type generateOptions struct {
	length       int
	noUppercase  bool
	noLowercase  bool
	noNumbers    bool
	noSymbols    bool
	readable     bool
	count        int
	showStrength bool
}

func (o generateOptions) generatorOptions() crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:    o.length,
		Uppercase: !o.noUppercase,
		Lowercase: !o.noLowercase,
		Numbers:   !o.noNumbers,
		Symbols:   !o.noSymbols,
		Readable:  o.readable,
	}
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		Long: `Generate passwords from the selected character classes.

All four classes are enabled by default. Use --readable to drop characters
that are easy to confuse, such as 0/O and 1/l/I.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang, err := localeFlag(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), crypto.NewGenerator(nil), opts, lang)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", crypto.DefaultLength,
		fmt.Sprintf("Password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	cmd.Flags().BoolVar(&opts.noUppercase, "no-uppercase", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&opts.noLowercase, "no-lowercase", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&opts.noNumbers, "no-numbers", false, "Exclude digits")
	cmd.Flags().BoolVar(&opts.noSymbols, "no-symbols", false, "Exclude special characters")
	cmd.Flags().BoolVarP(&opts.readable, "readable", "r", false, "Exclude ambiguous characters")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVarP(&opts.showStrength, "show-strength", "s", false, "Print the strength after each password")

	return cmd
}

func runGenerate(w io.Writer, gen *crypto.Generator, opts generateOptions, lang string) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}

	var dict *i18n.Dictionary
	if opts.showStrength && lang != "" {
		catalog, err := i18n.Load()
		if err != nil {
			return err
		}
		dict = catalog.Get(lang)
	}

	for range opts.count {
		result, err := gen.Generate(opts.generatorOptions())
		if err != nil {
			return err
		}
		if !opts.showStrength {
			fmt.Fprintln(w, result.Password)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", result.Password, strengthText(result.Strength, dict))
	}
	return nil
}

func strengthText(s crypto.Strength, dict *i18n.Dictionary) string {
	label := string(s.Label)
	if dict != nil {
		label = dict.StrengthText(label)
	}
	return fmt.Sprintf("%s (%d/%d)", label, s.Score, crypto.MaxStrengthScore)
}

func localeFlag(cmd *cobra.Command) (string, error) {
	lang, err := cmd.Flags().GetString("locale")
	if err != nil {
		return "", err
	}
	if lang != "" && !locale.Supported(lang) {
		return "", fmt.Errorf("unsupported locale %q (supported: %v)", lang, locale.Codes())
	}
	return lang, nil
}
