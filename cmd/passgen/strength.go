package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/i18n"
)

// NewStrengthCmd creates the strength command.
func NewStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Score the strength of a password",
		Long: `Score a password on a 0-6 scale: one point each for a length of at
least 8 and at least 12, and one for each of uppercase letters, lowercase
letters, digits and other characters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := localeFlag(cmd)
			if err != nil {
				return err
			}
			return runStrength(cmd.OutOrStdout(), args[0], lang)
		},
	}
}

func runStrength(w io.Writer, password, lang string) error {
	var dict *i18n.Dictionary
	if lang != "" {
		catalog, err := i18n.Load()
		if err != nil {
			return err
		}
		dict = catalog.Get(lang)
	}

	fmt.Fprintln(w, strengthText(crypto.ScoreStrength(password), dict))
	return nil
}
