package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aera/internal/diag"
	"aera/internal/diagfmt"
	"aera/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.aera",
	Short: "Tokenize an aera source file",
	Long:  `Tokenize breaks down an aera source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	useColor := g.applyColor()
	timer := g.timer()

	result, err := driver.Tokenize(filePath, driver.Options{MaxDiagnostics: g.maxDiagnostics, Timer: timer})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		if err := diagfmt.Pretty(os.Stderr, diag.Sorted(result.Bag.Items()), diagfmt.PrettyOpts{Color: useColor}); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		m, _ := parseMode("color", g.color)
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, resolveColor(m, os.Stdout))
	}
	if err != nil {
		return err
	}
	g.printTimings(timer)
	if result.Bag.HasErrors() {
		return errHasErrors
	}
	return nil
}
