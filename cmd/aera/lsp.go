package main

import (
	"github.com/spf13/cobra"

	"aera/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the aera language server over stdio",
	Long: `Run a diagnostics-only language server on stdin/stdout. Lexical and syntax
errors are published whenever a document is opened, changed or saved.`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	lspCmd.Flags().String("log-file", "", "write server logs to this file instead of stderr")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	server := lsp.New(lsp.Options{
		MaxDiagnostics: g.maxDiagnostics,
		Verbosity:      g.verbose,
		LogFile:        logFile,
	})
	return server.RunStdio()
}
