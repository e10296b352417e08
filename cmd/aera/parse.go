package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/diagfmt"
	"aera/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.aera|directory|->",
	Short: "Parse an aera source file or directory and output AST",
	Long: `Parse analyzes an aera source file, all *.aera files in a directory,
or standard input ("-") and outputs their Abstract Syntax Trees`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Bool("stats", false, "print node counts per file instead of the tree")
}

type parsedFile struct {
	path    string
	program *ast.Program
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "tree":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	useColor := g.applyColor()
	timer := g.timer()
	opts := driver.Options{MaxDiagnostics: g.maxDiagnostics, Jobs: jobs, Timer: timer}

	var (
		files       []parsedFile
		diagnostics []diag.Diagnostic
		dropped     int
		hasErrors   bool
	)
	switch {
	case target == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		res := driver.ParseText("<stdin>", content, opts)
		files = append(files, parsedFile{path: "<stdin>", program: res.Program})
		diagnostics = diag.Sorted(res.Bag.Items())
		dropped = res.Bag.Dropped()
		hasErrors = res.Bag.HasErrors()
	default:
		st, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}
		if !st.IsDir() {
			res, err := driver.Parse(target, opts)
			if err != nil {
				return fmt.Errorf("parsing failed: %w", err)
			}
			files = append(files, parsedFile{path: target, program: res.Program})
			diagnostics = diag.Sorted(res.Bag.Items())
			dropped = res.Bag.Dropped()
			hasErrors = res.Bag.HasErrors()
			break
		}
		_, results, err := driver.ParseDir(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		for i := range results {
			r := &results[i]
			files = append(files, parsedFile{path: r.Path, program: r.Program})
			hasErrors = hasErrors || r.Failed()
		}
		diagnostics, dropped = driver.Merge(results)
	}

	if len(diagnostics) > 0 {
		if err := diagfmt.Pretty(os.Stderr, diagnostics, diagfmt.PrettyOpts{Color: useColor}); err != nil {
			return err
		}
	}
	if dropped > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), droppedLine(dropped, g.maxDiagnostics))
	}

	out := cmd.OutOrStdout()
	if stats {
		err = printStats(out, files)
	} else {
		err = printPrograms(out, files, format, g.quiet)
	}
	if err != nil {
		return err
	}
	g.printTimings(timer)
	if hasErrors {
		return errHasErrors
	}
	return nil
}

func printPrograms(out io.Writer, files []parsedFile, format string, quiet bool) error {
	if format == "json" {
		if len(files) == 1 {
			return diagfmt.FormatASTJSON(out, files[0].program)
		}
		output := make(map[string]*diagfmt.ASTNodeOutput, len(files))
		for _, f := range files {
			if f.program == nil {
				output[f.path] = nil
				continue
			}
			node := diagfmt.BuildASTOutput(f.program)
			output[f.path] = &node
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	for idx, f := range files {
		if len(files) > 1 && !quiet {
			if _, err := fmt.Fprintf(out, "== %s ==\n", f.path); err != nil {
				return err
			}
		}
		if f.program != nil {
			var err error
			if format == "tree" {
				err = ast.Fprint(out, f.program)
			} else {
				err = diagfmt.FormatASTPretty(out, f.program)
			}
			if err != nil {
				return err
			}
		}
		if len(files) > 1 && !quiet && idx < len(files)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func printStats(out io.Writer, files []parsedFile) error {
	var total ast.Stats
	for _, f := range files {
		s := ast.Count(f.program)
		total.Decls += s.Decls
		total.Stmts += s.Stmts
		total.Exprs += s.Exprs
		total.Types += s.Types
		if _, err := fmt.Fprintf(out, "%s: %d decls, %d stmts, %d exprs, %d types\n",
			f.path, s.Decls, s.Stmts, s.Exprs, s.Types); err != nil {
			return err
		}
	}
	if len(files) > 1 {
		_, err := fmt.Fprintf(out, "total: %d decls, %d stmts, %d exprs, %d types\n",
			total.Decls, total.Stmts, total.Exprs, total.Types)
		return err
	}
	return nil
}
