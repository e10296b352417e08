package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aera/internal/diag"
	"aera/internal/diagfmt"
	"aera/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] [file.aera|directory]...",
	Short: "Run diagnostics on aera source files",
	Long: `Run lexical and syntax diagnostics on aera source files or all *.aera files
within directories. Without arguments the sources listed in aera.toml are checked.`,
	RunE: runDiagnose,
}

// init registers CLI flags for the diag command used by runDiagnose.
func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	diagCmd.Flags().Bool("no-cache", false, "ignore the on-disk diagnostics cache")
	diagCmd.Flags().Bool("clear-cache", false, "drop every cache entry before running")
	diagCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	diagCmd.Flags().String("paths", "auto", "path display (auto|absolute|relative|basename)")
	diagCmd.Flags().Bool("with-notes", true, "include diagnostic notes in JSON output")
}

type diagFlags struct {
	format     string
	jobs       int
	jobsSet    bool
	noCache    bool
	clearCache bool
	ui         mode
	pathMode   diagfmt.PathMode
	withNotes  bool
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var (
		f   diagFlags
		err error
	)
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "short", "json":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	f.jobsSet = flags.Changed("jobs")
	if f.noCache, err = flags.GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = parseMode("ui", uiValue); err != nil {
		return f, err
	}
	pathsValue, err := flags.GetString("paths")
	if err != nil {
		return f, fmt.Errorf("failed to get paths flag: %w", err)
	}
	mode, ok := diagfmt.ParsePathMode(pathsValue)
	if !ok {
		return f, fmt.Errorf("invalid --paths value %q (expected auto|absolute|relative|basename)", pathsValue)
	}
	f.pathMode = mode
	if f.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	return f, nil
}

// runDiagnose executes the "diag" command: it resolves the inputs, runs the
// front end on a worker pool (answering unchanged files from the cache),
// prints the merged diagnostics and fails when any of them is an error.
func runDiagnose(cmd *cobra.Command, args []string) error {
	f, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	useColor := g.applyColor()

	manifest, err := loadManifest()
	if err != nil {
		return err
	}
	files, err := resolveInputs(args, manifest)
	if err != nil {
		return err
	}

	timer := g.timer()
	opts := driver.Options{
		MaxDiagnostics: effectiveMaxDiagnostics(g, manifest),
		Jobs:           effectiveJobs(f.jobs, f.jobsSet, manifest),
		Timer:          timer,
	}
	if !f.noCache && manifest.CachePath() != "" {
		cache, err := driver.OpenDiskCache(manifest.CachePath())
		if err != nil {
			return err
		}
		if f.clearCache {
			if err := cache.DropAll(); err != nil {
				return err
			}
		}
		opts.Cache = cache
	}

	var results []driver.FileResult
	if f.format != "json" && !g.quiet && shouldUseTUI(f.ui, len(files)) {
		_, results, err = runDiagnoseWithUI(cmd.Context(), "Diagnosing", files, opts)
	} else {
		_, results, err = driver.DiagnoseFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("diagnostics failed: %w", err)
	}

	items, dropped := driver.Merge(results)
	baseDir := ""
	if manifest != nil {
		baseDir = manifest.Root
	} else if wd, err := os.Getwd(); err == nil {
		baseDir = wd
	}

	switch f.format {
	case "json":
		err = diagfmt.JSON(cmd.OutOrStdout(), items, dropped, diagfmt.JSONOpts{
			PathMode:     f.pathMode,
			BaseDir:      baseDir,
			IncludeNotes: f.withNotes,
		})
	case "short":
		err = diagfmt.Short(os.Stderr, items, diagfmt.PrettyOpts{PathMode: f.pathMode, BaseDir: baseDir})
	default:
		err = diagfmt.Pretty(os.Stderr, items, diagfmt.PrettyOpts{Color: useColor, PathMode: f.pathMode, BaseDir: baseDir})
	}
	if err != nil {
		return err
	}

	errorsCount := countSeverity(items, diag.SevError)
	if !g.quiet && f.format != "json" {
		fmt.Fprintln(os.Stderr, summaryLine(len(files), errorsCount, countSeverity(items, diag.SevWarning), dropped, cachedCount(results)))
	}
	g.printTimings(timer)
	if errorsCount > 0 || anyFailed(results) {
		return errHasErrors
	}
	return nil
}

func countSeverity(items []diag.Diagnostic, sev diag.Severity) int {
	n := 0
	for _, d := range items {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func cachedCount(results []driver.FileResult) int {
	n := 0
	for i := range results {
		if results[i].Cached {
			n++
		}
	}
	return n
}

func anyFailed(results []driver.FileResult) bool {
	for i := range results {
		if results[i].Failed() {
			return true
		}
	}
	return false
}

// summaryLine: итоговая строка после диагностик, например
// "checked 3 files: 2 errors, 1 warning (1 cached)".
func summaryLine(files, errors, warnings, dropped, cached int) string {
	s := fmt.Sprintf("checked %s: %s, %s", plural(files, "file"), plural(errors, "error"), plural(warnings, "warning"))
	if dropped > 0 {
		s += fmt.Sprintf(", %d not shown", dropped)
	}
	if cached > 0 {
		s += fmt.Sprintf(" (%d cached)", cached)
	}
	return s
}

// droppedLine сообщает, сколько диагностик срезал лимит на файл.
func droppedLine(dropped, limit int) string {
	return fmt.Sprintf("%s not shown (limit %d per file, see --max-diagnostics)", plural(dropped, "diagnostic"), limit)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
