package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"aera/internal/observ"
	"aera/internal/project"
)

// errHasErrors is returned when diagnostics contain errors; the message is
// already on stderr, so cobra only needs the non-zero exit.
var errHasErrors = errors.New("aborted due to errors")

type globalOptions struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	verbose        int

	// maxDiagnosticsSet: флаг задан явно и перекрывает aera.toml
	maxDiagnosticsSet bool
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	var (
		opts globalOptions
		err  error
	)
	if opts.color, err = flags.GetString("color"); err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.verbose, err = flags.GetCount("verbose"); err != nil {
		return opts, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	if opts.maxDiagnostics < 0 {
		return opts, fmt.Errorf("--max-diagnostics must not be negative")
	}
	opts.maxDiagnosticsSet = flags.Changed("max-diagnostics")
	if _, err := parseMode("color", opts.color); err != nil {
		return opts, err
	}
	return opts, nil
}

// mode: трёхпозиционный переключатель для --color и --ui.
type mode string

const (
	modeAuto mode = "auto"
	modeOn   mode = "on"
	modeOff  mode = "off"
)

// parseMode принимает auto|on|off и синонимы always|never; flag нужен для текста ошибки.
func parseMode(flag, value string) (mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return modeAuto, nil
	case "on", "always":
		return modeOn, nil
	case "off", "never":
		return modeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// resolveColor решает, красить ли вывод в f. В режиме auto учитывается NO_COLOR.
func resolveColor(m mode, f *os.File) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(f)
	}
}

// shouldUseTUI: прогресс-UI имеет смысл только для нескольких файлов.
// В режиме auto нужен терминал на stdout.
func shouldUseTUI(m mode, files int) bool {
	if files < 2 {
		return false
	}
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// applyColor configures fatih/color globally and reports whether stderr is colored.
func (g globalOptions) applyColor() bool {
	m, _ := parseMode("color", g.color)
	useColor := resolveColor(m, os.Stderr)
	color.NoColor = !useColor
	return useColor
}

func (g globalOptions) timer() *observ.Timer {
	if !g.timings {
		return nil
	}
	return observ.NewTimer()
}

func (g globalOptions) printTimings(t *observ.Timer) {
	if t == nil {
		return
	}
	fmt.Fprint(os.Stderr, t.Summary())
}

// loadManifest ищет aera.toml от текущего каталога; отсутствие манифеста не ошибка.
func loadManifest() (*project.Manifest, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	m, _, err := project.Load(wd)
	return m, err
}

// effectiveMaxDiagnostics: явный флаг, затем [build].max_diagnostics, затем значение флага по умолчанию.
func effectiveMaxDiagnostics(g globalOptions, m *project.Manifest) int {
	if g.maxDiagnosticsSet || m == nil || m.Config.Build.MaxDiagnostics == 0 {
		return g.maxDiagnostics
	}
	return m.Config.Build.MaxDiagnostics
}

func effectiveJobs(flagJobs int, flagSet bool, m *project.Manifest) int {
	if flagSet || m == nil {
		return flagJobs
	}
	return m.Config.Build.Jobs
}

// resolveInputs expands CLI paths; without arguments the manifest's sources are used.
func resolveInputs(args []string, m *project.Manifest) ([]string, error) {
	if len(args) > 0 {
		return project.ExpandPaths(args)
	}
	if m == nil {
		return nil, fmt.Errorf("no input files: pass a file or directory, or run inside a project with %s", project.ManifestName)
	}
	return m.SourceFiles()
}
