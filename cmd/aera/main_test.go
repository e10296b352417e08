package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aera/internal/project"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    mode
		wantErr bool
	}{
		{"", modeAuto, false},
		{"AUTO", modeAuto, false},
		{"on", modeOn, false},
		{"always", modeOn, false},
		{" off ", modeOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := parseMode("color", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMode(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUIMode(t *testing.T) {
	m, err := parseMode("ui", "On")
	if err != nil || m != modeOn {
		t.Errorf("parseMode(On) = %q, %v", m, err)
	}
	if _, err := parseMode("ui", "maybe"); err == nil || !strings.Contains(err.Error(), "--ui") {
		t.Errorf("expected --ui error, got %v", err)
	}
	if shouldUseTUI(modeOff, 3) || !shouldUseTUI(modeOn, 3) {
		t.Error("explicit ui modes ignored")
	}
	if shouldUseTUI(modeOn, 1) {
		t.Error("a single file never gets the progress UI")
	}
}

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		files, errors, warnings, dropped, cached int
		want                                     string
	}{
		{1, 0, 0, 0, 0, "checked 1 file: 0 errors, 0 warnings"},
		{3, 2, 1, 0, 1, "checked 3 files: 2 errors, 1 warning (1 cached)"},
		{2, 1, 0, 5, 0, "checked 2 files: 1 error, 0 warnings, 5 not shown"},
	}
	for _, tt := range tests {
		if got := summaryLine(tt.files, tt.errors, tt.warnings, tt.dropped, tt.cached); got != tt.want {
			t.Errorf("summaryLine = %q, want %q", got, tt.want)
		}
	}
}

func TestManifestOverrides(t *testing.T) {
	m := &project.Manifest{Config: project.Config{Build: project.BuildConfig{MaxDiagnostics: 7, Jobs: 3}}}

	g := globalOptions{maxDiagnostics: 100}
	if got := effectiveMaxDiagnostics(g, m); got != 7 {
		t.Errorf("manifest limit not applied: %d", got)
	}
	g.maxDiagnosticsSet = true
	if got := effectiveMaxDiagnostics(g, m); got != 100 {
		t.Errorf("flag should win: %d", got)
	}
	if got := effectiveMaxDiagnostics(globalOptions{maxDiagnostics: 50}, nil); got != 50 {
		t.Errorf("no manifest: %d", got)
	}

	if got := effectiveJobs(0, false, m); got != 3 {
		t.Errorf("manifest jobs not applied: %d", got)
	}
	if got := effectiveJobs(8, true, m); got != 8 {
		t.Errorf("jobs flag should win: %d", got)
	}
}

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.aera"), "let a = 1\n")
	writeFile(t, filepath.Join(dir, "src", "b.aera"), "let b = 2\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip")

	files, err := resolveInputs([]string{dir}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.aera"), filepath.Join(dir, "src", "b.aera")}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", files, want)
	}

	if _, err := resolveInputs(nil, nil); err == nil {
		t.Error("expected error without args and manifest")
	}

	m := &project.Manifest{Root: dir, Config: project.Config{Build: project.BuildConfig{Sources: []string{"src"}}}}
	files, err = resolveInputs(nil, m)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != want[1] {
		t.Errorf("manifest files = %v", files)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3", GitCommit: "abc"}
	if err := renderVersionJSON(&buf, info, versionOptions{format: "json", showHash: true, showDate: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload.Tool != "aera" || payload.Version != "1.2.3" || payload.GitCommit != "abc" || payload.BuildDate != "unknown" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestParseCommandStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.aera")
	writeFile(t, path, "fn add(a: int32) -> int32 { return a + 1; }\n")

	out, err := execute(t, "parse", "--stats", "--color", "off", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(out, "main.aera: 1 decls, 2 stmts, 3 exprs, 2 types") {
		t.Errorf("stats output = %q", out)
	}
}

func TestParseDirReportsDroppedDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.aera"), "let a = 1 $ $ $\n")
	writeFile(t, filepath.Join(dir, "b.aera"), "let b = 2 $ $ $\n")
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("max-diagnostics", "100") })

	_, errOut, err := executeWithStderr(t, "parse", "--max-diagnostics", "1", "--color", "off", dir)
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("err = %v, want errHasErrors", err)
	}
	if !strings.Contains(errOut, "not shown (limit 1 per file") {
		t.Errorf("stderr = %q, want a dropped-diagnostics line", errOut)
	}
}

func TestDroppedLine(t *testing.T) {
	if got, want := droppedLine(1, 5), "1 diagnostic not shown (limit 5 per file, see --max-diagnostics)"; got != want {
		t.Errorf("droppedLine = %q, want %q", got, want)
	}
	if got := droppedLine(4, 1); !strings.HasPrefix(got, "4 diagnostics not shown") {
		t.Errorf("droppedLine = %q", got)
	}
}

func TestDiagCommandJSON(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.aera")
	writeFile(t, bad, "let x = \n")

	out, err := execute(t, "diag", "--format", "json", "--no-cache", "--ui", "off", "--color", "off", bad)
	if !errors.Is(err, errHasErrors) {
		t.Fatalf("err = %v, want errHasErrors", err)
	}
	var payload struct {
		Count       int `json:"count"`
		Errors      int `json:"errors"`
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if payload.Errors == 0 || payload.Diagnostics[0].Code != "SYN2203" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	out, err := execute(t, "init", dir)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Initialized aera project") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, project.ManifestName)); err != nil {
		t.Errorf("manifest missing: %v", err)
	}
	if _, err := execute(t, "init", dir); err == nil {
		t.Error("second init should fail")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

// executeWithStderr: то же, но отдаёт и то, что команда пишет в cmd.ErrOrStderr.
func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
