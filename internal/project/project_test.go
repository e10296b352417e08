package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"aera/internal/diag"
	"aera/internal/parser"
	"aera/internal/project"
	"aera/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestInitCreatesParsableProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")
	res, err := project.Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !res.CreatedMain {
		t.Error("expected main.aera to be created")
	}

	m, ok, err := project.Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "hello" || m.Config.Package.Version != "0.1.0" {
		t.Errorf("package = %+v", m.Config.Package)
	}
	if m.CachePath() != filepath.Join(res.Dir, ".aera-cache") {
		t.Errorf("cache path = %q", m.CachePath())
	}

	// сгенерированный main.aera должен разбираться без ошибок
	content, err := os.ReadFile(res.MainPath)
	if err != nil {
		t.Fatal(err)
	}
	bag := diag.NewBag()
	prog := parser.Parse(source.NewFile(res.MainPath, string(content)), bag)
	if bag.Len() != 0 || len(prog.Decls) != 2 {
		t.Errorf("main.aera: %d decls, diagnostics %v", len(prog.Decls), bag.Items())
	}

	if _, err := project.Init(dir); err == nil || !strings.Contains(err.Error(), "already initialized") {
		t.Errorf("second Init error = %v", err)
	}
}

func TestInitKeepsExistingMain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.aera"), "let keep = 1\n")
	res, err := project.Init(dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.CreatedMain {
		t.Error("existing main.aera must not be replaced")
	}
	got, _ := os.ReadFile(res.MainPath)
	if string(got) != "let keep = 1\n" {
		t.Errorf("main.aera = %q", got)
	}
}

func TestFindProjectRootWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), "[package]\nname = \"x\"\n")
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := project.FindProjectRoot(deep)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("root = %q, want %q", got, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing package", "[build]\njobs = 2\n", "missing [package]"},
		{"missing name", "[package]\nversion = \"1\"\n", "missing [package].name"},
		{"bad toml", "[package\n", "failed to parse TOML"},
		{"unknown key", "[package]\nname = \"x\"\nflavour = \"sweet\"\n", "unknown key package.flavour"},
		{"negative jobs", "[package]\nname = \"x\"\n[build]\njobs = -1\n", "jobs must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), project.ManifestName)
			writeFile(t, path, tt.content)
			_, err := project.LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), project.ManifestName)
	cfg := project.Default("demo")
	cfg.Build.Jobs = 4
	cfg.Build.Sources = []string{"src", "lib/extra.aera"}
	if err := project.Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := project.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), "[package]\nname = \"x\"\n[build]\nsources = [\"src\", \"tools/gen.aera\"]\n")
	writeFile(t, filepath.Join(root, "src", "b.aera"), "")
	writeFile(t, filepath.Join(root, "src", "a.aera"), "")
	writeFile(t, filepath.Join(root, "src", "notes.txt"), "")
	writeFile(t, filepath.Join(root, "src", ".hidden", "c.aera"), "")
	writeFile(t, filepath.Join(root, "src", "build", "d.aera"), "")
	writeFile(t, filepath.Join(root, "tools", "gen.aera"), "")

	m, ok, err := project.Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	files, err := m.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(m.Root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	want := []string{"src/a.aera", "src/b.aera", "tools/gen.aera"}
	if !reflect.DeepEqual(rel, want) {
		t.Errorf("sources = %v, want %v", rel, want)
	}
}

func TestExpandPathsMissing(t *testing.T) {
	if _, err := project.ExpandPaths([]string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b := project.HashString("a"), project.HashString("b")
	if project.Combine(a, b) == project.Combine(b, a) {
		t.Error("Combine should depend on argument order")
	}
	if project.Combine(a, b) != project.Combine(a, b) {
		t.Error("Combine should be deterministic")
	}
}
