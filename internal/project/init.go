package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InitResult lists what Init created.
type InitResult struct {
	Dir          string
	ManifestPath string
	MainPath     string
	CreatedMain  bool
}

// Init creates aera.toml and a hello-world main.aera in dir.
// The directory is created when missing; an existing manifest is an error,
// an existing main.aera is kept.
func Init(dir string) (InitResult, error) {
	target, err := filepath.Abs(dir)
	if err != nil {
		return InitResult{}, fmt.Errorf("failed to resolve %q: %w", dir, err)
	}
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return InitResult{}, err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return InitResult{}, fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return InitResult{}, fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "aera-project"
	}

	res := InitResult{
		Dir:          target,
		ManifestPath: filepath.Join(target, ManifestName),
		MainPath:     filepath.Join(target, "main"+SourceExt),
	}
	if _, err := os.Stat(res.ManifestPath); err == nil {
		return InitResult{}, fmt.Errorf("project already initialized: %s exists", res.ManifestPath)
	}
	if err := Save(res.ManifestPath, Default(name)); err != nil {
		return InitResult{}, err
	}
	if _, err := os.Stat(res.MainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(res.MainPath, []byte(defaultMain), 0o600); err != nil {
			return InitResult{}, fmt.Errorf("failed to write %s: %w", res.MainPath, err)
		}
		res.CreatedMain = true
	}
	return res, nil
}

const defaultMain = `# aera hello world
fn greeting() -> string {
    return "Hello, aera!"
}

@entry
pub fn main() -> int32 {
    print(greeting());
    return 0
}
`
