package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"aera/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new aera project",
	Long: `Initialize a new aera project by creating a project manifest (aera.toml)
and a hello-world entry point (main.aera). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	res, err := project.Init(target)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return nil
	}
	rel := res.Dir
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, res.Dir); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized aera project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if res.CreatedMain {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(res.MainPath))
	} else {
		fmt.Fprintf(out, "  - %s (existing)\n", filepath.Base(res.MainPath))
	}
	return nil
}
