package cmd

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/libforge/cli/internal/errors"
	"github.com/libforge/cli/internal/output"
	"github.com/libforge/cli/internal/scaffold"
)

var (
	newTemplate  string
	newDir       string
	newOverwrite bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <library-name> <repo-name>",
		Short: "Create a new library project from a template",
		Long: `Create a new library project from a template.

The template is either the bundled library starter or a remote repository
cloned at shallow depth. After materialization, version control history is
stripped, the package manifest is rewritten for the new repository, declared
tokens are substituted, and scaffold-only files are removed.

Examples:
  # Create a library from the bundled template
  libforge new mylib org/mylib

  # Repo names may carry a leading @, npm style
  libforge new mylib @org/mylib

  # Clone a custom template repository
  libforge new mylib org/mylib --template https://github.com/acme/library-starter

  # Create in a specific directory, replacing existing content
  libforge new mylib org/mylib --dir ./out --overwrite`,
		Args: cobra.ExactArgs(2),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newTemplate, "template", "t", "",
		"Template repository URL (default: bundled template)")
	cmd.Flags().StringVarP(&newDir, "dir", "d", "",
		"Directory to create the project in (defaults to the repo base name)")
	cmd.Flags().BoolVar(&newOverwrite, "overwrite", false,
		"Replace existing destination content")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	libraryName := scaffold.NormalizeLibraryName(args[0])
	repoName := scaffold.NormalizeRepoName(args[1])

	if libraryName == "" || repoName == "" {
		return oerrors.NewValidationError("library name and repo name must not be empty", "",
			"Usage: libforge new <library-name> <repo-name>")
	}

	cfg := GetConfig()

	templateURL := newTemplate
	if templateURL == "" {
		templateURL = cfg.Scaffold.Template
	}

	targetDir := newDir
	if targetDir == "" {
		// "org/bar" scaffolds into ./bar (or the configured output dir).
		targetDir = filepath.Join(cfg.Scaffold.OutputDir, path.Base(repoName))
	}

	result, err := scaffold.Run(cmd.Context(), scaffold.Options{
		LibraryName: libraryName,
		RepoName:    repoName,
		Dest:        targetDir,
		TemplateURL: templateURL,
		Overwrite:   newOverwrite,
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render("@"+repoName), result.Dest)))
	output.Println("")

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = fileDescription(f)
	}
	output.Print(output.RenderFileTree(filepath.Base(result.Dest), files))

	output.Println("")
	output.Println(result.Dest)

	return nil
}

// fileDescription returns a short description for well-known project files.
func fileDescription(name string) string {
	switch name {
	case "package.json":
		return "Package manifest"
	case "README.md":
		return "Project readme"
	case ".gitignore":
		return "Git ignore rules"
	case ".npmrc":
		return "npm configuration"
	case "tsconfig.json":
		return "TypeScript configuration"
	}
	return ""
}
