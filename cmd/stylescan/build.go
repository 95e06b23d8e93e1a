package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stylescan/stylescan/app"
	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/config"
	"github.com/stylescan/stylescan/internal/logging"
	"github.com/stylescan/stylescan/service"
)

// BuildCommand renders a corpus into a target stylesheet dialect — the
// primary entry point named by spec.md's CLI surface.
type BuildCommand struct {
	file     string
	out      string
	format   string
	minify   bool
	theme    string
	verbose  bool
	strictOK bool // --validate: also run schema validation, print warnings
}

// NewBuildCommand creates a new build command with its defaults.
func NewBuildCommand() *BuildCommand {
	return &BuildCommand{format: "css"}
}

// CreateCobraCommand creates the cobra command for stylesheet emission.
func (b *BuildCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [path...]",
		Short: "Render a style corpus into a target dialect",
		Long: `Build loads one or more YAML corpus files (or directories of them),
runs the style analysis engine over the merged corpus, and renders the
result as a stylesheet in the requested dialect.

Examples:
  # Render corpus.yaml as plain CSS to stdout
  stylescan build -f corpus.yaml

  # Render a directory of corpus files as nested SCSS to a file
  stylescan build ./styles --format scss --out dist/styles.scss

  # Resolve the "dark" theme's token overrides and minify the result
  stylescan build -f corpus.yaml --theme dark --minify`,
		RunE: b.runBuild,
	}

	cmd.Flags().StringVarP(&b.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringVarP(&b.out, "out", "o", "", "Output path (defaults to stdout)")
	cmd.Flags().StringVar(&b.format, "format", "css", "Output dialect: css, scss, tailwind, tokens, md, json, dot")
	cmd.Flags().BoolVarP(&b.minify, "minify", "m", false, "Minify the rendered output")
	cmd.Flags().StringVarP(&b.theme, "theme", "t", "", "Resolve token themeOverrides for this theme")
	cmd.Flags().BoolVar(&b.strictOK, "validate", false, "Also run schema validation and print warnings")

	return cmd
}

func (b *BuildCommand) runBuild(cmd *cobra.Command, args []string) error {
	b.verbose, _ = cmd.Flags().GetBool("verbose")

	paths := resolvePaths(b.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	cfg, err := config.LoadConfig("", paths[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := b.format
	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		format = cfg.Output.Format
	}

	engine := newEngine(b.verbose)
	useCase := app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithLogger(logging.NewDomainLogger()).
		Build()

	req := app.AnalyzeRequest{
		Paths:           paths,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           b.theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          domain.OutputFormat(format),
		Validate:        b.strictOK,
	}

	resp, err := useCase.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	printValidationWarnings(cmd, resp.Warnings)

	rendered, err := useCase.Render(resp, domain.OutputFormat(format))
	if err != nil {
		return err
	}
	if b.minify {
		rendered = service.MinifyText(rendered)
	}

	if b.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}
	if err := os.WriteFile(b.out, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", b.out)
	return nil
}

// resolvePaths merges the -f/--file flag with positional path arguments,
// preserving order and skipping an empty flag value.
func resolvePaths(file string, args []string) []string {
	var paths []string
	if file != "" {
		paths = append(paths, file)
	}
	paths = append(paths, args...)
	if len(paths) == 0 {
		return nil
	}
	return paths
}

func printValidationWarnings(cmd *cobra.Command, warnings []domain.ValidationWarning) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", w.Path, w.Message)
	}
}

// NewBuildCmd creates and returns the build cobra command.
func NewBuildCmd() *cobra.Command {
	return NewBuildCommand().CreateCobraCommand()
}
