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

// AnalyzeCommand runs the style analysis engine over a corpus and renders a
// findings report (markdown or JSON), as distinct from build's stylesheet
// emission.
type AnalyzeCommand struct {
	file     string
	out      string
	format   string
	theme    string
	validate bool
	verbose  bool
}

// NewAnalyzeCommand creates a new analyze command with its defaults.
func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{format: "md"}
}

// CreateCobraCommand creates the cobra command for the analysis report.
func (a *AnalyzeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze a corpus and report clusters, suggestions, and anti-patterns",
		Long: `Analyze runs the full style analysis pipeline over a corpus and renders a
findings report: consolidation clusters, suggested utilities/variables, and
any anti-pattern/invariant warnings. Use build instead when you want a
rendered stylesheet rather than a report.

Examples:
  # Human-readable markdown report to stdout
  stylescan analyze ./styles

  # Machine-readable report, including schema validation warnings
  stylescan analyze -f corpus.yaml --format json --validate`,
		RunE: a.runAnalyze,
	}

	cmd.Flags().StringVarP(&a.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringVarP(&a.out, "out", "o", "", "Output path (defaults to stdout)")
	cmd.Flags().StringVar(&a.format, "format", "md", "Report dialect: md or json")
	cmd.Flags().StringVarP(&a.theme, "theme", "t", "", "Resolve token themeOverrides for this theme")
	cmd.Flags().BoolVar(&a.validate, "validate", true, "Also run schema validation and include warnings")

	return cmd
}

func (a *AnalyzeCommand) runAnalyze(cmd *cobra.Command, args []string) error {
	a.verbose, _ = cmd.Flags().GetBool("verbose")

	paths := resolvePaths(a.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	cfg, err := config.LoadConfig("", paths[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := newEngine(a.verbose)
	useCase := app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithLogger(logging.NewDomainLogger()).
		Build()

	req := app.AnalyzeRequest{
		Paths:           paths,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           a.theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          domain.OutputFormat(a.format),
		Validate:        a.validate,
	}

	resp, err := useCase.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}
	printValidationWarnings(cmd, resp.Warnings)

	rendered, err := useCase.Render(resp, domain.OutputFormat(a.format))
	if err != nil {
		return err
	}

	if a.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}
	if err := os.WriteFile(a.out, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", a.out)
	return nil
}

// NewAnalyzeCmd creates and returns the analyze cobra command.
func NewAnalyzeCmd() *cobra.Command {
	return NewAnalyzeCommand().CreateCobraCommand()
}
