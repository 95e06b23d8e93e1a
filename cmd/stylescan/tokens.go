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

// TokensCommand renders just a corpus's design tokens as a :root CSS
// custom-property block — a thin build wrapper fixed to the tokens dialect,
// since token extraction is common enough to deserve its own entry point
// (spec.md names `tokens` as a top-level output dialect and subcommand).
type TokensCommand struct {
	file    string
	out     string
	theme   string
	verbose bool
}

// NewTokensCommand creates a new tokens command.
func NewTokensCommand() *TokensCommand {
	return &TokensCommand{}
}

// CreateCobraCommand creates the cobra command for token extraction.
func (t *TokensCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [path...]",
		Short: "Render a corpus's design tokens as CSS custom properties",
		Long: `Tokens is build with --format tokens fixed in: it renders only the
corpus's :root token declarations, resolving themeOverrides for --theme when
given.`,
		RunE: t.runTokens,
	}

	cmd.Flags().StringVarP(&t.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringVarP(&t.out, "out", "o", "", "Output path (defaults to stdout)")
	cmd.Flags().StringVarP(&t.theme, "theme", "t", "", "Resolve token themeOverrides for this theme")

	return cmd
}

func (t *TokensCommand) runTokens(cmd *cobra.Command, args []string) error {
	t.verbose, _ = cmd.Flags().GetBool("verbose")

	paths := resolvePaths(t.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	cfg, err := config.LoadConfig("", paths[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := newEngine(t.verbose)
	useCase := app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithLogger(logging.NewDomainLogger()).
		Build()

	req := app.AnalyzeRequest{
		Paths:           paths,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           t.theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          domain.OutputFormatTokens,
	}

	resp, err := useCase.Execute(cmd.Context(), req)
	if err != nil {
		return err
	}
	rendered, err := useCase.Render(resp, domain.OutputFormatTokens)
	if err != nil {
		return err
	}

	if t.out == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}
	if err := os.WriteFile(t.out, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", t.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", t.out)
	return nil
}

// NewTokensCmd creates and returns the tokens cobra command.
func NewTokensCmd() *cobra.Command {
	return NewTokensCommand().CreateCobraCommand()
}
