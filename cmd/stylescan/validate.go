package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stylescan/stylescan/internal/corpus"
	"github.com/stylescan/stylescan/service"
)

// ValidateCommand checks corpus files' schema-level well-formedness and
// prints any warnings as a table. Per spec.md §7, warnings never fail the
// command on their own — only a genuine read/parse error does.
type ValidateCommand struct {
	file            string
	includePatterns []string
	excludePatterns []string
}

// NewValidateCommand creates a new validate command.
func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{}
}

// CreateCobraCommand creates the cobra command for schema validation.
func (v *ValidateCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Check corpus files for schema-level warnings",
		Long: `Validate resolves corpus files the same way build does and checks each
one's raw schema shape: the top-level version field and every token's value
shape. Violations are printed as a warning table; they never fail the
command by themselves.`,
		RunE: v.runValidate,
	}

	cmd.Flags().StringVarP(&v.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringSliceVar(&v.includePatterns, "include", nil, "Glob patterns to include")
	cmd.Flags().StringSliceVar(&v.excludePatterns, "exclude", nil, "Glob patterns to exclude")

	return cmd
}

func (v *ValidateCommand) runValidate(cmd *cobra.Command, args []string) error {
	paths := resolvePaths(v.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	files, err := service.NewCorpusReader().CollectCorpusFiles(paths, v.includePatterns, v.excludePatterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no corpus files found under %v", paths)
	}

	type row struct {
		file, path, message string
	}
	var rows []row
	for _, file := range files {
		warnings, err := corpus.Validate(file)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			rows = append(rows, row{file: file, path: w.Path, message: w.Message})
		}
	}

	if len(rows) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "validated %d corpus file(s), no warnings\n", len(files))
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPATH\tMESSAGE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.file, r.path, r.message)
	}
	tw.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d warning(s) across %d corpus file(s)\n", len(rows), len(files))
	return nil
}

// NewValidateCmd creates and returns the validate cobra command.
func NewValidateCmd() *cobra.Command {
	return NewValidateCommand().CreateCobraCommand()
}
