package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stylescan/stylescan/app"
	"github.com/stylescan/stylescan/domain"
	"github.com/stylescan/stylescan/internal/config"
	"github.com/stylescan/stylescan/internal/logging"
	"github.com/stylescan/stylescan/service"
)

// WatchCommand re-runs build on every corpus file change until interrupted.
type WatchCommand struct {
	file    string
	out     string
	format  string
	minify  bool
	theme   string
	verbose bool
}

// NewWatchCommand creates a new watch command with its defaults.
func NewWatchCommand() *WatchCommand {
	return &WatchCommand{format: "css"}
}

// CreateCobraCommand creates the cobra command for watch mode.
func (w *WatchCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path...]",
		Short: "Rebuild a stylesheet whenever its corpus changes",
		Long: `Watch resolves a corpus the same way build does, renders it once, and then
re-renders on every subsequent write to a resolved corpus file until
interrupted with Ctrl-C.`,
		RunE: w.runWatch,
	}

	cmd.Flags().StringVarP(&w.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringVarP(&w.out, "out", "o", "", "Output path (defaults to stdout)")
	cmd.Flags().StringVar(&w.format, "format", "css", "Output dialect: css, scss, tailwind, tokens, md, json, dot")
	cmd.Flags().BoolVarP(&w.minify, "minify", "m", false, "Minify the rendered output")
	cmd.Flags().StringVarP(&w.theme, "theme", "t", "", "Resolve token themeOverrides for this theme")

	return cmd
}

func (w *WatchCommand) runWatch(cmd *cobra.Command, args []string) error {
	w.verbose, _ = cmd.Flags().GetBool("verbose")

	paths := resolvePaths(w.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	cfg, err := config.LoadConfig("", paths[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := newEngine(w.verbose)
	useCase := app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithLogger(logging.NewDomainLogger()).
		Build()

	req := app.AnalyzeRequest{
		Paths:           paths,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           w.theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          domain.OutputFormat(w.format),
	}

	rebuild := func() error {
		resp, err := useCase.Execute(cmd.Context(), req)
		if err != nil {
			return err
		}
		rendered, err := useCase.Render(resp, domain.OutputFormat(w.format))
		if err != nil {
			return err
		}
		if w.minify {
			rendered = service.MinifyText(rendered)
		}
		if w.out == "" {
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		}
		return os.WriteFile(w.out, []byte(rendered), 0644)
	}

	if err := rebuild(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %v for changes (Ctrl-C to stop)\n", paths)

	corpusFiles, err := service.NewCorpusReader().CollectCorpusFiles(paths, cfg.Files.IncludePatterns, cfg.Files.ExcludePatterns)
	if err != nil {
		return err
	}
	watcher, err := service.NewWatcher(corpusFiles)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return watcher.Watch(ctx, func(path string) {
		logging.L().Info().Str("path", path).Msg("corpus changed, rebuilding")
		if err := rebuild(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "rebuild failed: %v\n", err)
		}
	})
}

// NewWatchCmd creates and returns the watch cobra command.
func NewWatchCmd() *cobra.Command {
	return NewWatchCommand().CreateCobraCommand()
}
