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

// ServeCommand runs a live-reloading preview server over a corpus.
type ServeCommand struct {
	file    string
	format  string
	theme   string
	host    string
	port    int
	open    bool
	verbose bool
}

// NewServeCommand creates a new serve command with its defaults.
func NewServeCommand() *ServeCommand {
	return &ServeCommand{format: "css"}
}

// CreateCobraCommand creates the cobra command for the preview server.
func (s *ServeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [path...]",
		Short: "Serve a live-reloading preview of a corpus's rendered stylesheet",
		Long: `Serve renders a corpus the same way build does and serves the result at
"/", auto-reloading connected browsers whenever a watched corpus file
changes (service.Watcher feeds the dev server's websocket hub).`,
		RunE: s.runServe,
	}

	cmd.Flags().StringVarP(&s.file, "file", "f", "", "Corpus file or directory (repeatable via positional args)")
	cmd.Flags().StringVar(&s.format, "format", "css", "Output dialect: css, scss, tailwind, tokens, md, json, dot")
	cmd.Flags().StringVarP(&s.theme, "theme", "t", "", "Resolve token themeOverrides for this theme")
	cmd.Flags().StringVar(&s.host, "host", "", "Host to bind (defaults to config, falling back to 127.0.0.1)")
	cmd.Flags().IntVar(&s.port, "port", 0, "Port to bind (defaults to config, falling back to 8420)")
	cmd.Flags().BoolVar(&s.open, "open", false, "Open the preview in a browser once the server starts")

	return cmd
}

func (s *ServeCommand) runServe(cmd *cobra.Command, args []string) error {
	s.verbose, _ = cmd.Flags().GetBool("verbose")

	paths := resolvePaths(s.file, args)
	if len(paths) == 0 {
		return fmt.Errorf("no input path given: pass --file/-f or a path argument")
	}

	cfg, err := config.LoadConfig("", paths[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	host := s.host
	if host == "" {
		host = cfg.Serve.Host
	}
	port := s.port
	if port == 0 {
		port = cfg.Serve.Port
	}

	engine := newEngine(s.verbose)
	useCase := app.NewAnalyzeUseCaseBuilder().
		WithEngine(engine).
		WithWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		WithLogger(logging.NewDomainLogger()).
		Build()

	req := app.AnalyzeRequest{
		Paths:           paths,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Theme:           s.theme,
		Config:          cfg.Analysis.ToDomain(),
		Format:          domain.OutputFormat(s.format),
	}

	render := func() (string, error) {
		resp, err := useCase.Execute(cmd.Context(), req)
		if err != nil {
			return "", err
		}
		return useCase.Render(resp, domain.OutputFormat(s.format))
	}

	dev := service.NewDevServer(fmt.Sprintf("%s:%d", host, port), render)

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

	go func() {
		_ = watcher.Watch(ctx, func(path string) {
			logging.L().Info().Str("path", path).Msg("corpus changed, reloading preview")
			dev.Reload()
		})
	}()

	url := fmt.Sprintf("http://%s:%d", host, port)
	fmt.Fprintf(cmd.ErrOrStderr(), "serving preview at %s (Ctrl-C to stop)\n", url)
	if s.open {
		_ = service.OpenBrowser(url)
	}

	return dev.ListenAndServe(ctx)
}

// NewServeCmd creates and returns the serve cobra command.
func NewServeCmd() *cobra.Command {
	return NewServeCommand().CreateCobraCommand()
}
