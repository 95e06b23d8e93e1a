package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stylescan/stylescan/internal/config"
)

// generateTimestampedFileName generates a filename with a timestamp suffix.
func generateTimestampedFileName(command, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s.%s", command, timestamp, extension)
}

// resolveOutputDirectory determines the output directory from configuration,
// defaulting to a tool-specific hidden directory under the current working
// directory so generated stylesheets never land inside the analyzed corpus.
func resolveOutputDirectory(targetPath string) (string, error) {
	cfg, err := config.LoadConfig("", targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg != nil && cfg.Output.Directory != "" {
		return cfg.Output.Directory, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".stylescan", "reports"), nil
	}
	return filepath.Join(cwd, ".stylescan", "reports"), nil
}

// generateOutputFilePath combines filename generation and directory
// resolution, creating the directory if it does not already exist.
func generateOutputFilePath(command, extension, targetPath string) (string, error) {
	filename := generateTimestampedFileName(command, extension)
	outputDir, err := resolveOutputDirectory(targetPath)
	if err != nil {
		return "", err
	}
	if mkErr := os.MkdirAll(outputDir, 0o755); mkErr != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, mkErr)
	}
	return filepath.Join(outputDir, filename), nil
}

// getTargetPathFromArgs extracts the first argument as target path, or
// returns empty string when none was given.
func getTargetPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// extensionForFormat maps an output dialect to the file extension its
// rendered content should carry when written to disk.
func extensionForFormat(format string) string {
	switch format {
	case "css", "scss":
		return format
	case "tailwind":
		return "js"
	case "tokens":
		return "css"
	case "md":
		return "md"
	case "json":
		return "json"
	case "dot":
		return "dot"
	default:
		return "txt"
	}
}
