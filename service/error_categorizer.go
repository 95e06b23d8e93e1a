package service

import "strings"

// ErrorCategory groups a failure by what the user should do about it,
// mirroring pyscn's ErrorCategorizerImpl pattern-matching approach.
type ErrorCategory string

const (
	ErrorCategoryInput      ErrorCategory = "input"
	ErrorCategoryConfig     ErrorCategory = "config"
	ErrorCategoryValidation ErrorCategory = "validation"
	ErrorCategoryOutput     ErrorCategory = "output"
	ErrorCategoryProcessing ErrorCategory = "processing"
	ErrorCategoryUnknown    ErrorCategory = "unknown"
)

// CategorizedError pairs an error with the category it was sorted into and
// a short user-facing message.
type CategorizedError struct {
	Category ErrorCategory
	Message  string
	Original error
}

func (e *CategorizedError) Error() string {
	return e.Message + ": " + e.Original.Error()
}

func (e *CategorizedError) Unwrap() error { return e.Original }

// ErrorCategorizer sorts engine/CLI errors into categories so the CLI can
// print targeted recovery suggestions instead of a bare stack trace.
type ErrorCategorizer struct {
	patterns map[ErrorCategory][]string
}

// NewErrorCategorizer creates a ready-to-use categorizer.
func NewErrorCategorizer() *ErrorCategorizer {
	return &ErrorCategorizer{patterns: defaultErrorPatterns()}
}

func defaultErrorPatterns() map[ErrorCategory][]string {
	return map[ErrorCategory][]string{
		ErrorCategoryInput: {
			"no files found", "path", "directory", "file not found",
			"cannot access", "permission denied",
		},
		ErrorCategoryConfig: {
			"config", "configuration", "invalid format", "toml", "invalid port",
		},
		ErrorCategoryValidation: {
			"schema", "validation", "version", "required field",
		},
		ErrorCategoryOutput: {
			"write", "output", "cannot create", "failed to generate",
		},
		ErrorCategoryProcessing: {
			"parse", "yaml", "analysis", "failed to analyze", "corpus",
		},
	}
}

// Categorize sorts err into a category by matching its message against a
// small set of substrings, falling back to Unknown.
func (ec *ErrorCategorizer) Categorize(err error) *CategorizedError {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for category, patterns := range ec.patterns {
		for _, p := range patterns {
			if strings.Contains(msg, p) {
				return &CategorizedError{Category: category, Message: ec.categoryMessage(category), Original: err}
			}
		}
	}
	return &CategorizedError{Category: ErrorCategoryUnknown, Message: err.Error(), Original: err}
}

func (ec *ErrorCategorizer) categoryMessage(category ErrorCategory) string {
	switch category {
	case ErrorCategoryInput:
		return "failed to process input corpus files"
	case ErrorCategoryConfig:
		return "configuration file or flag error"
	case ErrorCategoryValidation:
		return "corpus failed schema validation"
	case ErrorCategoryOutput:
		return "failed to generate or write output"
	case ErrorCategoryProcessing:
		return "error during style analysis"
	default:
		return "an unexpected error occurred"
	}
}

// RecoverySuggestions returns short, actionable hints for a category.
func (ec *ErrorCategorizer) RecoverySuggestions(category ErrorCategory) []string {
	switch category {
	case ErrorCategoryInput:
		return []string{
			"Check that the path exists and contains .yaml/.yml corpus files",
			"Try: stylescan analyze . --verbose to see file discovery",
		}
	case ErrorCategoryConfig:
		return []string{
			"Verify .stylescan.toml syntax and values",
			"Try: stylescan init to generate a starting config",
		}
	case ErrorCategoryValidation:
		return []string{
			"Check the corpus's `version` field and token value shapes",
			"Validation warnings don't fail analysis; see the warnings table",
		}
	case ErrorCategoryOutput:
		return []string{
			"Check write permissions for the output path",
			"Ensure the output directory exists",
		}
	case ErrorCategoryProcessing:
		return []string{
			"Check the corpus YAML for malformed mappings or sequences",
			"Run with --verbose for a per-stage breakdown",
		}
	default:
		return []string{"Run with --verbose for detailed error information"}
	}
}
