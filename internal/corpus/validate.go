package corpus

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/stylescan/stylescan/domain"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// tokenDTO is the intermediate shape validator/v10 checks a token entry
// against. corpus.Load already lowered tokens into plain strings; this
// layer re-derives just enough structure to express "must be a non-empty
// value" as a struct tag instead of a hand-rolled if, matching the
// validator-struct-tag idiom the pack's tomtom215/leanlp repos use for
// request validation.
type tokenDTO struct {
	Name  string `validate:"required"`
	Value string `validate:"required"`
}

// Validate checks a corpus file's schema-level well-formedness: the raw
// document's `version` field (if present) and each token's value shape.
// Violations are reported as non-fatal domain.ValidationWarning entries
// (spec.md §7: "Warnings produced by schema validation... never suppress a
// successful analysis"), never as errors.
func Validate(path string) ([]domain.ValidationWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	root, err := LoadRoot(data)
	if err != nil {
		return nil, err
	}

	var warnings []domain.ValidationWarning

	if version, ok := root.Get("version"); ok {
		if !version.IsScalar() || !semverPattern.MatchString(version.Scalar) {
			warnings = append(warnings, domain.ValidationWarning{
				Path:    "version",
				Message: "version should be a semver triple, e.g. \"1.0.0\"",
			})
		}
	}

	validate := validator.New()
	if tokens, ok := root.Get("tokens"); ok && tokens.Kind == KindMapping {
		for pair := tokens.Mapping.Oldest(); pair != nil; pair = pair.Next() {
			value, hasValue := scalarTokenValue(pair.Value, "")
			if !hasValue {
				warnings = append(warnings, domain.ValidationWarning{
					Path:    "tokens." + pair.Key,
					Message: "token has no usable scalar value",
				})
				continue
			}
			dto := tokenDTO{Name: pair.Key, Value: value}
			if err := validate.Struct(dto); err != nil {
				warnings = append(warnings, domain.ValidationWarning{
					Path:    "tokens." + pair.Key,
					Message: fmt.Sprintf("failed schema validation: %v", err),
				})
			}
		}
	}

	return warnings, nil
}
