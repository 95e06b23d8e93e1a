package service

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/stylescan/stylescan/domain"
)

// CorpusReaderImpl discovers and reads YAML corpus files from the paths a
// caller names, honoring include/exclude glob patterns the way pyscn's
// FileReaderImpl discovers Python sources — but glob matching is delegated
// to doublestar instead of a hand-rolled ** matcher.
type CorpusReaderImpl struct{}

// NewCorpusReader creates a new corpus file reader service.
func NewCorpusReader() *CorpusReaderImpl {
	return &CorpusReaderImpl{}
}

// CollectCorpusFiles recursively finds all YAML corpus files under the given
// paths, filtered by include/exclude glob patterns (doublestar syntax, so
// "**/*.yaml" matches any depth).
func (f *CorpusReaderImpl) CollectCorpusFiles(paths []string, includePatterns, excludePatterns []string) ([]string, error) {
	for _, pattern := range includePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, domain.NewConfigError("invalid include pattern: "+pattern, nil)
		}
	}
	for _, pattern := range excludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, domain.NewConfigError("invalid exclude pattern: "+pattern, nil)
		}
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if info.IsDir() {
			dirFiles, err := f.collectFromDirectory(path, includePatterns, excludePatterns)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else if f.isValidCorpusFile(path) && f.shouldInclude(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
	}
	return files, nil
}

// ReadFile reads the raw bytes of a corpus file.
func (f *CorpusReaderImpl) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return content, nil
}

func (f *CorpusReaderImpl) isValidCorpusFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func (f *CorpusReaderImpl) collectFromDirectory(dirPath string, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	walkFunc := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if f.shouldSkipDirectory(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if f.isValidCorpusFile(path) && f.shouldInclude(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
		return nil
	}

	if err := filepath.WalkDir(dirPath, walkFunc); err != nil {
		return nil, err
	}
	return files, nil
}

func (f *CorpusReaderImpl) shouldInclude(path string, includePatterns, excludePatterns []string) bool {
	rel := filepath.ToSlash(path)

	for _, pattern := range excludePatterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return false
		}
	}
	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

func (f *CorpusReaderImpl) shouldSkipDirectory(name string) bool {
	switch strings.ToLower(name) {
	case "node_modules", "dist", "build", ".git":
		return true
	default:
		return false
	}
}

// ValidatePaths checks that every path exists and is accessible.
func (f *CorpusReaderImpl) ValidatePaths(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return domain.NewFileNotFoundError(path, err)
			}
			return domain.NewInvalidInputError("cannot access path: "+path, err)
		}
	}
	return nil
}
