package app

import "github.com/stylescan/stylescan/service"

// ResolveCorpusPaths resolves a mix of corpus files and directories into a
// flat list of YAML corpus files, grounded on pyscn's ResolveFilePaths
// (delegates to the reader's directory-collection pass, trusting it to
// apply the include/exclude filters and skip non-corpus files).
func ResolveCorpusPaths(reader *service.CorpusReaderImpl, paths, includePatterns, excludePatterns []string) ([]string, error) {
	if err := reader.ValidatePaths(paths); err != nil {
		return nil, err
	}
	return reader.CollectCorpusFiles(paths, includePatterns, excludePatterns)
}
