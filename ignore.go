package unusedcss

import (
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreSpec holds the selectors and source files excluded from a usage scan.
// It is built once and only read afterwards.
type IgnoreSpec struct {
	root      string
	selectors map[string]bool
	files     map[string]bool   // Absolute paths and root-relative slash paths
	patterns  *ignore.GitIgnore // Entries containing glob characters
}

// NewIgnoreSpec builds an IgnoreSpec for files under sourceRoot.
//
// A plain file entry matches when it names the same file as an absolute path,
// a path relative to the working directory, or a path relative to sourceRoot.
// Entries containing *, ? or [ are gitignore-style patterns matched against
// paths relative to sourceRoot.
func NewIgnoreSpec(selectors, files []string, sourceRoot string) *IgnoreSpec {
	spec := &IgnoreSpec{
		root:      sourceRoot,
		selectors: make(map[string]bool, len(selectors)),
		files:     make(map[string]bool, len(files)),
	}

	for _, s := range selectors {
		spec.selectors[s] = true
	}

	var patterns []string
	for _, f := range files {
		if f == "" {
			continue
		}
		if strings.ContainsAny(f, "*?[") {
			patterns = append(patterns, f)
			continue
		}

		spec.files[filepath.ToSlash(filepath.Clean(f))] = true
		if filepath.IsAbs(f) {
			spec.files[filepath.Clean(f)] = true
			continue
		}
		if abs, err := filepath.Abs(f); err == nil {
			spec.files[abs] = true
		}
		if sourceRoot != "" {
			spec.files[filepath.Join(sourceRoot, f)] = true
		}
	}

	if len(patterns) > 0 {
		spec.patterns = ignore.CompileIgnoreLines(patterns...)
	}

	return spec
}

// IgnoresSelector reports whether name is on the ignored-selectors list
func (s *IgnoreSpec) IgnoresSelector(name string) bool {
	return s.selectors[name]
}

// IgnoresFile reports whether the absolute path is excluded from scanning
func (s *IgnoreSpec) IgnoresFile(path string) bool {
	if s.files[path] {
		return true
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if s.files[rel] {
		return true
	}

	return s.patterns != nil && s.patterns.MatchesPath(rel)
}
