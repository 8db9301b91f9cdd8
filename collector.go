package unusedcss

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// CollectFiles walks root recursively and returns every file whose extension
// is in extensions. Extensions are compared case-sensitively without the
// leading dot. Unreadable directories are skipped silently. Symbolic links
// to directories are not descended into.
func CollectFiles(root string, extensions []string, respectGitignore bool) (FileSet, error) {
	absRoot, err := checkDirectory(root)
	if err != nil {
		return FileSet{}, err
	}
	return collectFiles(absRoot, extensions, respectGitignore)
}

// collectFiles walks an absolute root already validated by checkDirectory
func collectFiles(absRoot string, extensions []string, respectGitignore bool) (FileSet, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[ext] = true
	}

	var gi *ignore.GitIgnore
	if respectGitignore {
		gi = loadGitIgnore(absRoot)
	}

	set := FileSet{Root: absRoot}
	err := doublestar.GlobWalk(os.DirFS(absRoot), "**", func(path string, d fs.DirEntry) error {
		if !allowed[fileExtension(path)] {
			return nil
		}
		if gi != nil && gi.MatchesPath(path) {
			return nil
		}
		full := filepath.Join(absRoot, filepath.FromSlash(path))
		// With WithNoFollow a link to a directory is reported as a file
		if d != nil && d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(full); err != nil || info.IsDir() {
				return nil
			}
		}
		set.Files = append(set.Files, full)
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return FileSet{}, fmt.Errorf("walk %s: %w", absRoot, err)
	}

	return set, nil
}

// checkDirectory verifies root is an existing directory and returns its absolute path
func checkDirectory(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInvalidDirectory, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, root, err)
	}
	return abs, nil
}

// fileExtension returns the extension of path without its leading dot
func fileExtension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// loadGitIgnore compiles <root>/.gitignore.
// A missing or unreadable file yields nil, which disables the filter.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
