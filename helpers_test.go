package unusedcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under root
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// fileSet collects root with the given extensions and fails the test on error
func fileSet(t *testing.T, root string, extensions ...string) FileSet {
	t.Helper()
	set, err := CollectFiles(root, extensions, false)
	require.NoError(t, err)
	return set
}
