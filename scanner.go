package unusedcss

import (
	"fmt"
	"os"
	"strings"
)

// sourceCache reads each source file at most once
type sourceCache struct {
	contents map[string]string
}

func newSourceCache() *sourceCache {
	return &sourceCache{contents: make(map[string]string)}
}

// get returns the text of file, reading it on first use
func (c *sourceCache) get(file string) (string, error) {
	if text, ok := c.contents[file]; ok {
		return text, nil
	}

	// #nosec G304 - path comes from the collected file set
	content, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}

	text := string(content)
	c.contents[file] = text
	return text, nil
}

// FindUnused returns the selectors that occur nowhere in the eligible source
// files.
//
// A selector counts as used when its name appears as a plain substring of any
// file not excluded by ignore, so "btn" is used by "btn-primary" too. The
// search for a selector stops at its first hit. Ignored selectors are never
// reported.
func FindUnused(selectors SelectorSet, sources FileSet, ignore *IgnoreSpec) (SelectorSet, error) {
	if ignore == nil {
		ignore = NewIgnoreSpec(nil, nil, sources.Root)
	}

	eligible := make([]string, 0, len(sources.Files))
	for _, file := range sources.Files {
		if !ignore.IgnoresFile(file) {
			eligible = append(eligible, file)
		}
	}

	cache := newSourceCache()
	unused := SelectorSet{}

	for _, selector := range selectors {
		if ignore.IgnoresSelector(selector) {
			continue
		}

		used, err := isUsed(selector, eligible, cache)
		if err != nil {
			return nil, err
		}
		if !used {
			unused = append(unused, selector)
		}
	}

	return unused, nil
}

// isUsed searches files in order and stops at the first occurrence
func isUsed(selector string, files []string, cache *sourceCache) (bool, error) {
	for _, file := range files {
		text, err := cache.get(file)
		if err != nil {
			return false, err
		}
		if strings.Contains(text, selector) {
			return true, nil
		}
	}
	return false, nil
}
