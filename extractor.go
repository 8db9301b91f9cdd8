package unusedcss

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// selectorPattern matches a class rule: a dot, a word character, more word
// characters or hyphens, optional whitespace, then an opening brace.
// Only the last class of a compound selector (".a.b {") is captured.
var selectorPattern = regexp.MustCompile(`\.(\w[\w\-]*)\s*{`)

// ExtractSelectors reads every style file and returns the union of the class
// selectors they declare. A file that cannot be read fails the whole
// extraction.
func ExtractSelectors(files FileSet, skipComments bool) (SelectorSet, error) {
	selectors := SelectorSet{}
	seen := make(map[string]bool)

	for _, file := range files.Files {
		// #nosec G304 - path comes from the collected file set
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read style file: %w", err)
		}

		text := string(content)
		if skipComments {
			text = stripComments(text)
		}

		for _, name := range matchSelectors(text) {
			if !seen[name] {
				seen[name] = true
				selectors = append(selectors, name)
			}
		}
	}

	return selectors, nil
}

// matchSelectors returns the selector names declared in content, in order,
// duplicates included
func matchSelectors(content string) []string {
	matches := selectorPattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// stripComments removes /* */ comments and re-emits every other token verbatim.
// Comment markers inside string literals are left alone.
func stripComments(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		if tt == css.CommentToken {
			continue
		}
		out.Write(text)
	}

	return out.String()
}
