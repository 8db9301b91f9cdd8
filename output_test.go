package unusedcss

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResult mirrors a run over one stylesheet and one Vue file
func sampleResult(mode OutputMode, extended bool, unused SelectorSet) *Result {
	config := DefaultConfig()
	config.CSSDir = "/project/css"
	config.SrcDir = "/project/src"
	config.OutputMode = mode
	config.ExtendedMode = extended

	return &Result{
		Selectors: SelectorSet{"btn", "unused-x"},
		Unused:    unused,
		StyleFiles: FileSet{
			Root:  "/project/css",
			Files: []string{"/project/css/app.css"},
		},
		SourceFiles: FileSet{
			Root:  "/project/src",
			Files: []string{"/project/src/components/App.vue"},
		},
		Config: config,
	}
}

const expectedSummary = `---------------------------------
Selectors total:   2
Unused total:      1
Searched in files: 1 [vue, js, twig]
CSS files total:   1 [css, scss]
---------------------------------
`

func TestWriteOutput_Default(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputDefault, false, SelectorSet{"unused-x"})))

	assert.Equal(t, expectedSummary+"\nUnused CSS classes:\n  .unused-x\n", buf.String())
}

func TestWriteOutput_DefaultNoUnused(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputDefault, false, SelectorSet{})))

	out := buf.String()
	assert.Contains(t, out, "Unused total:      0\n")
	assert.True(t, strings.HasSuffix(out, "---------------------------------\nNo unused CSS classes found.\n"), out)
	assert.NotContains(t, out, "Unused CSS classes:")
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputJSON, false, SelectorSet{"unused-x"})))

	assert.Equal(t, expectedSummary+"\nUnused CSS classes:\n[\n    \".unused-x\"\n]\n", buf.String())
}

func TestWriteOutput_UnusedOnly(t *testing.T) {
	tests := []struct {
		name   string
		unused SelectorSet
		want   string
	}{
		{name: "one unused", unused: SelectorSet{"unused-x"}, want: "[\n    \".unused-x\"\n]"},
		{name: "none unused", unused: SelectorSet{}, want: "[]"},
		{name: "nil unused", unused: nil, want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleResult(OutputUnusedOnly, false, tt.unused)))
			assert.Equal(t, tt.want, buf.String())

			var decoded []string
			require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
			assert.Equal(t, tt.unused.Dotted(), decoded)
		})
	}
}

func TestWriteOutput_UnusedOnlyExtended(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputUnusedOnly, true, SelectorSet{"unused-x"})))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.NotContains(t, out, "Selectors total")

	var decoded struct {
		Selectors       []string `json:"selectors"`
		SourceFiles     []string `json:"sourceFiles"`
		CSSFiles        []string `json:"cssFiles"`
		UnusedSelectors []string `json:"unusedSelectors"`
		Config          struct {
			ExtendedMode bool    `json:"extendedMode"`
			OutputMode   *string `json:"outputMode"`
			Extensions   struct {
				CSS    []string `json:"css"`
				Source []string `json:"source"`
			} `json:"extensions"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []string{".btn", ".unused-x"}, decoded.Selectors)
	assert.Equal(t, []string{"components/App.vue"}, decoded.SourceFiles)
	assert.Equal(t, []string{"app.css"}, decoded.CSSFiles)
	assert.Equal(t, []string{".unused-x"}, decoded.UnusedSelectors)
	assert.True(t, decoded.Config.ExtendedMode)
	require.NotNil(t, decoded.Config.OutputMode)
	assert.Equal(t, "unusedOnly", *decoded.Config.OutputMode)
	assert.Equal(t, []string{"css", "scss"}, decoded.Config.Extensions.CSS)

	// Keys keep their documented order
	assert.Less(t, strings.Index(out, `"selectors"`), strings.Index(out, `"sourceFiles"`))
	assert.Less(t, strings.Index(out, `"cssFiles"`), strings.Index(out, `"config"`))
	assert.Less(t, strings.Index(out, `"config"`), strings.Index(out, `"unusedSelectors"`))
}

func TestWriteOutput_JSONExtended(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputJSON, true, SelectorSet{"unused-x"})))

	out := buf.String()
	dumpEnd := strings.Index(out, "}\n---------------------------------")
	require.Positive(t, dumpEnd, out)

	var dump map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out[:dumpEnd+1]), &dump))
	assert.Contains(t, dump, "selectors")
	assert.Contains(t, dump, "config")
	assert.NotContains(t, dump, "unusedSelectors")
	assert.True(t, strings.HasSuffix(out, "[\n    \".unused-x\"\n]\n"))
}

func TestWriteOutput_DefaultExtended(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(OutputDefault, true, SelectorSet{"unused-x"})))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Array\n(\n    [selectors] => Array\n        (\n            [0] => .btn\n            [1] => .unused-x\n        )\n\n"), out)
	assert.Contains(t, out, "    [sourceFiles] => Array\n        (\n            [0] => components/App.vue\n        )\n")
	assert.Contains(t, out, "            [extendedMode] => 1\n")
	assert.NotContains(t, out, "[unusedSelectors]")

	// The dump is followed by a blank line, then the summary
	assert.Contains(t, out, ")\n\n"+expectedSummary)
	assert.True(t, strings.HasSuffix(out, "  .unused-x\n"))
}

func TestWriteOutput_Colors(t *testing.T) {
	result := sampleResult(OutputDefault, false, SelectorSet{"unused-x"})
	result.Config.UseColors = true

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result))

	// Content is unchanged regardless of whether the terminal supports color
	out := buf.String()
	assert.Contains(t, out, "Selectors total:")
	assert.Contains(t, out, "Unused CSS classes:")
	assert.Contains(t, out, "  .unused-x\n")
}

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		name string
		want OutputMode
	}{
		{name: "json", want: OutputJSON},
		{name: "unusedOnly", want: OutputUnusedOnly},
		{name: "", want: OutputDefault},
		{name: "false", want: OutputDefault},
		{name: "JSON", want: OutputDefault},
		{name: "xml", want: OutputDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputMode(tt.name))
		})
	}
}
