package report

import (
	"fmt"
	"strings"
)

// PrintR renders v the way PHP's print_r does. Maps and string slices become
// "Array" blocks with bracketed keys, true prints as 1, and false and nil
// print as nothing.
func PrintR(v any) string {
	var b strings.Builder
	printValue(&b, v, 0)
	return b.String()
}

func printValue(b *strings.Builder, v any, indent int) {
	switch val := v.(type) {
	case Map:
		b.WriteString("Array\n")
		printBlock(b, val, indent)
	case []string:
		entries := make(Map, len(val))
		for i, s := range val {
			entries[i] = Entry{Key: fmt.Sprint(i), Value: s}
		}
		b.WriteString("Array\n")
		printBlock(b, entries, indent)
	case nil:
	case bool:
		if val {
			b.WriteString("1")
		}
	case string:
		b.WriteString(val)
	default:
		fmt.Fprint(b, val)
	}
}

// printBlock writes the parenthesized body of an array at the given indent
func printBlock(b *strings.Builder, entries Map, indent int) {
	pad := strings.Repeat(" ", indent)
	b.WriteString(pad + "(\n")
	for _, e := range entries {
		b.WriteString(pad + "    [" + e.Key + "] => ")
		printValue(b, e.Value, indent+8)
		b.WriteString("\n")
	}
	b.WriteString(pad + ")\n")
}
