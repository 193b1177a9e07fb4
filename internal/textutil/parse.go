package textutil

import "strings"

// SplitLines splits multi-line input into trimmed, non-empty lines.
func SplitLines(text string) []string {
	return splitTrimmed(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// SplitTags splits comma-separated input into trimmed, non-empty tags.
func SplitTags(text string) []string {
	return splitTrimmed(strings.Split(text, ","))
}

// Clean trims every entry and drops the empty ones. The result is never nil.
func Clean(values []string) []string {
	return splitTrimmed(values)
}

func splitTrimmed(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
