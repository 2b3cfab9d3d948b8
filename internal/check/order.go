package check

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// FieldOrderDiff renders the edit from actual to canonical, one field per
// line, prefixed with "  " (kept), "- " (move away) or "+ " (move here).
func FieldOrderDiff(actual, canonical []string) string {
	dmp := diffmatchpatch.New()

	// Line mode: each field name becomes one diff token
	a, b, lines := dmp.DiffLinesToChars(joinLines(actual), joinLines(canonical))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, name := range strings.SplitAfter(d.Text, "\n") {
			if name == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(name)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func joinLines(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, "\n") + "\n"
}
