package oracle

import (
	"strings"
)

// ExtractProof pulls the proof block out of a model response. Models wrap
// answers in markdown fences or surround them with prose, so the longest
// run of numbered lines wins. Returns "" when the response holds no
// numbered line at all.
func ExtractProof(response string) string {
	var best, current []string

	flush := func() {
		if len(current) > len(best) {
			best = current
		}
		current = nil
	}

	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		if isNumberedLine(trimmed) {
			current = append(current, trimmed)
			continue
		}
		flush()
	}
	flush()

	if len(best) == 0 {
		return ""
	}
	return strings.Join(best, "\n") + "\n"
}

// isNumberedLine reports whether s starts with digits followed by a space,
// the shape of a proof line.
func isNumberedLine(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && s[i] == ' '
}
