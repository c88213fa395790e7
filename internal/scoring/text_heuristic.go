package scoring

import "strings"

// Free-text questions ask the respondent to enumerate systems without
// recovery coverage. ScoreFreeText estimates how many distinct items the
// answer mentions by counting separators (commas, semicolons, the word
// "and") and maps the count to descending scores. This is deliberately an
// approximate length heuristic, not language analysis; keep the thresholds
// stable, downstream reports depend on them.
//
//	no gaps reported           -> 4
//	single item / 0-1 separators -> 3
//	2-4 separators             -> 2
//	5-9 separators             -> 1
//	10+ separators             -> 0
func ScoreFreeText(answer string) int {
	trimmed := strings.TrimSpace(answer)
	lower := strings.ToLower(trimmed)

	if trimmed == "" || isNoGapsAnswer(lower) {
		return 4
	}

	separators := strings.Count(trimmed, ",") +
		strings.Count(trimmed, ";") +
		strings.Count(trimmed, " and ")

	switch {
	case separators == 0 && len(trimmed) < 50:
		return 3
	case separators <= 1:
		return 3
	case separators <= 4:
		return 2
	case separators <= 9:
		return 1
	default:
		return 0
	}
}

// noGapsAnswers are negative-indicator answers meaning no uncovered systems.
var noGapsAnswers = map[string]struct{}{
	"none":        {},
	"n/a":         {},
	"nil":         {},
	"0":           {},
	"no":          {},
	"no systems":  {},
	"all covered": {},
}

func isNoGapsAnswer(lower string) bool {
	_, ok := noGapsAnswers[lower]
	return ok
}
