package narrative

import "strings"

// dynamicLengths derives min/max output lengths from the input word count so
// short inputs never hit a degenerate length configuration: max is capped at
// 80% of the input words (floor 48), min at 40% (floor 24), and min is pulled
// below max when the two collide.
func dynamicLengths(text string, configuredMin, configuredMax int) (minLen, maxLen int) {
	wc := len(strings.Fields(text))
	if wc < 1 {
		wc = 1
	}

	maxLen = intMin(configuredMax, intMax(48, int(float64(wc)*0.8)))
	minLen = intMin(configuredMin, intMax(24, int(float64(wc)*0.4)))
	if minLen >= maxLen {
		minLen = intMax(16, maxLen-8)
	}
	return minLen, maxLen
}

func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
