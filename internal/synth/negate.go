package synth

import (
	"regexp"
	"strconv"
	"strings"
)

// modalSwaps is the ordered substitution table for statement negation.
// The first pair whose left side occurs in the sentence wins; only the
// first occurrence is replaced.
var modalSwaps = [][2]string{
	{"应当", "不得"},
	{"必须", "可以"},
	{"可以", "不得"},
	{"不得", "可以"},
	{"禁止", "允许"},
}

// negationSuffix marks a sentence that resisted both negation heuristics
const negationSuffix = "（本句可能为错误陈述）"

var digitRunRe = regexp.MustCompile(`\d+`)

// NegateStatement produces a (probably) false variant of a legal
// statement. Precedence is strict: modal-word swap, then first digit
// run incremented by one, then a literal disclaimer suffix. Only one
// transform is ever applied.
func NegateStatement(s string) string {
	for _, swap := range modalSwaps {
		if strings.Contains(s, swap[0]) {
			return strings.Replace(s, swap[0], swap[1], 1)
		}
	}
	if loc := digitRunRe.FindStringIndex(s); loc != nil {
		if num, err := strconv.Atoi(s[loc[0]:loc[1]]); err == nil {
			return s[:loc[0]] + strconv.Itoa(num+1) + s[loc[1]:]
		}
	}
	return s + negationSuffix
}
