package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// numeralRe matches digits with at most one decimal point. A bare "." does
// not count.
var numeralRe = regexp.MustCompile(`\d+(?:\.\d*)?|\.\d+`)

var amountReplacer = strings.NewReplacer(",", "", "$", "")

// ParseSettlementAmount converts free-text settlement descriptions such as
// "$1.5 million" or "1,200,000" to a dollar value. Unparseable text yields 0.
func ParseSettlementAmount(text string) float64 {
	if text == "" || text == "nan" {
		return 0
	}

	s := amountReplacer.Replace(strings.ToLower(text))

	multiplier := 1.0
	switch {
	case strings.Contains(s, "billion"):
		multiplier = 1e9
	case strings.Contains(s, "million"):
		multiplier = 1e6
	}

	m := numeralRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v * multiplier
}
