package datemath

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var (
	monthAlt   = alternation(monthNames)
	weekdayAlt = alternation(weekdays)
	numberAlt  = `\d+|` + alternation(numberWords)

	isoDatePattern    = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDatePattern  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`)
	monthFirstPattern = regexp.MustCompile(`\b(?:next\s+)?(` + monthAlt + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)
	dayFirstPattern   = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)\b(?:,?\s+(\d{4})\b)?`)
	inDaysPattern     = regexp.MustCompile(`\bin\s+(` + numberAlt + `)\s+(days?|weeks?|months?)\b`)
	inClockPattern    = regexp.MustCompile(`\bin\s+(` + numberAlt + `)\s*(hours?|hrs?|h|minutes?|mins?)(\d{2})?\b`)
	durationPattern   = regexp.MustCompile(`\b(?:for|lasting)\s+(?:about\s+)?(?:` + numberAlt + `)\s*(?:hours?|hrs?|h(?:\d{2})?|minutes?|mins?)\b`)
	nextWeekPattern   = regexp.MustCompile(`\bnext\s+week\b`)
	weekdayPattern    = regexp.MustCompile(`\b(?:(this|next|on)\s+)?(` + weekdayAlt + `)\b`)

	noonPattern       = regexp.MustCompile(`\b(?:noon|midday)\b`)
	midnightPattern   = regexp.MustCompile(`\bmidnight\b`)
	meridiemPattern   = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)(?:\W|$)`)
	hourSuffixPattern = regexp.MustCompile(`\b(\d{1,2})h(\d{2})?\b`)
	colonPattern      = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	atHourPattern     = regexp.MustCompile(`\bat\s+(\d{1,2})\b`)
	eveningHint       = regexp.MustCompile(`\b(?:tonight|in the (?:afternoon|evening)|at night)\b`)
)

// relativeDays is ordered so that longer phrases win over their substrings.
var relativeDays = []struct {
	pattern *regexp.Regexp
	offset  int
}{
	{regexp.MustCompile(`\bday after tomorrow\b`), 2},
	{regexp.MustCompile(`\btomorrow\b`), 1},
	{regexp.MustCompile(`\b(?:today|tonight)\b`), 0},
	{regexp.MustCompile(`\byesterday\b`), -1},
}

// alternation joins map keys longest first so regexp prefers full words.
func alternation[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return strings.Join(keys, "|")
}
