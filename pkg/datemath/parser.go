package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// impliedHour is used when a phrase names a day but no clock time.
const impliedHour = 12

// Parser resolves English date/time phrases to absolute instants.
// It never consults anything but the text and the reference instant.
type Parser struct {
	location *time.Location
}

var offsetPattern = regexp.MustCompile(`^(?:UTC|GMT)?([+-])(\d{1,2}):?(\d{2})?$`)

// NewParser creates a parser for the given zone. The zone is either a fixed
// UTC offset such as "-03:00" / "+0700" / "Z" or an IANA name.
func NewParser(zone string) (*Parser, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return nil, err
	}
	return &Parser{location: loc}, nil
}

// LoadZone turns a fixed offset or IANA name into a *time.Location.
// Offsets produce a time.FixedZone named after the offset itself.
func LoadZone(zone string) (*time.Location, error) {
	zone = strings.TrimSpace(zone)
	switch strings.ToUpper(zone) {
	case "", "Z", "UTC", "GMT":
		return time.UTC, nil
	}

	if m := offsetPattern.FindStringSubmatch(zone); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil, fmt.Errorf("invalid utc offset %q", zone)
		}
		secs := hours*3600 + minutes*60
		if m[1] == "-" {
			secs = -secs
		}
		return time.FixedZone(fmt.Sprintf("%s%02d:%02d", m[1], hours, minutes), secs), nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}
	return loc, nil
}

// Location returns the zone results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve finds a date and/or time phrase in text and anchors it to ref.
// Dates without a year move to the following year when already past, and
// bare clock times move to tomorrow when already past. Returns false when
// no temporal phrase is recognised.
func (p *Parser) Resolve(text string, ref time.Time) (time.Time, bool) {
	text = normalize(text)
	if text == "" {
		return time.Time{}, false
	}
	ref = ref.In(p.location)

	if d, ok := parseInDuration(text); ok {
		return ref.Add(d), true
	}
	text = durationPattern.ReplaceAllString(text, " ")

	date, hasDate := p.parseDate(text, ref)
	clock, hasClock := parseClock(text)

	switch {
	case hasDate && hasClock:
		return time.Date(date.Year(), date.Month(), date.Day(), clock.hour, clock.minute, 0, 0, p.location), true
	case hasDate:
		return time.Date(date.Year(), date.Month(), date.Day(), impliedHour, 0, 0, 0, p.location), true
	case hasClock:
		t := time.Date(ref.Year(), ref.Month(), ref.Day(), clock.hour, clock.minute, 0, 0, p.location)
		if t.Before(ref) {
			t = t.AddDate(0, 0, 1)
		}
		return t, true
	}

	return time.Time{}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's zone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// parseDate tries the date patterns from most to least specific.
func (p *Parser) parseDate(text string, ref time.Time) (time.Time, bool) {
	today := p.StartOfDay(ref)

	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return p.civilDate(y, mo, d)
	}

	if m := monthFirstPattern.FindStringSubmatch(text); m != nil {
		d, _ := strconv.Atoi(m[2])
		return p.monthDayDate(monthNames[m[1]], d, m[3], today)
	}

	if m := dayFirstPattern.FindStringSubmatch(text); m != nil {
		d, _ := strconv.Atoi(m[1])
		return p.monthDayDate(monthNames[m[2]], d, m[3], today)
	}

	if m := slashDatePattern.FindStringSubmatch(text); m != nil {
		mo, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		return p.monthDayDate(time.Month(mo), d, m[3], today)
	}

	for _, rel := range relativeDays {
		if rel.pattern.MatchString(text) {
			return today.AddDate(0, 0, rel.offset), true
		}
	}

	if m := inDaysPattern.FindStringSubmatch(text); m != nil {
		n, ok := parseNumber(m[1])
		if !ok {
			return time.Time{}, false
		}
		switch {
		case strings.HasPrefix(m[2], "day"):
			return today.AddDate(0, 0, n), true
		case strings.HasPrefix(m[2], "week"):
			return today.AddDate(0, 0, n*7), true
		case strings.HasPrefix(m[2], "month"):
			return today.AddDate(0, n, 0), true
		}
	}

	if nextWeekPattern.MatchString(text) {
		return today.AddDate(0, 0, 7), true
	}

	if m := weekdayPattern.FindStringSubmatch(text); m != nil {
		return nextWeekday(today, weekdays[m[2]], m[1] == "next"), true
	}

	return time.Time{}, false
}

// monthDayDate builds a date from month/day and an optional year. Without a
// year the date rolls to next year when it is already past.
func (p *Parser) monthDayDate(month time.Month, day int, rawYear string, today time.Time) (time.Time, bool) {
	if rawYear != "" {
		y, _ := strconv.Atoi(rawYear)
		if y < 100 {
			y += 2000
		}
		return p.civilDate(y, int(month), day)
	}

	date, ok := p.civilDate(today.Year(), int(month), day)
	if !ok {
		// Feb 29 outside a leap year rolls to the next year that has it.
		return p.civilDate(today.Year()+1, int(month), day)
	}
	if date.Before(today) {
		return p.civilDate(today.Year()+1, int(month), day)
	}
	return date, true
}

// civilDate validates a calendar date and returns its midnight.
func (p *Parser) civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// nextWeekday returns the coming occurrence of target. "next" skips today.
func nextWeekday(today time.Time, target time.Weekday, skipToday bool) time.Time {
	daysUntil := int(target - today.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && skipToday) {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// parseInDuration handles sub-day offsets like "in 2 hours", "in 2h30" or
// "in 30 minutes".
func parseInDuration(text string) (time.Duration, bool) {
	m := inClockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, ok := parseNumber(m[1])
	if !ok {
		return 0, false
	}
	if strings.HasPrefix(m[2], "h") {
		return time.Duration(n)*time.Hour + time.Duration(atoiOrZero(m[3]))*time.Minute, true
	}
	return time.Duration(n) * time.Minute, true
}

type clockTime struct {
	hour   int
	minute int
}

// parseClock extracts an explicit time of day. Hours are copied as written.
func parseClock(text string) (clockTime, bool) {
	if noonPattern.MatchString(text) {
		return clockTime{hour: 12}, true
	}
	if midnightPattern.MatchString(text) {
		return clockTime{hour: 0}, true
	}

	if m := meridiemPattern.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins := atoiOrZero(m[2])
		if h < 1 || h > 12 || mins > 59 {
			return clockTime{}, false
		}
		pm := strings.HasPrefix(m[3], "p")
		switch {
		case pm && h != 12:
			h += 12
		case !pm && h == 12:
			h = 0
		}
		return clockTime{hour: h, minute: mins}, true
	}

	if m := colonPattern.FindStringSubmatch(text); m != nil {
		return validClock(m[1], m[2])
	}

	if m := hourSuffixPattern.FindStringSubmatch(text); m != nil {
		return validClock(m[1], m[2])
	}

	if m := atHourPattern.FindStringSubmatch(text); m != nil {
		c, ok := validClock(m[1], "")
		if ok && c.hour < 12 && eveningHint.MatchString(text) {
			c.hour += 12
		}
		return c, ok
	}

	return clockTime{}, false
}

func validClock(rawHour, rawMinute string) (clockTime, bool) {
	h, err := strconv.Atoi(rawHour)
	if err != nil {
		return clockTime{}, false
	}
	mins := atoiOrZero(rawMinute)
	if h > 23 || mins > 59 {
		return clockTime{}, false
	}
	return clockTime{hour: h, minute: mins}, true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseNumber(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	n, ok := numberWords[s]
	return n, ok
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
