package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	// clockPatterns are tried in order so an explicit separator wins over a
	// space: "2 15:00" is 15:00, not 02:15. None matches the "10" of "22/10".
	clockPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:^|[^/\d])([01]?\d|2[0-3])[:.\-h]([0-5]\d)(?:$|[^\d/])`),
		regexp.MustCompile(`(?:^|[^/\d])([01]?\d|2[0-3])([0-5]\d)(?:$|[^\d/])`),
		regexp.MustCompile(`(?:^|[^/\d])([01]\d|2[0-3]) ([0-5]\d)(?:$|[^\d/:.h])`),
	}

	dayMonthYearPattern = regexp.MustCompile(`(?:^|[^\d/])(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})(?:$|[^\d/])`)
	dayMonthPattern     = regexp.MustCompile(`(?:^|[^\d/])(\d{1,2})/(\d{1,2})(?:$|[^\d/])`)
	// datePattern catches slash dates that neither form above accepts.
	datePattern = regexp.MustCompile(`\d/\d`)
)

// Parser converts free-text time and date fragments to canonical strings.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Zurich"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of the parser reading "now" from the given clock.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	return &Parser{location: p.location, now: now}
}

// Now reads the clock once, in the parser's timezone.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

// NormalizeAt resolves the time and optional date of fragment relative to now.
func (p *Parser) NormalizeAt(fragment string, vocab Vocabulary, now time.Time) (Result, error) {
	now = now.In(p.location)

	clock, err := ParseTime(fragment, vocab, now)
	if err != nil {
		return Result{}, err
	}
	date, err := p.ParseDate(fragment, vocab, now)
	if err != nil {
		return Result{}, err
	}
	return Result{Time: clock, Date: date}, nil
}

// ParseTime returns the HH:MM time of day named by fragment.
func ParseTime(fragment string, vocab Vocabulary, now time.Time) (string, error) {
	fields := strings.Fields(strings.ToLower(fragment))

	// Ignore "at" keywords
	if len(fields) > 0 && containsWord(vocab.At, trimPunct(fields[0])) {
		fields = fields[1:]
	}
	rest := strings.Join(fields, " ")

	for _, pattern := range clockPatterns {
		if m := pattern.FindStringSubmatch(rest); m != nil {
			hour, _ := strconv.Atoi(m[1])
			return fmt.Sprintf("%02d:%s", hour, m[2]), nil
		}
	}

	words := splitWords(rest)

	switch {
	case containsAnyPhrase(words, vocab.Now):
		return now.Format(TimeLayout), nil
	case containsAnyPhrase(words, vocab.Noon):
		return "12:00", nil
	case containsAnyPhrase(words, vocab.Midnight):
		// 00:00 would be the first minute of the day, not the last one.
		return "23:59", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnparseableTime, fragment)
}

// ParseDate returns the YYYY/MM/DD date named by fragment, or "" when the
// fragment carries no date.
func (p *Parser) ParseDate(fragment string, vocab Vocabulary, now time.Time) (string, error) {
	lower := strings.ToLower(fragment)
	words := splitWords(lower)

	shift, ok, err := dayShift(lower, words, vocab, now)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableDate, fragment)
	}
	if ok {
		return p.startOfDay(now).AddDate(0, 0, shift).Format(DateLayout), nil
	}

	if m := dayMonthYearPattern.FindStringSubmatch(lower); m != nil {
		return p.absoluteDate(fragment, m[1], m[2], m[3])
	}
	if m := dayMonthPattern.FindStringSubmatch(lower); m != nil {
		return p.absoluteDate(fragment, m[1], m[2], strconv.Itoa(now.Year()))
	}
	if datePattern.MatchString(lower) {
		return "", fmt.Errorf("%w: %q", ErrUnparseableDate, fragment)
	}

	return "", nil
}

// dayShift returns the number of days between now and the relative date in the
// fragment. ok is false when the fragment names no relative date.
func dayShift(lower string, words []string, vocab Vocabulary, now time.Time) (shift int, ok bool, err error) {
	if containsAnyPhrase(words, vocab.Today) {
		return 0, true, nil
	}
	if containsAnyPhrase(words, vocab.Tomorrow) {
		return 1, true, nil
	}

	// Monday = 0
	current := (int(now.Weekday()) + 6) % 7
	for i, names := range vocab.Weekdays {
		if !containsAnyPhrase(words, names) {
			continue
		}
		daysUntil := ((i-current)%7 + 7) % 7
		// Naming today's weekday means next week.
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return daysUntil, true, nil
	}

	if vocab.InDays != nil {
		if m := vocab.InDays.FindStringSubmatch(lower); len(m) > 1 {
			n, convErr := strconv.Atoi(m[1])
			if convErr != nil {
				return 0, false, convErr
			}
			return n, true, nil
		}
	}

	return 0, false, nil
}

// absoluteDate validates a day/month/year triple and formats it.
func (p *Parser) absoluteDate(fragment, day, month, year string) (string, error) {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if len(year) == 2 {
		y += 2000
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, p.location)
	if t.Day() != d || int(t.Month()) != m || t.Year() != y {
		return "", fmt.Errorf("%w: %q", ErrUnparseableDate, fragment)
	}
	return t.Format(DateLayout), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// splitWords splits s on white space and strips punctuation around each
// word, so "tomorrow," matches "tomorrow".
func splitWords(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := trimPunct(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, unicode.IsPunct)
}

func containsWord(set []string, word string) bool {
	for _, s := range set {
		if s == word {
			return true
		}
	}
	return false
}

func containsAnyPhrase(words []string, phrases []string) bool {
	for _, phrase := range phrases {
		if containsPhrase(words, phrase) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in words as a contiguous word sequence.
func containsPhrase(words []string, phrase string) bool {
	target := strings.Fields(strings.ToLower(phrase))
	if len(target) == 0 {
		return false
	}
	for i := 0; i+len(target) <= len(words); i++ {
		match := true
		for j, w := range target {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
