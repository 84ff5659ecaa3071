package datemath

import "regexp"

// Vocabulary holds the time and date keywords of one language.
// All words are lower case; multi-word entries match as a word sequence.
type Vocabulary struct {
	Now      []string
	Noon     []string
	Midnight []string
	Today    []string
	Tomorrow []string
	// Weekdays is ordered Monday=0 .. Sunday=6.
	Weekdays [7][]string
	// At lists prepositions that may lead a time fragment ("at noon").
	At []string
	// InDays matches "in N days" phrasing; group 1 is N.
	InDays *regexp.Regexp
}

// Result is a normalized time/date pair.
type Result struct {
	Time string // HH:MM, 24-hour
	Date string // YYYY/MM/DD; empty means today
}

const (
	TimeLayout = "15:04"
	DateLayout = "2006/01/02"
)
