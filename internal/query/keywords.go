package query

import (
	"fmt"
	"regexp"

	"fahrplan/pkg/datemath"
)

// languages is the detection priority order: on equal scores the earlier wins.
var languages = [...]Language{English, German, French}

// Keywords is the read-only keyword table of one language.
type Keywords struct {
	fields map[Field]string
	tokens map[string]Field
	vocab  datemath.Vocabulary
}

var keywordTables = map[Language]Keywords{
	English: newKeywords(
		map[Field]string{
			FieldFrom:      "from",
			FieldTo:        "to",
			FieldVia:       "via",
			FieldDeparture: "departure",
			FieldArrival:   "arrival",
		},
		datemath.Vocabulary{
			Now:      []string{"now", "right now", "immediately"},
			Noon:     []string{"noon"},
			Midnight: []string{"midnight"},
			Today:    []string{"today"},
			Tomorrow: []string{"tomorrow"},
			Weekdays: [7][]string{
				{"monday"}, {"tuesday"}, {"wednesday"}, {"thursday"},
				{"friday"}, {"saturday"}, {"sunday"},
			},
			At:     []string{"at"},
			InDays: regexp.MustCompile(`(?i)\bin (\d+) days?\b`),
		},
	),
	German: newKeywords(
		map[Field]string{
			FieldFrom:      "von",
			FieldTo:        "nach",
			FieldVia:       "via",
			FieldDeparture: "ab",
			FieldArrival:   "an",
		},
		datemath.Vocabulary{
			Now:      []string{"jetzt", "sofort", "nun"},
			Noon:     []string{"mittag"},
			Midnight: []string{"mitternacht"},
			Today:    []string{"heute"},
			Tomorrow: []string{"morgen"},
			Weekdays: [7][]string{
				{"montag"}, {"dienstag"}, {"mittwoch"}, {"donnerstag"},
				{"freitag"}, {"samstag"}, {"sonntag"},
			},
			At:     []string{"um", "am"},
			InDays: regexp.MustCompile(`(?i)\bin (\d+) tag(?:en)?\b`),
		},
	),
	French: newKeywords(
		map[Field]string{
			FieldFrom:      "de",
			FieldTo:        "à",
			FieldVia:       "via",
			FieldDeparture: "départ",
			FieldArrival:   "arrivée",
		},
		datemath.Vocabulary{
			Now:      []string{"maintenant", "maitenant"},
			Noon:     []string{"midi"},
			Midnight: []string{"minuit"},
			Today:    []string{"aujourd'hui"},
			Tomorrow: []string{"demain"},
			Weekdays: [7][]string{
				{"lundi"}, {"mardi"}, {"mercredi"}, {"jeudi"},
				{"vendredi"}, {"samedi"}, {"dimanche"},
			},
			// "à" would clash with the "to" keyword.
			At:     nil,
			InDays: regexp.MustCompile(`(?i)\bdans (\d+) jours?\b`),
		},
	),
}

func newKeywords(fields map[Field]string, vocab datemath.Vocabulary) Keywords {
	tokens := make(map[string]Field, len(fields))
	for field, token := range fields {
		tokens[token] = field
	}
	return Keywords{fields: fields, tokens: tokens, vocab: vocab}
}

// Languages returns the supported languages in detection priority order.
func Languages() []Language {
	out := languages
	return out[:]
}

// KeywordsFor returns the keyword table of lang.
func KeywordsFor(lang Language) (Keywords, error) {
	kw, ok := keywordTables[lang]
	if !ok {
		return Keywords{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return kw, nil
}

// Field returns the canonical field a token spells, if any.
func (k Keywords) Field(token string) (Field, bool) {
	f, ok := k.tokens[token]
	return f, ok
}

// Spelling returns the token spelling of a field.
func (k Keywords) Spelling(f Field) string {
	return k.fields[f]
}

// Vocabulary returns the time and date keywords of the language.
func (k Keywords) Vocabulary() datemath.Vocabulary {
	return k.vocab
}

// DetectLanguage returns the language whose keywords share the most distinct
// tokens with the input. Ties go to the earlier language in Languages().
func DetectLanguage(tokens []string) Language {
	present := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		present[t] = struct{}{}
	}

	best, bestCount := languages[0], -1
	for _, lang := range languages {
		count := 0
		for token := range keywordTables[lang].tokens {
			if _, ok := present[token]; ok {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = lang, count
		}
	}
	return best
}
