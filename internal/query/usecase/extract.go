package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"fahrplan/internal/query"
)

// minTokens is the smallest input that can carry a "key value" pair.
const minTokens = 2

// Extract detects the query language and groups tokens into raw fields.
func (uc *implUseCase) Extract(ctx context.Context, tokens []string, opt query.ExtractOptions) (query.ExtractOutput, error) {
	if len(tokens) < minTokens {
		return query.ExtractOutput{Fields: query.Fields{}, Language: query.NoLanguage}, nil
	}

	tokens = normalizeTokens(tokens)

	lang := query.DetectLanguage(tokens)
	uc.l.Infof(ctx, "Detected [%s] input", lang)

	kw, err := query.KeywordsFor(lang)
	if err != nil {
		return query.ExtractOutput{}, err
	}

	fields := extractFields(kw, tokens)
	uc.l.Debugf(ctx, "Extracted fields: %v", fields)

	if !opt.Sloppy {
		if err := validateFields(fields); err != nil {
			return query.ExtractOutput{}, err
		}
	}

	return query.ExtractOutput{Fields: fields, Language: lang}, nil
}

// normalizeTokens returns NFC copies of tokens so decomposed accents still
// match keywords such as "à".
func normalizeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = norm.NFC.String(t)
	}
	return out
}

func validateFields(fields query.Fields) error {
	_, hasFrom := fields[query.FieldFrom]
	_, hasTo := fields[query.FieldTo]
	if !hasFrom || !hasTo {
		return query.ErrMissingRequiredField
	}

	_, hasDeparture := fields[query.FieldDeparture]
	_, hasArrival := fields[query.FieldArrival]
	if hasDeparture && hasArrival {
		return query.ErrConflictingTimeSpec
	}
	return nil
}

type extractState int

const (
	stateIdle extractState = iota
	stateAccumulating
)

// extractor groups tokens into fields. A keyword token flushes the pending
// field and opens a new one; other tokens are appended while accumulating and
// dropped while idle.
type extractor struct {
	kw     query.Keywords
	state  extractState
	key    query.Field
	value  []string
	fields query.Fields
}

func extractFields(kw query.Keywords, tokens []string) query.Fields {
	e := &extractor{kw: kw, fields: query.Fields{}}
	for _, token := range tokens {
		e.feed(token)
	}
	e.flush()
	return e.fields
}

func (e *extractor) feed(token string) {
	if field, ok := e.kw.Field(token); ok {
		e.flush()
		e.state = stateAccumulating
		e.key = field
		return
	}

	switch e.state {
	case stateAccumulating:
		e.value = append(e.value, token)
	case stateIdle:
		// Leading tokens before the first keyword carry no field.
	}
}

// flush stores the pending field, last write wins.
func (e *extractor) flush() {
	if e.state != stateAccumulating {
		return
	}
	e.fields[e.key] = strings.Join(e.value, " ")
	e.state = stateIdle
	e.key = ""
	e.value = nil
}
