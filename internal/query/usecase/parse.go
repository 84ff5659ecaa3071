package usecase

import (
	"context"

	"fahrplan/internal/query"
)

// Parse extracts, validates and normalizes tokens into a Request.
func (uc *implUseCase) Parse(ctx context.Context, tokens []string) (query.ParseOutput, error) {
	extracted, err := uc.Extract(ctx, tokens, query.ExtractOptions{})
	if err != nil {
		return query.ParseOutput{}, err
	}
	if extracted.Language == query.NoLanguage {
		return query.ParseOutput{Request: query.Request{}, Language: query.NoLanguage}, nil
	}

	kw, err := query.KeywordsFor(extracted.Language)
	if err != nil {
		return query.ParseOutput{}, err
	}

	req := query.Request{}
	for _, f := range []query.Field{query.FieldFrom, query.FieldTo, query.FieldVia} {
		if v, ok := extracted.Fields[f]; ok {
			req[string(f)] = v
		}
	}

	now := uc.dateMath.Now()
	if fragment, ok := extracted.Fields[query.FieldDeparture]; ok {
		res, err := uc.dateMath.NormalizeAt(fragment, kw.Vocabulary(), now)
		if err != nil {
			return query.ParseOutput{}, err
		}
		setTime(req, res.Time, res.Date)
	}
	if fragment, ok := extracted.Fields[query.FieldArrival]; ok {
		res, err := uc.dateMath.NormalizeAt(fragment, kw.Vocabulary(), now)
		if err != nil {
			return query.ParseOutput{}, err
		}
		setTime(req, res.Time, res.Date)
		req[query.KeyIsArrivalTime] = "1"
	}

	uc.l.Debugf(ctx, "Request: %v", req)
	return query.ParseOutput{Request: req, Language: extracted.Language}, nil
}

func setTime(req query.Request, clock, date string) {
	req[query.KeyTime] = clock
	if date != "" {
		req[query.KeyDate] = date
	}
}
