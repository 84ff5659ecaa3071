package query

import "context"

// UseCase turns command-line tokens into a timetable request.
type UseCase interface {
	// Extract detects the query language and groups tokens into raw fields.
	Extract(ctx context.Context, tokens []string, opt ExtractOptions) (ExtractOutput, error)

	// Parse extracts, validates and normalizes tokens into a Request.
	Parse(ctx context.Context, tokens []string) (ParseOutput, error)
}
